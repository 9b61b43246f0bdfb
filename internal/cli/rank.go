package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"talentscreen/internal/common"
)

var rankCmd = &cobra.Command{
	Use:   "rank [job-id]",
	Short: "Rank an analyzed external batch and persist the shortlist",
	Long: `Rank every external candidate on a job by final score, shortlist the
top fifth (at least one when any scored), and mark the selected records as
shortlisted. Fails while any candidate in the batch is still queued.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if rankConfig.OutputFormat == "" {
			rankConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(rankConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runRank,
}

var rankConfig common.CommandConfig

func init() {
	rankCmd.Flags().StringVarP(&rankConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	rankCmd.Flags().StringVar(&rankConfig.OutputFormat, "format", "", "Output format: json or text")
}

func runRank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	jobID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", args[0], err)
	}

	service, cleanup, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ranking, err := service.Rank(ctx, jobID)
	if err != nil {
		return err
	}

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(ranking, rankConfig)
}
