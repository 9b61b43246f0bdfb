package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"talentscreen/internal/ai"
	"talentscreen/internal/common"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [job-description-file]",
	Short: "Summarize a job description into its structured form",
	Long: `Generate the structured summary of a raw job description: role
metadata, requirements, responsibilities, compensation, and weighted
keywords. Recruiters use this to verify how a posting will be interpreted
before candidates are screened against it.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		if summarizeConfig.OutputFormat == "" {
			summarizeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(summarizeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSummarize,
}

var summarizeConfig common.CommandConfig

func init() {
	summarizeCmd.Flags().StringVarP(&summarizeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	summarizeCmd.Flags().StringVar(&summarizeConfig.OutputFormat, "format", "", "Output format: json or text")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args[0])
	if err != nil {
		return err
	}

	jdCfg := cfg.GetJDSummaryConfig()
	provider, err := ai.NewProvider(&jdCfg, ai.OperationJDSummary, logger)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			logger.Warn("Failed to close AI provider", "error", err.Error())
		}
	}()

	logger.Info("Starting job description summarization",
		"job_chars", len(contents[0]),
		"output_format", summarizeConfig.OutputFormat)

	summary, tokenUsage, err := provider.GenerateJDSummary(ctx, ai.JDSummaryInput{
		JobDescription: contents[0],
	})
	if err != nil {
		return fmt.Errorf("failed to summarize job description: %w", err)
	}

	if tokenUsage != nil {
		logger.Info("AI token usage",
			"input_tokens", tokenUsage.InputTokens,
			"output_tokens", tokenUsage.OutputTokens,
			"total_tokens", tokenUsage.TotalTokens)
	}

	outputHandler := common.NewOutputHandler(logger)
	return outputHandler.HandleOutput(summary, summarizeConfig)
}
