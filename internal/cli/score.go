package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"talentscreen/internal/common"
	"talentscreen/internal/scoring"
	"talentscreen/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score [screening-report-file]",
	Short: "Compute the final score of a stored screening report",
	Long: `Recompute the weighted final score from a screening report JSON
document. Missing score fields contribute their neutral defaults, exactly as
during pipeline processing, so the result matches the stored score.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	logger := getLoggerFromContext(cmd.Context())

	fileProcessor := common.NewFileProcessor(logger)
	content, err := fileProcessor.ReadFile(args[0])
	if err != nil {
		return err
	}

	var doc types.InterviewerAnalysis
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("failed to parse screening report: %w", err)
	}
	if err := doc.Validate(); err != nil {
		logger.Warn("Screening report is incomplete, scoring with neutral defaults",
			"error", err.Error())
	}

	fmt.Printf("%.2f\n", scoring.FinalScore(&doc))
	return nil
}
