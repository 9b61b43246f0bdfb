package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Register an internal application",
	Long: `Create an application for a platform user on a job posting. The
application starts in requested state and waits for a recruiter decision.`,
	RunE: runApply,
}

var applyFlags struct {
	jobID  int64
	userID int64
}

func init() {
	applyCmd.Flags().Int64Var(&applyFlags.jobID, "job", 0, "Job posting id")
	applyCmd.Flags().Int64Var(&applyFlags.userID, "user", 0, "Applicant user id")
	_ = applyCmd.MarkFlagRequired("job")
	_ = applyCmd.MarkFlagRequired("user")
}

func runApply(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	service, cleanup, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	id, err := service.Apply(ctx, applyFlags.jobID, applyFlags.userID)
	if err != nil {
		return err
	}

	fmt.Printf("Application %d created (job %d, user %d)\n", id, applyFlags.jobID, applyFlags.userID)
	return nil
}
