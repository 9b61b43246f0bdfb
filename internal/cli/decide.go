package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve a requested application and enqueue its analysis",
	Long: `Move an application from requested to approved, notify the applicant,
and publish a work item so the worker pool analyzes the resume.`,
	RunE: runApprove,
}

var rejectCmd = &cobra.Command{
	Use:   "reject",
	Short: "Reject a requested application",
	Long: `Move an application from requested to rejected and notify the
applicant. Rejected applications are never analyzed.`,
	RunE: runReject,
}

var decideFlags struct {
	jobID  int64
	userID int64
}

func init() {
	for _, cmd := range []*cobra.Command{approveCmd, rejectCmd} {
		cmd.Flags().Int64Var(&decideFlags.jobID, "job", 0, "Job posting id")
		cmd.Flags().Int64Var(&decideFlags.userID, "user", 0, "Applicant user id")
		_ = cmd.MarkFlagRequired("job")
		_ = cmd.MarkFlagRequired("user")
	}
}

func runApprove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	service, cleanup, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := service.Approve(ctx, decideFlags.jobID, decideFlags.userID); err != nil {
		return err
	}

	fmt.Printf("Application approved and enqueued (job %d, user %d)\n",
		decideFlags.jobID, decideFlags.userID)
	return nil
}

func runReject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	service, cleanup, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := service.Reject(ctx, decideFlags.jobID, decideFlags.userID); err != nil {
		return err
	}

	fmt.Printf("Application rejected (job %d, user %d)\n",
		decideFlags.jobID, decideFlags.userID)
	return nil
}
