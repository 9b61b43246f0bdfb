package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"talentscreen/internal/candidate"
	"talentscreen/internal/pipeline"
	"talentscreen/internal/queue"
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Manually publish an analysis work item",
	Long: `Publish a work item for one candidate record, bypassing the decision
flows. Useful to replay an item that was dropped or to re-analyze a record
after its resume changed. Reprocessing an analyzed record overwrites its
documents and score.`,
	RunE: runEnqueue,
}

var enqueueFlags struct {
	kind        string
	jobID       int64
	userID      int64
	candidateID int64
}

func init() {
	enqueueCmd.Flags().StringVar(&enqueueFlags.kind, "kind", "internal", "Record kind: internal or external")
	enqueueCmd.Flags().Int64Var(&enqueueFlags.jobID, "job", 0, "Job posting id")
	enqueueCmd.Flags().Int64Var(&enqueueFlags.userID, "user", 0, "Applicant user id (internal)")
	enqueueCmd.Flags().Int64Var(&enqueueFlags.candidateID, "candidate", 0, "External candidate id")
	_ = enqueueCmd.MarkFlagRequired("job")
}

func runEnqueue(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	broker, err := newBroker(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := broker.Close(); err != nil {
			logger.Warn("Failed to close broker", "error", err.Error())
		}
	}()

	dispatcher := pipeline.NewDispatcher(broker, nil, 1, nil, logger)
	item := queue.WorkItem{
		Kind:        candidate.Kind(enqueueFlags.kind),
		JobID:       enqueueFlags.jobID,
		UserID:      enqueueFlags.userID,
		CandidateID: enqueueFlags.candidateID,
	}
	if err := dispatcher.Enqueue(ctx, item); err != nil {
		return err
	}

	fmt.Printf("Work item published: %s\n", item.Ref().String())
	return nil
}
