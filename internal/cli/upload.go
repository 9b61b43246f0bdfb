package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"talentscreen/internal/common"
	"talentscreen/internal/pipeline"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [job-id] [resume-file...]",
	Short: "Bulk-upload external resumes for a job",
	Long: `Register external candidates from resume text files and enqueue their
analysis. The candidate name defaults to the file name. Files with no usable
text are recorded as failed so the ranking can report them.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	jobID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid job id %q: %w", args[0], err)
	}

	fileProcessor := common.NewFileProcessor(logger)
	contents, err := fileProcessor.ValidateAndReadFiles(args[1:]...)
	if err != nil {
		return err
	}

	uploads := make([]pipeline.ExternalUpload, len(contents))
	for i, content := range contents {
		name := strings.TrimSuffix(filepath.Base(args[1+i]), filepath.Ext(args[1+i]))
		uploads[i] = pipeline.ExternalUpload{
			Name:       name,
			ResumeText: content,
		}
	}

	service, cleanup, err := openService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	ids, err := service.BulkUpload(ctx, jobID, uploads)
	if err != nil {
		return err
	}

	fmt.Printf("Enqueued %d candidates for job %d:\n", len(ids), jobID)
	for i, id := range ids {
		fmt.Printf("  %d %s\n", id, uploads[i].Name)
	}
	return nil
}
