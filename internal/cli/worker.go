package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"talentscreen/internal/ai"
	"talentscreen/internal/observability"
	"talentscreen/internal/pipeline"
	"talentscreen/internal/store/mysql"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run the analysis worker pool",
	Long: `Consume analysis work items from the broker and process them: load the
job description and resume, generate both analysis documents, compute the
final score, and commit everything atomically. Runs until interrupted.`,
	RunE: runWorker,
}

func runWorker(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Observability)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err.Error())
		}
	}()

	metrics := observability.NewPipelineMetrics()
	if err := observability.StartMetricsServer(metrics, cfg.Observability.Metrics); err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}

	db, err := mysql.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db, logger)
	store := mysql.NewStore(db, logger)

	broker, err := newBroker(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer func() {
		if err := broker.Close(); err != nil {
			logger.Warn("Failed to close broker", "error", err.Error())
		}
	}()

	analyzer, err := ai.NewAnalyzer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}
	defer func() {
		if err := analyzer.Close(); err != nil {
			logger.Warn("Failed to close analyzer", "error", err.Error())
		}
	}()

	processor := pipeline.NewProcessor(store, analyzer,
		cfg.Pipeline.ModelCallsPerMinute, cfg.Pipeline.ModelCallBurst, metrics, logger)
	dispatcher := pipeline.NewDispatcher(broker, processor, cfg.Pipeline.Workers, metrics, logger)

	logger.Info("Worker starting",
		"workers", cfg.Pipeline.Workers,
		"queue", cfg.Broker.Queue,
		"model_calls_per_minute", cfg.Pipeline.ModelCallsPerMinute)

	return dispatcher.Run(ctx)
}
