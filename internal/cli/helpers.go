package cli

import (
	"context"
	"database/sql"

	"talentscreen/internal/config"
	"talentscreen/internal/errors"
	"talentscreen/internal/notify"
	"talentscreen/internal/pipeline"
	"talentscreen/internal/queue"
	"talentscreen/internal/store/mysql"
)

// newBroker selects the broker implementation. Embedded mode uses the
// in-process broker, which only makes sense when producer and worker run in
// the same process.
func newBroker(cfg *config.Config, logger *errors.Logger) (queue.Broker, error) {
	if cfg.Broker.Embedded {
		return queue.NewMemoryBroker(cfg.Broker.Buffer), nil
	}
	return queue.NewRabbitBroker(queue.RabbitConfig{
		URL:            cfg.Broker.URL,
		Queue:          cfg.Broker.Queue,
		PrefetchCount:  cfg.Pipeline.Workers,
		PublishTimeout: cfg.Broker.PublishTimeout,
	}, logger)
}

// openService wires the orchestration service for producer-side commands
// (apply, approve, reject, upload, rank). The returned cleanup closes the
// database pool and the broker connection.
func openService(ctx context.Context, cfg *config.Config, logger *errors.Logger) (*pipeline.Service, func(), error) {
	db, err := mysql.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	broker, err := newBroker(cfg, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	store := mysql.NewStore(db, logger)
	dispatcher := pipeline.NewDispatcher(broker, nil, 1, nil, logger)
	notifier := notify.New(store, logger)
	service := pipeline.NewService(store, dispatcher, notifier, logger)

	cleanup := func() {
		if err := broker.Close(); err != nil {
			logger.Warn("Failed to close broker", "error", err.Error())
		}
		closeDB(db, logger)
	}
	return service, cleanup, nil
}

func closeDB(db *sql.DB, logger *errors.Logger) {
	if err := db.Close(); err != nil {
		logger.Warn("Failed to close database pool", "error", err.Error())
	}
}
