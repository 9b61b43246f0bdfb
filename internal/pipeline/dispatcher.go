package pipeline

import (
	"context"
	"sync"

	"talentscreen/internal/errors"
	"talentscreen/internal/queue"
)

// Dispatcher owns the producer and consumer sides of the work queue. Enqueue
// publishes analysis requests; Run consumes them with a fixed worker pool.
type Dispatcher struct {
	broker    queue.Broker
	processor *Processor
	workers   int
	metrics   Metrics
	logger    *errors.Logger
}

// NewDispatcher wires a dispatcher over the broker.
func NewDispatcher(broker queue.Broker, processor *Processor, workers int, metrics Metrics, logger *errors.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Dispatcher{
		broker:    broker,
		processor: processor,
		workers:   workers,
		metrics:   metrics,
		logger:    logger,
	}
}

// Enqueue validates and publishes one work item.
func (d *Dispatcher) Enqueue(ctx context.Context, item queue.WorkItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := d.broker.Publish(ctx, item); err != nil {
		return err
	}
	d.logger.Debug("Work item enqueued",
		"kind", string(item.Kind),
		"job_id", item.JobID,
		"user_id", item.UserID,
		"candidate_id", item.CandidateID)
	return nil
}

// Run consumes the queue until the context is canceled. All workers share one
// delivery channel; each settles its own deliveries.
func (d *Dispatcher) Run(ctx context.Context) error {
	deliveries, err := d.broker.Consume(ctx)
	if err != nil {
		return err
	}

	d.logger.Info("Dispatcher started", "workers", d.workers)

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			d.consume(ctx, worker, deliveries)
		}(i)
	}
	wg.Wait()

	d.logger.Info("Dispatcher stopped")
	return nil
}

func (d *Dispatcher) consume(ctx context.Context, worker int, deliveries <-chan queue.Delivery) {
	for delivery := range deliveries {
		item := delivery.Item

		if err := item.Validate(); err != nil {
			// Malformed items are settled, not requeued: redelivery cannot
			// repair them.
			d.logger.LogError(err, "Discarding invalid work item", "worker", worker)
			d.metrics.ItemDropped(string(item.Kind), "invalid_item")
			if ackErr := delivery.Ack(); ackErr != nil {
				d.logger.LogError(ackErr, "Failed to settle invalid work item", "worker", worker)
			}
			continue
		}

		switch d.processor.Process(ctx, item) {
		case OutcomeRequeue:
			if err := delivery.Requeue(); err != nil {
				d.logger.LogError(err, "Failed to requeue work item",
					"worker", worker, "ref", item.Ref().String())
			}
		default:
			if err := delivery.Ack(); err != nil {
				d.logger.LogError(err, "Failed to ack work item",
					"worker", worker, "ref", item.Ref().String())
			}
		}
	}
}
