package queue

import (
	"context"
	"sync"

	"talentscreen/internal/errors"
)

// MemoryBroker is an in-process Broker used by tests and single-binary runs
// where a standalone broker is unnecessary. Requeued items go back onto the
// same buffer, preserving at-least-once delivery within the process.
//
// Shutdown is signaled through done; the item buffer itself is never closed,
// so a publish racing Close cannot panic on a closed channel. An item that
// slips into the buffer during that window is dropped with the rest of the
// buffer at shutdown.
type MemoryBroker struct {
	mu     sync.Mutex
	items  chan WorkItem
	done   chan struct{}
	closed bool
}

var _ Broker = (*MemoryBroker)(nil)

// NewMemoryBroker creates an in-process broker with the given buffer size.
func NewMemoryBroker(buffer int) *MemoryBroker {
	if buffer <= 0 {
		buffer = 256
	}
	return &MemoryBroker{
		items: make(chan WorkItem, buffer),
		done:  make(chan struct{}),
	}
}

// Publish enqueues a work item, failing fast when the buffer is full.
func (b *MemoryBroker) Publish(ctx context.Context, item WorkItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.NewQueueError(errors.ErrCodePublishFailed,
			"publish canceled", err)
	}

	select {
	case <-b.done:
		return errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"memory broker is closed", nil)
	default:
	}

	select {
	case b.items <- item:
		return nil
	default:
		return errors.NewQueueError(errors.ErrCodePublishFailed,
			"memory broker buffer full", nil)
	}
}

// Consume returns a delivery channel fed from the in-process buffer. Requeues
// block until buffer space frees up, so a nacked item is never lost while the
// broker is open.
func (b *MemoryBroker) Consume(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-b.done:
				return
			case item := <-b.items:
				d := Delivery{
					Item:    item,
					ack:     func() error { return nil },
					requeue: func() error { return b.requeue(ctx, item) },
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				case <-b.done:
					return
				}
			}
		}
	}()
	return out, nil
}

func (b *MemoryBroker) requeue(ctx context.Context, item WorkItem) error {
	select {
	case <-b.done:
		return errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"memory broker is closed", nil)
	default:
	}

	select {
	case b.items <- item:
		return nil
	case <-ctx.Done():
		return errors.NewQueueError(errors.ErrCodePublishFailed,
			"requeue canceled", ctx.Err())
	case <-b.done:
		return errors.NewQueueError(errors.ErrCodeBrokerUnavailable,
			"memory broker is closed", nil)
	}
}

// Close stops accepting publishes and releases consumers.
func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.done)
	}
	return nil
}
