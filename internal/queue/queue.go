// Package queue provides the work queue boundary of the analysis pipeline:
// a Broker delivers WorkItems to workers with at-least-once semantics.
package queue

import (
	"context"

	"talentscreen/internal/candidate"
	"talentscreen/internal/errors"
)

// WorkItem identifies one analysis unit: a candidate and a job. It is
// immutable once enqueued and carries no payload beyond identifiers; the job
// and resume text are fetched at processing time so stale queued items always
// see current content.
type WorkItem struct {
	Kind        candidate.Kind `json:"kind"`
	JobID       int64          `json:"job_id"`
	UserID      int64          `json:"user_id,omitempty"`
	CandidateID int64          `json:"candidate_id,omitempty"`
}

// Ref converts the work item into a candidate record reference.
func (w WorkItem) Ref() candidate.Ref {
	return candidate.Ref{
		Kind:        w.Kind,
		JobID:       w.JobID,
		UserID:      w.UserID,
		CandidateID: w.CandidateID,
	}
}

// Validate checks that the item addresses exactly one candidate record.
func (w WorkItem) Validate() error {
	switch w.Kind {
	case candidate.KindInternal:
		if w.JobID <= 0 || w.UserID <= 0 {
			return errors.NewValidationError(errors.ErrCodeInvalidWorkItem,
				"internal work item requires job_id and user_id", nil)
		}
	case candidate.KindExternal:
		if w.JobID <= 0 || w.CandidateID <= 0 {
			return errors.NewValidationError(errors.ErrCodeInvalidWorkItem,
				"external work item requires job_id and candidate_id", nil)
		}
	default:
		return errors.NewValidationError(errors.ErrCodeInvalidWorkItem,
			"unknown work item kind: "+string(w.Kind), nil)
	}
	return nil
}

// Delivery is one WorkItem handed to a worker. The worker must settle it:
// Ack on completion or silent drop, Requeue to trigger broker redelivery.
type Delivery struct {
	Item    WorkItem
	ack     func() error
	requeue func() error
}

// Ack marks the delivery as processed.
func (d Delivery) Ack() error {
	if d.ack == nil {
		return nil
	}
	return d.ack()
}

// Requeue returns the delivery to the broker for redelivery.
func (d Delivery) Requeue() error {
	if d.requeue == nil {
		return nil
	}
	return d.requeue()
}

// Broker decouples producers from the worker pool. Implementations deliver
// each published item to exactly one consumer at a time, redelivering
// unsettled or requeued items (at-least-once, not exactly-once).
type Broker interface {
	Publish(ctx context.Context, item WorkItem) error
	Consume(ctx context.Context) (<-chan Delivery, error)
	Close() error
}
