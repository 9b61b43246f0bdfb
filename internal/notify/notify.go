// Package notify delivers candidate-facing notifications for application
// decisions. Delivery failures are logged and swallowed; a lost notification
// must never roll back the decision that triggered it.
package notify

import (
	"context"
	"fmt"

	"talentscreen/internal/errors"
)

// Messages shown to applicants when a decision lands.
const (
	approvedMessageFmt = "Your application for job %d has been approved. Your interview cheatsheet is being prepared."
	rejectedMessageFmt = "Your application for job %d was not selected this time."
)

// Sink persists a notification for one user.
type Sink interface {
	InsertNotification(ctx context.Context, userID int64, message string) error
}

// Notifier formats and delivers decision notifications.
type Notifier struct {
	sink   Sink
	logger *errors.Logger
}

// New creates a Notifier writing through the given sink.
func New(sink Sink, logger *errors.Logger) *Notifier {
	return &Notifier{sink: sink, logger: logger}
}

// ApplicationApproved notifies the applicant that their application was
// approved and analysis is underway.
func (n *Notifier) ApplicationApproved(ctx context.Context, userID, jobID int64) {
	n.deliver(ctx, userID, fmt.Sprintf(approvedMessageFmt, jobID))
}

// ApplicationRejected notifies the applicant of a rejection.
func (n *Notifier) ApplicationRejected(ctx context.Context, userID, jobID int64) {
	n.deliver(ctx, userID, fmt.Sprintf(rejectedMessageFmt, jobID))
}

func (n *Notifier) deliver(ctx context.Context, userID int64, message string) {
	if err := n.sink.InsertNotification(ctx, userID, message); err != nil {
		n.logger.LogError(err, "Notification delivery failed",
			"user_id", userID)
	}
}
