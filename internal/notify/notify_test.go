package notify

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"talentscreen/internal/errors"
)

type recordingSink struct {
	users    []int64
	messages []string
	err      error
}

func (s *recordingSink) InsertNotification(ctx context.Context, userID int64, message string) error {
	if s.err != nil {
		return s.err
	}
	s.users = append(s.users, userID)
	s.messages = append(s.messages, message)
	return nil
}

func testLogger() *errors.Logger {
	logger, _ := errors.New("error")
	return logger
}

func TestDecisionNotifications(t *testing.T) {
	sink := &recordingSink{}
	n := New(sink, testLogger())
	ctx := context.Background()

	n.ApplicationApproved(ctx, 42, 7)
	n.ApplicationRejected(ctx, 43, 7)

	if len(sink.messages) != 2 {
		t.Fatalf("delivered %d notifications, want 2", len(sink.messages))
	}
	if sink.users[0] != 42 || sink.users[1] != 43 {
		t.Errorf("users = %v, want [42 43]", sink.users)
	}
	if !strings.Contains(sink.messages[0], "job 7") || !strings.Contains(sink.messages[0], "approved") {
		t.Errorf("approval message = %q", sink.messages[0])
	}
	if !strings.Contains(sink.messages[1], "job 7") || !strings.Contains(sink.messages[1], "not selected") {
		t.Errorf("rejection message = %q", sink.messages[1])
	}
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	sink := &recordingSink{err: stderrors.New("notifications table unavailable")}
	n := New(sink, testLogger())

	// Must not panic and must not propagate; the decision already stands.
	n.ApplicationApproved(context.Background(), 42, 7)
}
