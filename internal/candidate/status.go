// Package candidate holds the candidate record model: the status lifecycle
// for internal applications and external bulk-uploaded candidates, and the
// shortlist ranking policy applied after a bulk batch.
package candidate

import (
	"fmt"
	"time"

	"talentscreen/internal/types"
)

// Kind distinguishes the two candidate record families.
type Kind string

const (
	KindInternal Kind = "internal" // platform user applying through the portal
	KindExternal Kind = "external" // bulk-uploaded resume, no platform account
)

// Status is a candidate record lifecycle state.
type Status string

const (
	// Internal application lifecycle.
	StatusRequested  Status = "requested"
	StatusApproved   Status = "approved"
	StatusProcessing Status = "processing"
	StatusRejected   Status = "rejected"

	// External candidate lifecycle.
	StatusQueued      Status = "queued"
	StatusShortlisted Status = "shortlisted"

	// Shared terminal analysis state.
	StatusAnalyzed Status = "analyzed"
)

// Ref identifies one candidate record. Internal records are addressed by
// (JobID, UserID); external records by CandidateID.
type Ref struct {
	Kind        Kind  `json:"kind"`
	JobID       int64 `json:"job_id"`
	UserID      int64 `json:"user_id,omitempty"`
	CandidateID int64 `json:"candidate_id,omitempty"`
}

func (r Ref) String() string {
	if r.Kind == KindExternal {
		return fmt.Sprintf("external candidate %d (job %d)", r.CandidateID, r.JobID)
	}
	return fmt.Sprintf("application user %d (job %d)", r.UserID, r.JobID)
}

// IllegalTransitionError reports a status transition outside the legal edge
// set. It carries the record's current state so the caller can reconcile.
type IllegalTransitionError struct {
	Kind Kind
	From Status
	To   Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s status transition %s -> %s", e.Kind, e.From, e.To)
}

// Legal edges per record kind. The analyzed -> analyzed self-edge admits
// broker redelivery: reprocessing a work item overwrites the prior analysis.
var internalEdges = map[Status][]Status{
	StatusRequested:  {StatusApproved, StatusRejected},
	StatusApproved:   {StatusProcessing, StatusAnalyzed},
	StatusProcessing: {StatusAnalyzed},
	StatusAnalyzed:   {StatusAnalyzed},
}

var externalEdges = map[Status][]Status{
	StatusQueued:   {StatusAnalyzed},
	StatusAnalyzed: {StatusShortlisted, StatusAnalyzed},
}

// Transition validates a status change for a record kind. It returns an
// *IllegalTransitionError for any edge outside the lifecycle.
func Transition(kind Kind, from, to Status) error {
	edges := internalEdges
	if kind == KindExternal {
		edges = externalEdges
	}
	for _, next := range edges[from] {
		if next == to {
			return nil
		}
	}
	return &IllegalTransitionError{Kind: kind, From: from, To: to}
}

// InitialStatus returns the status a freshly created record carries.
func InitialStatus(kind Kind) Status {
	if kind == KindExternal {
		return StatusQueued
	}
	return StatusRequested
}

// Application is an internal candidate's application to one job.
type Application struct {
	ID                  int64
	JobID               int64
	UserID              int64
	Status              Status
	FinalScore          *float64
	AnalysisCandidate   *types.CandidateAnalysis
	AnalysisInterviewer *types.InterviewerAnalysis
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// External is a bulk-uploaded candidate attached to one job.
type External struct {
	ID                  int64
	JobID               int64
	Name                string
	Email               string
	RawResumeText       string
	Status              Status
	FinalScore          *float64
	AnalysisCandidate   *types.CandidateAnalysis
	AnalysisInterviewer *types.InterviewerAnalysis
	CreatedAt           time.Time
}

// Ref returns the external candidate's record reference.
func (e *External) Ref() Ref {
	return Ref{Kind: KindExternal, JobID: e.JobID, CandidateID: e.ID}
}

// Ref returns the application's record reference.
func (a *Application) Ref() Ref {
	return Ref{Kind: KindInternal, JobID: a.JobID, UserID: a.UserID}
}
