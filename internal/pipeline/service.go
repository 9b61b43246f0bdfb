package pipeline

import (
	"context"
	"fmt"
	"strings"

	"talentscreen/internal/candidate"
	"talentscreen/internal/errors"
	"talentscreen/internal/queue"
)

// ServiceStore is the persistence surface for the orchestration flows.
type ServiceStore interface {
	CreateApplication(ctx context.Context, jobID, userID int64) (int64, error)
	CreateExternal(ctx context.Context, jobID int64, name, email, rawResumeText string) (int64, error)
	LoadResumeText(ctx context.Context, ref candidate.Ref) (string, error)
	UpdateStatus(ctx context.Context, ref candidate.Ref, from, to candidate.Status) error
	MarkAnalysisFailed(ctx context.Context, candidateID int64, reason string) error
	LoadBatch(ctx context.Context, jobID int64) ([]candidate.RankedCandidate, error)
	CountPending(ctx context.Context, jobID int64) (int, error)
	MarkShortlisted(ctx context.Context, jobID int64, ids []int64) error
}

// Enqueuer publishes validated work items. Satisfied by Dispatcher.
type Enqueuer interface {
	Enqueue(ctx context.Context, item queue.WorkItem) error
}

// Notifier delivers decision notifications to applicants.
type Notifier interface {
	ApplicationApproved(ctx context.Context, userID, jobID int64)
	ApplicationRejected(ctx context.Context, userID, jobID int64)
}

// Service drives the candidate lifecycle: application decisions, bulk
// uploads, and batch ranking. It owns no state beyond its collaborators.
type Service struct {
	store      ServiceStore
	dispatcher Enqueuer
	notifier   Notifier
	logger     *errors.Logger
}

// NewService wires the orchestration service.
func NewService(store ServiceStore, dispatcher Enqueuer, notifier Notifier, logger *errors.Logger) *Service {
	return &Service{
		store:      store,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Apply registers an internal application in requested state.
func (s *Service) Apply(ctx context.Context, jobID, userID int64) (int64, error) {
	id, err := s.store.CreateApplication(ctx, jobID, userID)
	if err != nil {
		return 0, err
	}
	s.logger.Info("Application created",
		"application_id", id, "job_id", jobID, "user_id", userID)
	return id, nil
}

// Approve moves an application to approved, notifies the applicant, and
// enqueues the analysis. An applicant without extractable resume text is
// refused before the status flips: an approved application with nothing to
// analyze would never reach analyzed. The decision is durable before the
// enqueue: if publishing fails the approval stands and the item can be
// enqueued again.
func (s *Service) Approve(ctx context.Context, jobID, userID int64) error {
	ref := candidate.Ref{Kind: candidate.KindInternal, JobID: jobID, UserID: userID}

	if _, err := s.store.LoadResumeText(ctx, ref); err != nil {
		if errors.HasCode(err, errors.ErrCodeRecordNotFound) {
			return errors.NewValidationError(errors.ErrCodeResumeTextMissing,
				fmt.Sprintf("user %d has no resume text on file for job %d", userID, jobID), err)
		}
		return err
	}

	if err := s.store.UpdateStatus(ctx, ref, candidate.StatusRequested, candidate.StatusApproved); err != nil {
		return err
	}

	s.notifier.ApplicationApproved(ctx, userID, jobID)

	item := queue.WorkItem{Kind: candidate.KindInternal, JobID: jobID, UserID: userID}
	if err := s.dispatcher.Enqueue(ctx, item); err != nil {
		s.logger.LogError(err, "Approved application not enqueued", "ref", ref.String())
		return err
	}
	return nil
}

// Reject moves an application to rejected and notifies the applicant. No
// analysis is produced for rejected applications.
func (s *Service) Reject(ctx context.Context, jobID, userID int64) error {
	ref := candidate.Ref{Kind: candidate.KindInternal, JobID: jobID, UserID: userID}
	if err := s.store.UpdateStatus(ctx, ref, candidate.StatusRequested, candidate.StatusRejected); err != nil {
		return err
	}

	s.notifier.ApplicationRejected(ctx, userID, jobID)
	return nil
}

// ExternalUpload is one resume in a bulk batch, already extracted to text.
type ExternalUpload struct {
	Name       string
	Email      string
	ResumeText string
}

// BulkUpload registers a batch of external candidates and enqueues analysis
// for each one with usable resume text. Entries whose extraction produced
// nothing are recorded as failed immediately so the ranking can report them.
// The returned ids parallel the input order.
func (s *Service) BulkUpload(ctx context.Context, jobID int64, uploads []ExternalUpload) ([]int64, error) {
	ids := make([]int64, 0, len(uploads))
	for _, up := range uploads {
		id, err := s.store.CreateExternal(ctx, jobID, up.Name, up.Email, up.ResumeText)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)

		if strings.TrimSpace(up.ResumeText) == "" {
			if err := s.store.MarkAnalysisFailed(ctx, id, "resume text extraction failed"); err != nil {
				return ids, err
			}
			continue
		}

		item := queue.WorkItem{Kind: candidate.KindExternal, JobID: jobID, CandidateID: id}
		if err := s.dispatcher.Enqueue(ctx, item); err != nil {
			return ids, err
		}
	}

	s.logger.Info("Bulk batch enqueued", "job_id", jobID, "count", len(uploads))
	return ids, nil
}

// Rank computes the shortlist for a fully analyzed batch and persists the
// promotions. Ranking a batch with queued candidates is refused; a partial
// ranking would silently exclude them.
func (s *Service) Rank(ctx context.Context, jobID int64) (candidate.Ranking, error) {
	pending, err := s.store.CountPending(ctx, jobID)
	if err != nil {
		return candidate.Ranking{}, err
	}
	if pending > 0 {
		return candidate.Ranking{}, errors.NewValidationError(errors.ErrCodeBatchIncomplete,
			fmt.Sprintf("%d candidates on job %d are still queued", pending, jobID), nil)
	}

	batch, err := s.store.LoadBatch(ctx, jobID)
	if err != nil {
		return candidate.Ranking{}, err
	}

	ranking := candidate.Shortlist(batch)
	if err := s.store.MarkShortlisted(ctx, jobID, ranking.Shortlisted); err != nil {
		return candidate.Ranking{}, err
	}

	s.logger.Info("Batch ranked",
		"job_id", jobID,
		"valid", ranking.ValidCount,
		"shortlisted", ranking.ShortlistCount)
	return ranking, nil
}
