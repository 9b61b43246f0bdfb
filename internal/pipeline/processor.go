// Package pipeline runs the asynchronous analysis flow: a Dispatcher feeds a
// worker pool from the broker, and a Processor turns each work item into two
// analysis documents and a final score committed in one step.
package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/time/rate"

	"talentscreen/internal/candidate"
	"talentscreen/internal/errors"
	"talentscreen/internal/queue"
	"talentscreen/internal/scoring"
	"talentscreen/internal/types"
)

// Store is the persistence surface the processor needs.
type Store interface {
	LoadJobText(ctx context.Context, jobID int64) (string, error)
	LoadResumeText(ctx context.Context, ref candidate.Ref) (string, error)
	UpdateStatus(ctx context.Context, ref candidate.Ref, from, to candidate.Status) error
	CommitAnalysis(ctx context.Context, ref candidate.Ref, result candidate.AnalysisResult) error
}

// Analyzer generates both analysis documents with never-fail semantics. The
// boolean reports whether a fallback document was substituted.
type Analyzer interface {
	CandidateAnalysis(ctx context.Context, jobDescription, resumeText string) (*types.CandidateAnalysis, bool)
	InterviewerAnalysis(ctx context.Context, jobDescription, resumeText string) (*types.InterviewerAnalysis, bool)
}

// Metrics receives pipeline events. Implementations must be safe for
// concurrent use.
type Metrics interface {
	ItemProcessed(kind string, duration time.Duration)
	ItemDropped(kind, reason string)
	ItemRequeued(kind string)
	FallbackUsed(operation string)
}

// NopMetrics discards all events.
type NopMetrics struct{}

func (NopMetrics) ItemProcessed(string, time.Duration) {}
func (NopMetrics) ItemDropped(string, string)          {}
func (NopMetrics) ItemRequeued(string)                 {}
func (NopMetrics) FallbackUsed(string)                 {}

// Outcome tells the dispatcher how to settle a delivery.
type Outcome int

const (
	// OutcomeAck settles the item: processed, or dropped on purpose.
	OutcomeAck Outcome = iota
	// OutcomeRequeue returns the item to the broker for redelivery.
	OutcomeRequeue
)

// Processor executes one work item end to end.
type Processor struct {
	store    Store
	analyzer Analyzer
	limiter  *rate.Limiter
	metrics  Metrics
	logger   *errors.Logger
}

// NewProcessor wires a processor. callsPerMinute bounds the aggregate model
// call rate across all workers; zero disables the limit.
func NewProcessor(store Store, analyzer Analyzer, callsPerMinute, burst int, metrics Metrics, logger *errors.Logger) *Processor {
	var limiter *rate.Limiter
	if callsPerMinute > 0 {
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60.0), burst)
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &Processor{
		store:    store,
		analyzer: analyzer,
		limiter:  limiter,
		metrics:  metrics,
		logger:   logger,
	}
}

// Process analyzes one candidate record. Missing source texts settle the item
// without producing documents: the record was deleted or never completed, and
// redelivery would not change that. Persistence failures requeue so a
// transient outage cannot lose the item.
func (p *Processor) Process(ctx context.Context, item queue.WorkItem) Outcome {
	ref := item.Ref()
	started := time.Now()

	if item.Kind == candidate.KindInternal {
		// Best effort: on redelivery the record is already past approved,
		// which is fine, the commit precondition still protects it.
		if err := p.store.UpdateStatus(ctx, ref, candidate.StatusApproved, candidate.StatusProcessing); err != nil {
			if errors.HasCode(err, errors.ErrCodeRecordNotFound) {
				p.logger.Warn("Dropping work item for missing record", "ref", ref.String())
				p.metrics.ItemDropped(string(item.Kind), "record_missing")
				return OutcomeAck
			}
			p.logger.Debug("Skipping processing status update",
				"ref", ref.String(), "error", err.Error())
		}
	}

	jobText, err := p.store.LoadJobText(ctx, ref.JobID)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeRecordNotFound) {
			p.logger.Warn("Dropping work item for missing job", "ref", ref.String())
			p.metrics.ItemDropped(string(item.Kind), "job_missing")
			return OutcomeAck
		}
		p.logger.LogError(err, "Failed to load job text", "ref", ref.String())
		p.metrics.ItemRequeued(string(item.Kind))
		return OutcomeRequeue
	}

	resumeText, err := p.store.LoadResumeText(ctx, ref)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeRecordNotFound) {
			p.logger.Warn("Dropping work item for missing resume", "ref", ref.String())
			p.metrics.ItemDropped(string(item.Kind), "resume_missing")
			return OutcomeAck
		}
		p.logger.LogError(err, "Failed to load resume text", "ref", ref.String())
		p.metrics.ItemRequeued(string(item.Kind))
		return OutcomeRequeue
	}

	if outcome, ok := p.waitForModelSlot(ctx, item); !ok {
		return outcome
	}
	candidateDoc, cvFallback := p.analyzer.CandidateAnalysis(ctx, jobText, resumeText)
	if cvFallback {
		p.metrics.FallbackUsed("candidate_view")
	}

	if outcome, ok := p.waitForModelSlot(ctx, item); !ok {
		return outcome
	}
	interviewerDoc, ivFallback := p.analyzer.InterviewerAnalysis(ctx, jobText, resumeText)
	if ivFallback {
		p.metrics.FallbackUsed("interviewer_view")
	}

	result := candidate.AnalysisResult{
		CandidateDoc:   candidateDoc,
		InterviewerDoc: interviewerDoc,
		FinalScore:     scoring.FinalScore(interviewerDoc),
	}

	if err := p.store.CommitAnalysis(ctx, ref, result); err != nil {
		var illegal *candidate.IllegalTransitionError
		if stderrors.As(err, &illegal) {
			// The record left the pipeline while we worked, e.g. it was
			// rejected. The analysis is discarded, not retried.
			p.logger.Warn("Dropping analysis for record outside the pipeline",
				"ref", ref.String(), "current_status", string(illegal.From))
			p.metrics.ItemDropped(string(item.Kind), "state_conflict")
			return OutcomeAck
		}
		if errors.HasCode(err, errors.ErrCodeRecordNotFound) {
			p.metrics.ItemDropped(string(item.Kind), "record_missing")
			return OutcomeAck
		}
		p.logger.LogError(err, "Failed to commit analysis", "ref", ref.String())
		p.metrics.ItemRequeued(string(item.Kind))
		return OutcomeRequeue
	}

	p.logger.Info("Work item processed",
		"ref", ref.String(),
		"final_score", result.FinalScore,
		"candidate_fallback", cvFallback,
		"interviewer_fallback", ivFallback,
		"duration_ms", time.Since(started).Milliseconds())
	p.metrics.ItemProcessed(string(item.Kind), time.Since(started))
	return OutcomeAck
}

// waitForModelSlot blocks on the shared model-call limiter. A canceled
// context requeues the item so shutdown never drops work mid-flight.
func (p *Processor) waitForModelSlot(ctx context.Context, item queue.WorkItem) (Outcome, bool) {
	if p.limiter == nil {
		return OutcomeAck, true
	}
	if err := p.limiter.Wait(ctx); err != nil {
		p.metrics.ItemRequeued(string(item.Kind))
		return OutcomeRequeue, false
	}
	return OutcomeAck, true
}
