package ai

import (
	"context"

	"talentscreen/internal/config"
	"talentscreen/internal/errors"
	"talentscreen/internal/types"
)

// Analyzer generates analysis documents with never-fail semantics: when a
// provider exhausts its attempt budget, the predefined fallback document for
// that operation is returned instead of an error. The boolean result reports
// whether a fallback was substituted so callers can count and log it.
//
// Each operation runs on its own provider so per-operation configuration
// (model, timeout, circuit breaker) applies independently.
type Analyzer struct {
	jdSummary       Provider
	candidateView   Provider
	interviewerView Provider
	logger          *errors.Logger
}

// NewAnalyzer builds providers for all three operations from the resolved
// per-operation configurations.
func NewAnalyzer(cfg *config.Config, logger *errors.Logger) (*Analyzer, error) {
	jdCfg := cfg.GetJDSummaryConfig()
	jdProvider, err := NewProvider(&jdCfg, OperationJDSummary, logger)
	if err != nil {
		return nil, err
	}

	cvCfg := cfg.GetCandidateViewConfig()
	cvProvider, err := NewProvider(&cvCfg, OperationCandidateView, logger)
	if err != nil {
		return nil, err
	}

	ivCfg := cfg.GetInterviewerViewConfig()
	ivProvider, err := NewProvider(&ivCfg, OperationInterviewerView, logger)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		jdSummary:       jdProvider,
		candidateView:   cvProvider,
		interviewerView: ivProvider,
		logger:          logger,
	}, nil
}

// NewAnalyzerWithProviders wires an Analyzer from existing providers.
func NewAnalyzerWithProviders(jdSummary, candidateView, interviewerView Provider, logger *errors.Logger) *Analyzer {
	return &Analyzer{
		jdSummary:       jdSummary,
		candidateView:   candidateView,
		interviewerView: interviewerView,
		logger:          logger,
	}
}

// JDSummary summarizes a raw job description, substituting the fallback
// summary when generation fails.
func (a *Analyzer) JDSummary(ctx context.Context, jobDescription string) (*types.JDSummary, bool) {
	doc, _, err := a.jdSummary.GenerateJDSummary(ctx, JDSummaryInput{JobDescription: jobDescription})
	if err != nil {
		a.logger.Warn("Substituting fallback document",
			"operation", OperationJDSummary,
			"error", err.Error())
		return types.FallbackJDSummary(), true
	}
	return doc, false
}

// CandidateAnalysis generates the interview cheatsheet, substituting the
// fallback document when generation fails.
func (a *Analyzer) CandidateAnalysis(ctx context.Context, jobDescription, resumeText string) (*types.CandidateAnalysis, bool) {
	doc, _, err := a.candidateView.GenerateCandidateAnalysis(ctx, AnalysisInput{
		JobDescription: jobDescription,
		ResumeText:     resumeText,
	})
	if err != nil {
		a.logger.Warn("Substituting fallback document",
			"operation", OperationCandidateView,
			"error", err.Error())
		return types.FallbackCandidateAnalysis(), true
	}
	return doc, false
}

// InterviewerAnalysis generates the screening report, substituting the
// fallback document when generation fails. Fallback reports carry zero fit
// scores, so a candidate whose analysis failed ranks at the bottom rather
// than disappearing.
func (a *Analyzer) InterviewerAnalysis(ctx context.Context, jobDescription, resumeText string) (*types.InterviewerAnalysis, bool) {
	doc, _, err := a.interviewerView.GenerateInterviewerAnalysis(ctx, AnalysisInput{
		JobDescription: jobDescription,
		ResumeText:     resumeText,
	})
	if err != nil {
		a.logger.Warn("Substituting fallback document",
			"operation", OperationInterviewerView,
			"error", err.Error())
		return types.FallbackInterviewerAnalysis(), true
	}
	return doc, false
}

// Close releases all providers.
func (a *Analyzer) Close() error {
	var firstErr error
	for _, p := range []Provider{a.jdSummary, a.candidateView, a.interviewerView} {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
