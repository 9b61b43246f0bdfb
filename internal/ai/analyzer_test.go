package ai

import (
	"context"
	stderrors "errors"
	"testing"

	"talentscreen/internal/types"
)

// stubProvider returns canned documents or a canned error for every operation.
type stubProvider struct {
	jdDoc  *types.JDSummary
	cvDoc  *types.CandidateAnalysis
	ivDoc  *types.InterviewerAnalysis
	err    error
	closed bool
}

func (s *stubProvider) GenerateJDSummary(ctx context.Context, input JDSummaryInput) (*types.JDSummary, *TokenUsage, error) {
	return s.jdDoc, nil, s.err
}

func (s *stubProvider) GenerateCandidateAnalysis(ctx context.Context, input AnalysisInput) (*types.CandidateAnalysis, *TokenUsage, error) {
	return s.cvDoc, nil, s.err
}

func (s *stubProvider) GenerateInterviewerAnalysis(ctx context.Context, input AnalysisInput) (*types.InterviewerAnalysis, *TokenUsage, error) {
	return s.ivDoc, nil, s.err
}

func (s *stubProvider) Close() error {
	s.closed = true
	return nil
}

func TestAnalyzerReturnsProviderDocuments(t *testing.T) {
	iv := types.FallbackInterviewerAnalysis()
	iv.PreliminaryAssessment.TechnicalFitScore = types.Float64Ptr(0.9)
	ok := &stubProvider{
		jdDoc: types.FallbackJDSummary(),
		cvDoc: types.FallbackCandidateAnalysis(),
		ivDoc: iv,
	}
	a := NewAnalyzerWithProviders(ok, ok, ok, testLogger())

	doc, fallback := a.InterviewerAnalysis(context.Background(), "jd", "resume")
	if fallback {
		t.Error("fallback = true, want false on provider success")
	}
	if *doc.PreliminaryAssessment.TechnicalFitScore != 0.9 {
		t.Error("Analyzer did not pass through the provider's document")
	}
}

func TestAnalyzerSubstitutesFallbacks(t *testing.T) {
	failing := &stubProvider{err: stderrors.New("model unavailable")}
	a := NewAnalyzerWithProviders(failing, failing, failing, testLogger())
	ctx := context.Background()

	jd, fellBack := a.JDSummary(ctx, "jd text")
	if !fellBack {
		t.Error("JDSummary fallback = false, want true")
	}
	if err := jd.Validate(); err != nil {
		t.Errorf("fallback JD summary fails validation: %v", err)
	}

	cv, fellBack := a.CandidateAnalysis(ctx, "jd text", "resume text")
	if !fellBack {
		t.Error("CandidateAnalysis fallback = false, want true")
	}
	if err := cv.Validate(); err != nil {
		t.Errorf("fallback cheatsheet fails validation: %v", err)
	}

	iv, fellBack := a.InterviewerAnalysis(ctx, "jd text", "resume text")
	if !fellBack {
		t.Error("InterviewerAnalysis fallback = false, want true")
	}
	if err := iv.Validate(); err != nil {
		t.Errorf("fallback screening report fails validation: %v", err)
	}
	if *iv.PreliminaryAssessment.TechnicalFitScore != 0 {
		t.Error("fallback screening report must carry zero fit scores")
	}
}

func TestAnalyzerCloseReleasesAllProviders(t *testing.T) {
	p1 := &stubProvider{}
	p2 := &stubProvider{}
	p3 := &stubProvider{}
	a := NewAnalyzerWithProviders(p1, p2, p3, testLogger())

	if err := a.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	for i, p := range []*stubProvider{p1, p2, p3} {
		if !p.closed {
			t.Errorf("provider %d not closed", i)
		}
	}
}
