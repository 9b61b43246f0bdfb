package ai

import (
	"context"

	"talentscreen/internal/types"
)

// Provider generates the three structured analysis documents. Implementations
// must return documents that pass their Validate method or an error; callers
// that need never-fail semantics wrap a Provider in a Service.
type Provider interface {
	GenerateJDSummary(ctx context.Context, input JDSummaryInput) (*types.JDSummary, *TokenUsage, error)
	GenerateCandidateAnalysis(ctx context.Context, input AnalysisInput) (*types.CandidateAnalysis, *TokenUsage, error)
	GenerateInterviewerAnalysis(ctx context.Context, input AnalysisInput) (*types.InterviewerAnalysis, *TokenUsage, error)
	Close() error
}

// JDSummaryInput carries the raw posting text for summarization.
type JDSummaryInput struct {
	JobDescription string
}

// AnalysisInput carries the texts both analysis documents are generated from.
type AnalysisInput struct {
	JobDescription string
	ResumeText     string
}

// TokenUsage represents token usage information from model responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}
