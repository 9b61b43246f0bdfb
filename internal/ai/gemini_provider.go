package ai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"talentscreen/internal/config"
	tserrors "talentscreen/internal/errors"
	"talentscreen/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// Operation names for the three document generators. Used in circuit breaker
// names, span names, and log fields.
const (
	OperationJDSummary       = "jd_summary"
	OperationCandidateView   = "candidate_view"
	OperationInterviewerView = "interviewer_view"
)

// generateFunc performs a single model call and returns the raw response text.
// Extracted so tests can exercise the attempt loop without a live client.
type generateFunc func(ctx context.Context, userPrompt string, genCfg *genai.GenerateContentConfig) (string, *TokenUsage, error)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	config         *config.OperationAIConfig
	operation      string
	circuitBreaker *AICircuitBreaker
	logger         *tserrors.Logger
	generate       generateFunc
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operationType string, logger *tserrors.Logger) (*GeminiProvider, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, tserrors.NewAIError(tserrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	g := &GeminiProvider{
		client:         client,
		config:         cfg,
		operation:      operationType,
		circuitBreaker: NewAICircuitBreaker(operationType, cfg, logger),
		logger:         logger,
	}
	g.generate = g.generateContent
	return g, nil
}

// GenerateJDSummary implements Provider for job description summarization
func (g *GeminiProvider) GenerateJDSummary(ctx context.Context, input JDSummaryInput) (*types.JDSummary, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(DefaultUserPrompts.JDSummary, input.JobDescription)
	genCfg := buildJDSummarySchema(g.config.Temperature)
	genCfg.SystemInstruction = genai.NewContentFromText(DefaultSystemPrompts.JDSummary, genai.RoleUser)

	return generateValidated[types.JDSummary](g, ctx, userPrompt, genCfg,
		attribute.Int("input.job_length", len(input.JobDescription)))
}

// GenerateCandidateAnalysis implements Provider for the interview cheatsheet
func (g *GeminiProvider) GenerateCandidateAnalysis(ctx context.Context, input AnalysisInput) (*types.CandidateAnalysis, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(DefaultUserPrompts.CandidateAnalysis, input.JobDescription, input.ResumeText)
	genCfg := buildCandidateAnalysisSchema(g.config.Temperature)
	genCfg.SystemInstruction = genai.NewContentFromText(DefaultSystemPrompts.CandidateAnalysis, genai.RoleUser)

	return generateValidated[types.CandidateAnalysis](g, ctx, userPrompt, genCfg,
		attribute.Int("input.job_length", len(input.JobDescription)),
		attribute.Int("input.resume_length", len(input.ResumeText)))
}

// GenerateInterviewerAnalysis implements Provider for the screening report
func (g *GeminiProvider) GenerateInterviewerAnalysis(ctx context.Context, input AnalysisInput) (*types.InterviewerAnalysis, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(DefaultUserPrompts.InterviewerAnalysis, input.JobDescription, input.ResumeText)
	genCfg := buildInterviewerAnalysisSchema(g.config.Temperature)
	genCfg.SystemInstruction = genai.NewContentFromText(DefaultSystemPrompts.InterviewerAnalysis, genai.RoleUser)

	return generateValidated[types.InterviewerAnalysis](g, ctx, userPrompt, genCfg,
		attribute.Int("input.job_length", len(input.JobDescription)),
		attribute.Int("input.resume_length", len(input.ResumeText)))
}

// document is implemented by all three analysis document types
type document interface {
	Validate() error
}

// generateValidated runs the attempt loop for one operation: call the model,
// parse the JSON response, validate the document. A malformed or incomplete
// document consumes an attempt exactly like a transport failure. Attempts are
// separated by a fixed delay.
func generateValidated[T any, PT interface {
	*T
	document
}](g *GeminiProvider, ctx context.Context, userPrompt string, genCfg *genai.GenerateContentConfig, spanAttributes ...attribute.KeyValue) (PT, *TokenUsage, error) {
	tracer := otel.Tracer("talentscreen.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+g.operation)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	maxAttempts := *g.config.MaxAttempts
	var zero PT
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			g.logger.Warn("Retrying document generation",
				"operation", g.operation,
				"attempt", attempt,
				"max_attempts", maxAttempts,
				"error", lastErr.Error())

			select {
			case <-time.After(*g.config.RetryDelay):
			case <-ctx.Done():
				span.RecordError(ctx.Err())
				return zero, nil, ctx.Err()
			}
		}

		text, usage, err := g.generate(ctx, userPrompt, genCfg)
		if err != nil {
			lastErr = err
			continue
		}
		if text == "" {
			lastErr = tserrors.NewAIError(tserrors.ErrCodeAIResponseInvalid,
				"Model returned an empty response", nil)
			continue
		}

		out := PT(new(T))
		if err := json.Unmarshal([]byte(text), out); err != nil {
			lastErr = tserrors.NewAIError(tserrors.ErrCodeAIResponseInvalid,
				"Failed to parse model response for "+g.operation, err)
			continue
		}
		if err := out.Validate(); err != nil {
			lastErr = tserrors.NewAIError(tserrors.ErrCodeSchemaValidation,
				"Model response failed schema validation for "+g.operation, err)
			continue
		}

		if attempt > 1 {
			g.logger.Info("Document generation succeeded after retry",
				"operation", g.operation,
				"successful_attempt", attempt)
		}
		if usage != nil {
			span.SetAttributes(
				attribute.Int64("ai.tokens.input", usage.InputTokens),
				attribute.Int64("ai.tokens.output", usage.OutputTokens),
				attribute.Int64("ai.tokens.total", usage.TotalTokens),
			)
		}
		span.SetAttributes(attribute.Bool("success", true))
		return out, usage, nil
	}

	g.logger.LogError(lastErr, "Document generation failed after all attempts",
		"operation", g.operation,
		"total_attempts", maxAttempts)
	span.RecordError(lastErr)
	span.SetAttributes(attribute.Bool("success", false))

	return zero, nil, tserrors.NewAIError(tserrors.ErrCodeAIServiceFailed,
		fmt.Sprintf("Operation %s failed after %d attempts", g.operation, maxAttempts), lastErr)
}

// generateContent performs one model call behind the circuit breaker.
func (g *GeminiProvider) generateContent(ctx context.Context, userPrompt string, genCfg *genai.GenerateContentConfig) (string, *TokenUsage, error) {
	callCtx, cancel := context.WithTimeout(ctx, *g.config.Timeout)
	defer cancel()

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.client.Models.GenerateContent(callCtx, g.config.Model, genai.Text(userPrompt), genCfg)
	})
	if err != nil {
		if !isRetryableError(err) {
			g.logger.Debug("Model call failed with a non-retryable error",
				"operation", g.operation,
				"error", err.Error())
		}
		return "", nil, err
	}
	return result.Text(), extractTokenUsage(result), nil
}

// isRetryableError reports whether an error is a transient transport failure.
// The attempt loop retries regardless; this only controls log verbosity since
// auth and quota failures repeating identically is worth surfacing.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	return map[string]any{
		"operation": g.operation,
		"breaker":   g.circuitBreaker.GetStats(),
		"healthy":   g.circuitBreaker.IsHealthy(),
	}
}

// Close implements the Provider interface
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// extractTokenUsage extracts token usage information from a Gemini API response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
