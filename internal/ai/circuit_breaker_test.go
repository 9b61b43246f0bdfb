package ai

import (
	"testing"
	"time"

	"talentscreen/internal/config"

	"google.golang.org/genai"
)

func breakerConfig(enabled bool) *config.OperationAIConfig {
	return &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.0-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          enabled,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}
}

func TestCircuitBreakerPerOperation(t *testing.T) {
	operations := []string{OperationJDSummary, OperationCandidateView, OperationInterviewerView}

	for _, op := range operations {
		t.Run(op, func(t *testing.T) {
			cb := NewAICircuitBreaker(op, breakerConfig(true), testLogger())
			stats := cb.GetStats()

			name, ok := stats["name"].(string)
			if !ok {
				t.Fatal("circuit breaker name not found")
			}
			if want := "AI-" + op; name != want {
				t.Errorf("name = %q, want %q", name, want)
			}

			state, ok := stats["state"].(string)
			if !ok {
				t.Fatal("circuit breaker state not found")
			}
			if state != "closed" {
				t.Errorf("initial state = %q, want closed", state)
			}
			if !cb.IsHealthy() {
				t.Error("fresh breaker should report healthy")
			}
		})
	}
}

func TestCircuitBreakerDisabled(t *testing.T) {
	cb := NewAICircuitBreaker(OperationJDSummary, breakerConfig(false), testLogger())
	if cb != nil {
		t.Fatal("disabled breaker should be nil")
	}

	// A nil breaker executes calls directly and reports healthy.
	executed := false
	if _, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		executed = true
		return nil, nil
	}); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !executed {
		t.Error("nil breaker must still execute the call")
	}

	stats := cb.GetStats()
	if enabled, _ := stats["enabled"].(bool); enabled {
		t.Error("nil breaker stats should report enabled=false")
	}
	if !cb.IsHealthy() {
		t.Error("nil breaker should report healthy")
	}
}
