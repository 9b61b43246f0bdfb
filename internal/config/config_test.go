package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Run from a directory without a config file so only defaults apply.
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 3, cfg.AI.MaxAttempts)
	assert.Equal(t, time.Second, cfg.AI.RetryDelay)
	assert.InDelta(t, 0.3, float64(cfg.AI.Temperature), 0.001)

	assert.Equal(t, "resume_analysis", cfg.Broker.Queue)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, 60, cfg.Pipeline.ModelCallsPerMinute)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "json", cfg.App.DefaultFormat)
	assert.Equal(t, []string{"json", "text"}, cfg.App.SupportedFormats)

	assert.False(t, cfg.Vault.Enabled)
	assert.Equal(t, "secret", cfg.Vault.MountPath)
	assert.Equal(t, "talentscreen", cfg.Vault.SecretPath)

	assert.True(t, cfg.Observability.Metrics.Enabled)
	assert.Equal(t, "9090", cfg.Observability.Metrics.Port)
	assert.False(t, cfg.Observability.Tracing.Enabled)
	assert.Equal(t, "stdout", cfg.Observability.Tracing.Exporter)
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TALENTSCREEN_AI_MODEL", "gemini-2.5-pro")
	t.Setenv("TALENTSCREEN_PIPELINE_WORKERS", "8")
	t.Setenv("TALENTSCREEN_APP_LOGLEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.AI.Model)
	assert.Equal(t, 8, cfg.Pipeline.Workers)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestGeminiKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "legacy-key")

	cfg := &Config{}
	cfg.applyFallbacks()
	assert.Equal(t, "legacy-key", cfg.AI.APIKey)

	// An explicitly configured key wins over the environment fallback.
	cfg = &Config{AI: AIConfig{APIKey: "configured-key"}}
	cfg.applyFallbacks()
	assert.Equal(t, "configured-key", cfg.AI.APIKey)
}

func TestOperationConfigMerging(t *testing.T) {
	globalTimeout := 60 * time.Second
	opTimeout := 90 * time.Second
	opAttempts := 5

	cfg := &Config{
		AI: AIConfig{
			Provider:    "gemini",
			Model:       "gemini-2.0-flash",
			Timeout:     globalTimeout,
			APIKey:      "global-key",
			MaxAttempts: 3,
			RetryDelay:  time.Second,
			Temperature: 0.3,
			CandidateView: OperationAIConfig{
				Model:       "gemini-2.5-pro",
				Timeout:     &opTimeout,
				MaxAttempts: &opAttempts,
			},
		},
	}

	t.Run("operation overrides survive the merge", func(t *testing.T) {
		cv := cfg.GetCandidateViewConfig()
		assert.Equal(t, "gemini-2.5-pro", cv.Model)
		assert.Equal(t, opTimeout, *cv.Timeout)
		assert.Equal(t, 5, *cv.MaxAttempts)
		// Unset fields inherit the globals.
		assert.Equal(t, "gemini", cv.Provider)
		assert.Equal(t, "global-key", cv.APIKey)
		assert.Equal(t, time.Second, *cv.RetryDelay)
		assert.InDelta(t, 0.3, float64(*cv.Temperature), 0.001)
	})

	t.Run("unconfigured operation inherits everything", func(t *testing.T) {
		jd := cfg.GetJDSummaryConfig()
		assert.Equal(t, "gemini-2.0-flash", jd.Model)
		assert.Equal(t, globalTimeout, *jd.Timeout)
		assert.Equal(t, 3, *jd.MaxAttempts)
	})

	t.Run("merge does not mutate the source config", func(t *testing.T) {
		_ = cfg.GetInterviewerViewConfig()
		assert.Nil(t, cfg.AI.InterviewerView.Timeout)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			AI: AIConfig{
				Provider:    "gemini",
				MaxAttempts: 3,
				Temperature: 0.3,
			},
			Broker:   BrokerConfig{Embedded: true},
			Pipeline: PipelineConfig{Workers: 4},
			App:      AppConfig{LogLevel: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing provider", func(c *Config) { c.AI.Provider = "" }, "ai.provider"},
		{"zero attempts", func(c *Config) { c.AI.MaxAttempts = 0 }, "ai.maxAttempts"},
		{"temperature out of range", func(c *Config) { c.AI.Temperature = 3 }, "ai.temperature"},
		{"no workers", func(c *Config) { c.Pipeline.Workers = 0 }, "pipeline.workers"},
		{"broker URL required without embedded", func(c *Config) { c.Broker.Embedded = false }, "broker.url"},
		{"bad log level", func(c *Config) { c.App.LogLevel = "verbose" }, "app.logLevel"},
		{"bad tracing exporter", func(c *Config) {
			c.Observability.Tracing.Enabled = true
			c.Observability.Tracing.Exporter = "jaeger"
		}, "observability.tracing.exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
