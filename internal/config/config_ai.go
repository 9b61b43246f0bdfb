package config

import (
	"os"
)

// applyFallbacks applies environment variable fallbacks
func (c *Config) applyFallbacks() {
	// Legacy environment variable, kept for parity with existing deployments
	if c.AI.APIKey == "" {
		if key := os.Getenv("GEMINI_API_KEY"); key != "" {
			c.AI.APIKey = key
		}
	}
	if c.Database.DSN == "" {
		if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
			c.Database.DSN = dsn
		}
	}
}

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxAttempts == nil {
		opCfg.MaxAttempts = &c.AI.MaxAttempts
	}
	if opCfg.RetryDelay == nil {
		opCfg.RetryDelay = &c.AI.RetryDelay
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
}

// GetCandidateViewConfig returns the AI configuration for candidate-view
// generation with fallback to the global config
func (c *Config) GetCandidateViewConfig() OperationAIConfig {
	config := c.AI.CandidateView
	c.applyOperationDefaults(&config)
	return config
}

// GetInterviewerViewConfig returns the AI configuration for interviewer-view
// generation with fallback to the global config
func (c *Config) GetInterviewerViewConfig() OperationAIConfig {
	config := c.AI.InterviewerView
	c.applyOperationDefaults(&config)
	return config
}

// GetJDSummaryConfig returns the AI configuration for JD summary generation
// with fallback to the global config
func (c *Config) GetJDSummaryConfig() OperationAIConfig {
	config := c.AI.JDSummary
	c.applyOperationDefaults(&config)
	return config
}
