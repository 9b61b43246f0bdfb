package ai

import (
	"fmt"

	"talentscreen/internal/config"
	"talentscreen/internal/errors"
)

// NewProvider constructs the configured Provider implementation for one
// document operation.
func NewProvider(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (Provider, error) {
	logger.Debug("Initializing AI provider",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_attempts", *cfg.MaxAttempts)

	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeUnsupportedProvider,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}
}
