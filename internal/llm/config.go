package llm

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskScenario TaskType = "scenario"
)

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	// APIKey is the credential for the remote service. An empty key disables
	// remote generation entirely.
	APIKey         string  `env:"CHRONOS_LLM_API_KEY"`
	LogCalls       bool    `env:"CHRONOS_LLM_LOG_CALLS"`
	Endpoint       string  `env:"CHRONOS_LLM_ENDPOINT"`
	Model          string  `env:"CHRONOS_LLM_MODEL"`
	TimeoutMs      int     `env:"CHRONOS_LLM_TIMEOUT_MS"` // 0 leaves only the transport's limits
	MaxRetries     int     `env:"CHRONOS_LLM_MAX_RETRIES"` // extra attempts after a transient failure
	Temperature    float64 `env:"CHRONOS_LLM_TEMPERATURE"`
	MaxTokens      int     `env:"CHRONOS_LLM_MAX_TOKENS"`
	ThinkingBudget int     `env:"CHRONOS_LLM_THINKING_BUDGET"`
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// Without an API key remote generation is disabled.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint:       "https://generativelanguage.googleapis.com",
		Model:          "gemini-3-pro-preview",
		TimeoutMs:      120000,
		MaxRetries:     0,
		Temperature:    0.9,
		MaxTokens:      16384,
		ThinkingBudget: 4000,
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() (LLMConfig, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return LLMConfig{}, fmt.Errorf("parse llm env: %w", err)
	}
	if cfg.TimeoutMs < 0 {
		return LLMConfig{}, fmt.Errorf("CHRONOS_LLM_TIMEOUT_MS must not be negative, got %d", cfg.TimeoutMs)
	}
	if cfg.MaxRetries < 0 {
		return LLMConfig{}, fmt.Errorf("CHRONOS_LLM_MAX_RETRIES must not be negative, got %d", cfg.MaxRetries)
	}
	return cfg, nil
}

// Enabled reports whether a credential is configured.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}
