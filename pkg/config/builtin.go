package config

import "time"

// BuiltinConfig holds the configuration that ships with the binary.
// User YAML overrides entries with the same name.
type BuiltinConfig struct {
	LLMProviders       map[string]LLMProviderConfig
	DefaultLLMProvider string
}

// GetBuiltinConfig returns the built-in configuration. A fresh value is
// returned on every call so callers can mutate their copy safely.
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		DefaultLLMProvider: "ollama",
		LLMProviders: map[string]LLMProviderConfig{
			"ollama": {
				Type:        LLMProviderTypeOllama,
				Model:       "gemma3:12b",
				Temperature: 0.7,
				Timeout:     120 * time.Second,
			},
			"openai": {
				Type:      LLMProviderTypeOpenAI,
				Model:     "gpt-4o",
				APIKeyEnv: "OPENAI_API_KEY",
				Timeout:   60 * time.Second,
			},
			"anthropic": {
				Type:      LLMProviderTypeAnthropic,
				Model:     "claude-sonnet-4-5",
				APIKeyEnv: "ANTHROPIC_API_KEY",
				Timeout:   60 * time.Second,
			},
			// Deterministic no-model stand-in; also forced by
			// LDR_USE_FALLBACK_LLM for offline runs.
			"fallback": {
				Type: LLMProviderTypeFallback,
			},
		},
	}
}
