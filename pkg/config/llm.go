package config

import (
	"fmt"
	"sync"
	"time"
)

// LLMProviderType defines supported LLM providers.
type LLMProviderType string

const (
	LLMProviderTypeOllama         LLMProviderType = "ollama"
	LLMProviderTypeOpenAI         LLMProviderType = "openai"
	LLMProviderTypeAnthropic      LLMProviderType = "anthropic"
	LLMProviderTypeOpenAIEndpoint LLMProviderType = "openai_endpoint"
	LLMProviderTypeLMStudio       LLMProviderType = "lmstudio"
	LLMProviderTypeLlamaCpp       LLMProviderType = "llamacpp"
	LLMProviderTypeVLLM           LLMProviderType = "vllm"
	LLMProviderTypeGRPC           LLMProviderType = "grpc"
	LLMProviderTypeFallback       LLMProviderType = "fallback"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOllama,
		LLMProviderTypeOpenAI,
		LLMProviderTypeAnthropic,
		LLMProviderTypeOpenAIEndpoint,
		LLMProviderTypeLMStudio,
		LLMProviderTypeLlamaCpp,
		LLMProviderTypeVLLM,
		LLMProviderTypeGRPC,
		LLMProviderTypeFallback:
		return true
	default:
		return false
	}
}

// LLMProviderConfig defines LLM provider configuration
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type"`

	// Model name (required for all types except fallback)
	Model string `yaml:"model,omitempty"`

	// Environment variable name for API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL. Required for openai_endpoint
	// and grpc (the sidecar address).
	BaseURL string `yaml:"base_url,omitempty"`

	// Sampling temperature
	Temperature float64 `yaml:"temperature,omitempty"`

	// Completion token cap; zero uses the provider default
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Per-call request timeout
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
