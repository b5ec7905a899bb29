package llm

import (
	"fmt"
	"os"
	"time"
)

// ProviderOptions carries everything a provider constructor needs.
type ProviderOptions struct {
	Model       string
	Endpoint    string
	APIKey      string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Default base URLs for the OpenAI-compatible local servers.
const (
	defaultOpenAIURL   = "https://api.openai.com/v1"
	defaultOllamaURL   = "http://localhost:11434/v1"
	defaultLMStudioURL = "http://localhost:1234/v1"
	defaultLlamaCppURL = "http://localhost:8080/v1"
	defaultVLLMURL     = "http://localhost:8000/v1"
)

// SupportedProviders is the whitelist; anything else is rejected at
// construction time.
var SupportedProviders = map[string]bool{
	"ollama":          true,
	"openai":          true,
	"anthropic":       true,
	"openai_endpoint": true,
	"lmstudio":        true,
	"llamacpp":        true,
	"vllm":            true,
	"grpc":            true,
	"fallback":        true,
}

// NewClient constructs the client for a provider name and wraps it in the
// think-tag filter. Unknown providers and unusable configurations degrade
// to the deterministic fallback rather than failing the research.
func NewClient(provider string, opts ProviderOptions) (Client, error) {
	if os.Getenv("LDR_USE_FALLBACK_LLM") != "" {
		return WithThinkFilter(NewFallbackClient()), nil
	}
	if !SupportedProviders[provider] {
		return nil, fmt.Errorf("unsupported llm provider %q", provider)
	}

	var (
		client Client
		err    error
	)
	switch provider {
	case "openai":
		if opts.Endpoint == "" {
			opts.Endpoint = defaultOpenAIURL
		}
		if opts.APIKey == "" {
			opts.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		client = newOpenAIClient(provider, opts)
	case "openai_endpoint":
		if opts.Endpoint == "" {
			return nil, fmt.Errorf("openai_endpoint provider requires an endpoint URL")
		}
		client = newOpenAIClient(provider, opts)
	case "ollama":
		if opts.Endpoint == "" {
			opts.Endpoint = defaultOllamaURL
		}
		client = newOpenAIClient(provider, opts)
	case "lmstudio":
		if opts.Endpoint == "" {
			opts.Endpoint = defaultLMStudioURL
		}
		client = newOpenAIClient(provider, opts)
	case "llamacpp":
		if opts.Endpoint == "" {
			opts.Endpoint = defaultLlamaCppURL
		}
		client = newOpenAIClient(provider, opts)
	case "vllm":
		if opts.Endpoint == "" {
			opts.Endpoint = defaultVLLMURL
		}
		client = newOpenAIClient(provider, opts)
	case "anthropic":
		if opts.APIKey == "" {
			opts.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if opts.APIKey == "" {
			return nil, fmt.Errorf("anthropic provider requires ANTHROPIC_API_KEY")
		}
		client = newAnthropicClient(opts)
	case "grpc":
		if opts.Endpoint == "" {
			return nil, fmt.Errorf("grpc provider requires a sidecar address")
		}
		client, err = NewGRPCClient(opts.Endpoint, opts)
		if err != nil {
			return nil, err
		}
	case "fallback":
		client = NewFallbackClient()
	}
	return WithThinkFilter(client), nil
}
