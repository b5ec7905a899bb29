package config

import "fmt"

// knownStrategies mirrors the strategy factory's selectable set. The
// factory tolerates unknown names at run time (falls back to standard);
// validation catches typos at startup instead.
var knownStrategies = map[string]bool{
	"standard":            true,
	"parallel":            true,
	"rapid":               true,
	"source-based":        true,
	"source-based-atomic": true,
	"source-based-entity": true,
	"focused-iteration":   true,
	"iterdrag":            true,
}

// knownCompressionModes matches knowledge.ParseMode.
var knownCompressionModes = map[string]bool{
	"ITERATION":            true,
	"QUESTION":             true,
	"NO_KNOWLEDGE":         true,
	"MAX_NR_OF_CHARACTERS": true,
}

// Validator performs validation on loaded configuration
type Validator struct {
	config *Config
}

// NewValidator creates a new configuration validator
func NewValidator(config *Config) *Validator {
	return &Validator{config: config}
}

// ValidateAll runs every validation and returns the first failure.
func (v *Validator) ValidateAll() error {
	if err := v.validateResearch(); err != nil {
		return err
	}
	if err := v.validateSearch(); err != nil {
		return err
	}
	if err := v.validateServer(); err != nil {
		return err
	}
	return v.validateLLMProviders()
}

func (v *Validator) validateResearch() error {
	r := v.config.Research
	if r == nil {
		return NewValidationError("research", "defaults", "", ErrMissingRequiredField)
	}
	if !knownStrategies[r.Strategy] {
		return NewValidationError("research", "defaults", "strategy",
			fmt.Errorf("%w: %q", ErrInvalidValue, r.Strategy))
	}
	if r.MaxIterations < 1 {
		return NewValidationError("research", "defaults", "max_iterations",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if r.QuestionsPerIteration < 1 {
		return NewValidationError("research", "defaults", "questions_per_iteration",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if !knownCompressionModes[r.CompressionMode] {
		return NewValidationError("research", "defaults", "compression_mode",
			fmt.Errorf("%w: %q", ErrInvalidValue, r.CompressionMode))
	}
	if r.OutputDir == "" {
		return NewValidationError("research", "defaults", "output_dir", ErrMissingRequiredField)
	}
	return nil
}

func (v *Validator) validateSearch() error {
	s := v.config.Search
	if s == nil {
		return NewValidationError("search", "defaults", "", ErrMissingRequiredField)
	}
	if s.Engine == "" {
		return NewValidationError("search", "defaults", "engine", ErrMissingRequiredField)
	}
	if s.MaxResults < 1 {
		return NewValidationError("search", "defaults", "max_results",
			fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if s.MaxFilteredResults < 0 {
		return NewValidationError("search", "defaults", "max_filtered_results",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateServer() error {
	s := v.config.Server
	if s == nil {
		return NewValidationError("server", "system", "", ErrMissingRequiredField)
	}
	if s.Port < 1 || s.Port > 65535 {
		return NewValidationError("server", "system", "port",
			fmt.Errorf("%w: %d", ErrInvalidValue, s.Port))
	}
	if s.RateLimit.Requests < 0 {
		return NewValidationError("server", "system", "rate_limit.requests",
			fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	return nil
}

func (v *Validator) validateLLMProviders() error {
	if v.config.LLMProviderRegistry == nil {
		return NewValidationError("llm_provider", "registry", "", ErrMissingRequiredField)
	}
	if !v.config.LLMProviderRegistry.Has(v.config.LLMProvider) {
		return NewValidationError("llm_provider", v.config.LLMProvider, "",
			ErrLLMProviderNotFound)
	}
	for name, provider := range v.config.LLMProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %q", ErrInvalidValue, provider.Type))
		}
		if provider.Type != LLMProviderTypeFallback && provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.Type == LLMProviderTypeOpenAIEndpoint && provider.BaseURL == "" {
			return NewValidationError("llm_provider", name, "base_url", ErrMissingRequiredField)
		}
		if provider.Type == LLMProviderTypeGRPC && provider.BaseURL == "" {
			return NewValidationError("llm_provider", name, "base_url", ErrMissingRequiredField)
		}
	}
	return nil
}
