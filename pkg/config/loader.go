package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// LDRYAMLConfig represents the complete ldr.yaml file structure
type LDRYAMLConfig struct {
	System   *SystemYAMLConfig `yaml:"system"`
	Research *ResearchDefaults `yaml:"research"`
	Search   *SearchDefaults   `yaml:"search"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Host             string              `yaml:"host,omitempty"`
	Port             int                 `yaml:"port,omitempty"`
	AllowedWSOrigins []string            `yaml:"allowed_ws_origins,omitempty"`
	RateLimit        *RateLimitYAML      `yaml:"rate_limit,omitempty"`
	Retention        *RetentionYAML      `yaml:"retention,omitempty"`
	LLMProvider      string              `yaml:"llm_provider,omitempty"`
}

// RateLimitYAML holds rate limiter settings from YAML. Window is parsed
// to time.Duration.
type RateLimitYAML struct {
	Requests *int   `yaml:"requests,omitempty"`
	Window   string `yaml:"window,omitempty"`
}

// RetentionYAML holds retention settings from YAML with duration strings.
type RetentionYAML struct {
	ResearchRetentionDays int    `yaml:"research_retention_days,omitempty"`
	EventTTL              string `yaml:"event_ttl,omitempty"`
	CleanupInterval       string `yaml:"cleanup_interval,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir (both are optional; built-in
//     defaults cover a missing file)
//  2. Expand environment variables
//  3. Merge built-in + user-defined configurations
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"default_provider", cfg.LLMProvider,
		"default_strategy", cfg.Research.Strategy,
		"default_engine", cfg.Search.Engine)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load ldr.yaml (system, research, search)
	ldrConfig, err := loader.loadLDRYAML()
	if err != nil {
		return nil, NewLoadError("ldr.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined providers (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 5. Resolve research/search defaults (YAML overrides built-in;
	// non-zero user values win)
	research := DefaultResearchDefaults()
	if ldrConfig.Research != nil {
		if err := mergo.Merge(research, ldrConfig.Research, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge research defaults: %w", err)
		}
	}
	search := DefaultSearchDefaults()
	if ldrConfig.Search != nil {
		if err := mergo.Merge(search, ldrConfig.Search, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge search defaults: %w", err)
		}
	}

	// 6. Resolve system config
	server := resolveServerConfig(ldrConfig.System)
	retention := resolveRetentionConfig(ldrConfig.System)
	llmProvider := resolveLLMProvider(ldrConfig.System, builtin)

	return &Config{
		configDir:           configDir,
		Research:            research,
		Search:              search,
		Server:              server,
		Retention:           retention,
		LLMProvider:         llmProvider,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

// loadYAML reads one config file. Missing files are not an error: the
// built-in defaults then apply unchanged.
func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution
	// errors, allowing the YAML parser to handle the content (or fail
	// with a clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadLDRYAML() (*LDRYAMLConfig, error) {
	var config LDRYAMLConfig
	if err := l.loadYAML("ldr.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveServerConfig resolves server configuration from system YAML, applying defaults.
func resolveServerConfig(sys *SystemYAMLConfig) *ServerConfig {
	cfg := DefaultServerConfig()

	if sys == nil {
		return cfg
	}

	if sys.Host != "" {
		cfg.Host = sys.Host
	}
	if sys.Port > 0 {
		cfg.Port = sys.Port
	}
	cfg.AllowedWSOrigins = sys.AllowedWSOrigins

	if sys.RateLimit != nil {
		if sys.RateLimit.Requests != nil {
			cfg.RateLimit.Requests = *sys.RateLimit.Requests
		}
		if sys.RateLimit.Window != "" {
			if d, err := time.ParseDuration(sys.RateLimit.Window); err == nil {
				cfg.RateLimit.Window = d
			} else {
				slog.Warn("Invalid window in rate_limit config, using default",
					"value", sys.RateLimit.Window,
					"default", cfg.RateLimit.Window,
					"error", err)
			}
		}
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.ResearchRetentionDays > 0 {
		cfg.ResearchRetentionDays = r.ResearchRetentionDays
	}
	if r.EventTTL != "" {
		if d, err := time.ParseDuration(r.EventTTL); err == nil {
			cfg.EventTTL = d
		} else {
			slog.Warn("Invalid event_ttl in retention config, using default",
				"value", r.EventTTL, "default", cfg.EventTTL, "error", err)
		}
	}
	if r.CleanupInterval != "" {
		if d, err := time.ParseDuration(r.CleanupInterval); err == nil {
			cfg.CleanupInterval = d
		} else {
			slog.Warn("Invalid cleanup_interval in retention config, using default",
				"value", r.CleanupInterval, "default", cfg.CleanupInterval, "error", err)
		}
	}

	return cfg
}

// resolveLLMProvider resolves the default provider name from system YAML.
func resolveLLMProvider(sys *SystemYAMLConfig, builtin *BuiltinConfig) string {
	if sys != nil && sys.LLMProvider != "" {
		return sys.LLMProvider
	}
	return builtin.DefaultLLMProvider
}
