package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application. A running research never reads
// it directly; the service captures a Snapshot at research start so
// mid-run edits take effect on the next research only.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Research loop defaults (strategy, iterations, compression)
	Research *ResearchDefaults

	// Search engine defaults (engine selection, result caps, timeouts)
	Search *SearchDefaults

	// Server settings (bind address, WS origins, rate limiting)
	Server *ServerConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Default LLM provider name, resolved against the registry
	LLMProvider string

	// LLM provider registry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// Snapshot is the immutable per-run view of the research defaults. The
// service captures one at research start and hands it to the worker, so
// a running research is isolated from configuration changes.
type Snapshot struct {
	Research ResearchDefaults
	Search   SearchDefaults
}

// Snapshot copies the mutable research and search defaults by value.
func (c *Config) Snapshot() Snapshot {
	return Snapshot{
		Research: *c.Research,
		Search:   *c.Search,
	}
}
