package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// ResearchRetentionDays is how many days to keep finished research
	// records (with their logs, resources, and usage rows) before the
	// cleanup loop deletes them.
	ResearchRetentionDays int `yaml:"research_retention_days"`

	// EventTTL is the maximum age of orphaned Event rows before deletion.
	// Cascade delete handles the normal case; this is a safety net.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		ResearchRetentionDays: 365,
		EventTTL:              1 * time.Hour,
		CleanupInterval:       12 * time.Hour,
	}
}
