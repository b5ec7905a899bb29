package config

import "time"

// ServerConfig holds resolved HTTP server configuration.
type ServerConfig struct {
	// Host and Port make the bind address (default 0.0.0.0:8765).
	Host string
	Port int

	// AllowedWSOrigins are additional WebSocket origin patterns beyond
	// the request host.
	AllowedWSOrigins []string

	// RateLimit is the per-IP rolling-window request budget for the
	// public API. Zero disables limiting.
	RateLimit RateLimitConfig
}

// RateLimitConfig is a rolling-window request budget.
type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// DefaultServerConfig returns the built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Host: "0.0.0.0",
		Port: 8765,
		RateLimit: RateLimitConfig{
			Requests: 60,
			Window:   time.Minute,
		},
	}
}
