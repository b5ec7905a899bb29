// Package masking scrubs credentials from text before it is persisted
// or shown to users. Engine and provider errors routinely echo the
// request that failed, which can carry API keys in URLs, headers, or
// JSON bodies.
package masking

import (
	"os"
	"strings"
)

// secretEnvVars are the environment variables whose values must never
// appear in stored error text. The set matches the keys the engine
// registry and the LLM factory read.
var secretEnvVars = []string{
	"SERP_API_KEY",
	"BRAVE_API_KEY",
	"GOOGLE_PSE_API_KEY",
	"GUARDIAN_API_KEY",
	"NCBI_API_KEY",
	"GITHUB_API_KEY",
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"DB_PASSWORD",
}

// Service applies credential masking to error messages and diagnostics.
// Created once at application startup. Thread-safe and stateless aside
// from the compiled patterns and the secret values captured at creation.
type Service struct {
	patterns []CompiledPattern
	secrets  []string
}

// NewService creates a masking service. Secret values are captured from
// the environment once; a value shorter than 6 characters is ignored to
// avoid masking unrelated text.
func NewService(extraEnvVars ...string) *Service {
	s := &Service{patterns: builtinPatterns}
	for _, name := range append(append([]string{}, secretEnvVars...), extraEnvVars...) {
		if v := os.Getenv(name); len(v) >= 6 {
			s.secrets = append(s.secrets, v)
		}
	}
	return s
}

// Mask returns text with every known credential shape and every
// captured secret value replaced.
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}
	for _, secret := range s.secrets {
		text = strings.ReplaceAll(text, secret, "***MASKED***")
	}
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskError is a nil-tolerant convenience for error values.
func (s *Service) MaskError(err error) string {
	if err == nil {
		return ""
	}
	return s.Mask(err.Error())
}
