package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitializeDefaultsOnly(t *testing.T) {
	// Empty config dir: every built-in default applies.
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "standard", cfg.Research.Strategy)
	assert.Equal(t, 2, cfg.Research.MaxIterations)
	assert.Equal(t, 3, cfg.Research.QuestionsPerIteration)
	assert.Equal(t, "ITERATION", cfg.Research.CompressionMode)
	assert.Equal(t, "research_outputs", cfg.Research.OutputDir)

	assert.Equal(t, "auto", cfg.Search.Engine)
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, 5, cfg.Search.MaxFilteredResults)

	assert.Equal(t, 8765, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.Server.RateLimit.Window)

	assert.Equal(t, "ollama", cfg.LLMProvider)
	assert.True(t, cfg.LLMProviderRegistry.Has("ollama"))
	assert.True(t, cfg.LLMProviderRegistry.Has("fallback"))
}

func TestInitializeUserOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "ldr.yaml", `
system:
  port: 9000
  llm_provider: local
  rate_limit:
    requests: 10
    window: 30s
  retention:
    research_retention_days: 30
    event_ttl: 2h
research:
  strategy: parallel
  max_iterations: 5
  questions_per_iteration: 4
search:
  engine: wikipedia
  max_results: 25
`)
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  local:
    type: lmstudio
    model: qwen3-14b
    temperature: 0.2
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimit.Window)
	assert.Equal(t, 30, cfg.Retention.ResearchRetentionDays)
	assert.Equal(t, 2*time.Hour, cfg.Retention.EventTTL)

	assert.Equal(t, "parallel", cfg.Research.Strategy)
	assert.Equal(t, 5, cfg.Research.MaxIterations)
	assert.Equal(t, 4, cfg.Research.QuestionsPerIteration)
	// Untouched knobs keep their built-in defaults.
	assert.Equal(t, "ITERATION", cfg.Research.CompressionMode)

	assert.Equal(t, "wikipedia", cfg.Search.Engine)
	assert.Equal(t, 25, cfg.Search.MaxResults)

	assert.Equal(t, "local", cfg.LLMProvider)
	provider, err := cfg.LLMProviderRegistry.Get("local")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeLMStudio, provider.Type)
	assert.Equal(t, "qwen3-14b", provider.Model)
	// Built-in providers survive the merge.
	assert.True(t, cfg.LLMProviderRegistry.Has("openai"))
}

func TestInitializeUserProviderOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  ollama:
    type: ollama
    model: llama3.3:70b
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	provider, err := cfg.LLMProviderRegistry.Get("ollama")
	require.NoError(t, err)
	assert.Equal(t, "llama3.3:70b", provider.Model)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("TEST_LDR_ENGINE", "searxng")

	dir := t.TempDir()
	writeConfigFile(t, dir, "ldr.yaml", `
search:
  engine: "{{.TEST_LDR_ENGINE}}"
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "searxng", cfg.Search.Engine)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "ldr.yaml", "research: [not: a: map")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "unknown strategy",
			yaml: "research:\n  strategy: clever\n",
		},
		{
			name: "unknown compression mode",
			yaml: "research:\n  compression_mode: SOMETIMES\n",
		},
		{
			name: "unknown default provider",
			yaml: "system:\n  llm_provider: missing\n",
		},
		{
			name: "invalid port",
			yaml: "system:\n  port: 99999\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, "ldr.yaml", tt.yaml)

			_, err := Initialize(context.Background(), dir)
			require.Error(t, err)
		})
	}
}

func TestSnapshotIsolation(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	snap := cfg.Snapshot()
	cfg.Research.MaxIterations = 99
	cfg.Search.Engine = "changed"

	assert.Equal(t, 2, snap.Research.MaxIterations)
	assert.Equal(t, "auto", snap.Search.Engine)
}

func TestValidateGRPCProviderRequiresBaseURL(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "llm-providers.yaml", `
llm_providers:
  sidecar:
    type: grpc
    model: research-70b
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "base_url", vErr.Field)
}
