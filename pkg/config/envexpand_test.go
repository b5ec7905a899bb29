package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "search engine API key",
			input: "serp_api_key: {{.SERP_API_KEY}}",
			env:   map[string]string{"SERP_API_KEY": "sk-serp-12345"},
			want:  "serp_api_key: sk-serp-12345",
		},
		{
			name:  "searxng instance URL",
			input: "instance: {{.SEARXNG_INSTANCE}}",
			env:   map[string]string{"SEARXNG_INSTANCE": "https://searx.internal:8888"},
			want:  "instance: https://searx.internal:8888",
		},
		{
			name:  "provider endpoint assembled from parts",
			input: "base_url: {{.LLM_SCHEME}}://{{.LLM_HOST}}:{{.LLM_PORT}}/v1",
			env: map[string]string{
				"LLM_SCHEME": "http",
				"LLM_HOST":   "ollama.local",
				"LLM_PORT":   "11434",
			},
			want: "base_url: http://ollama.local:11434/v1",
		},
		{
			name:  "masking regex with anchors is untouched",
			input: `pattern: "^sk-[A-Za-z0-9]+$"`,
			env:   map[string]string{},
			want:  `pattern: "^sk-[A-Za-z0-9]+$"`,
		},
		{
			name:  "shell-style ${VAR} is not expanded",
			input: "pattern: key_${SUFFIX}_.*",
			env:   map[string]string{"SUFFIX": "leaked"},
			want:  "pattern: key_${SUFFIX}_.*",
		},
		{
			name:  "database password with dollar survives",
			input: "password: pa$$w0rd",
			env:   map[string]string{},
			want:  "password: pa$$w0rd",
		},
		{
			name:  "missing variable becomes empty",
			input: "brave_api_key: {{.BRAVE_API_KEY}}",
			env:   map[string]string{},
			want:  "brave_api_key: ",
		},
		{
			name:  "empty value is not the same as missing",
			input: "anthropic_api_key: {{.ANTHROPIC_API_KEY}}",
			env:   map[string]string{"ANTHROPIC_API_KEY": ""},
			want:  "anthropic_api_key: ",
		},
		{
			name: "nested research block",
			input: `
research:
  strategy: {{.RESEARCH_STRATEGY}}
  output_dir: {{.OUTPUT_DIR}}
`,
			env: map[string]string{
				"RESEARCH_STRATEGY": "focused_iteration",
				"OUTPUT_DIR":        "/data/research_outputs",
			},
			want: `
research:
  strategy: focused_iteration
  output_dir: /data/research_outputs
`,
		},
		{
			name:  "variables inside a YAML list",
			input: "engines:\n  - {{.PRIMARY_ENGINE}}\n  - {{.FALLBACK_ENGINE}}",
			env: map[string]string{
				"PRIMARY_ENGINE":  "searxng",
				"FALLBACK_ENGINE": "wikipedia",
			},
			want: "engines:\n  - searxng\n  - wikipedia",
		},
		{
			name:  "special characters in the expanded value",
			input: "openai_api_key: {{.OPENAI_API_KEY}}",
			env:   map[string]string{"OPENAI_API_KEY": "sk-proj-a1!b2#c3$"},
			want:  "openai_api_key: sk-proj-a1!b2#c3$",
		},
		{
			name:  "no templates means no change",
			input: "user_agent: local-deep-research/1.0",
			env:   map[string]string{"UNUSED": "x"},
			want:  "user_agent: local-deep-research/1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}

// Malformed template syntax must pass through unchanged, without leaking
// environment values, so the YAML parser reports the problem in context.
func TestExpandEnvMalformedTemplates(t *testing.T) {
	inputs := []string{
		"serp_api_key: {{.SERP_API_KEY",
		"serp_api_key: {{",
		"serp_api_key: {{.SERP_API_KEY}",
		"serp_api_key: {{SERP_API_KEY}}",
		"serp_api_key: {{.SERP API KEY}}",
		"serp_api_key: {{.SERP_API_KEY | upper}}",
		"engine: searxng\nserp_api_key: {{.SERP_API_KEY\nport: 8765",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Setenv("SERP_API_KEY", "must-not-leak")
			got := string(ExpandEnv([]byte(input)))
			assert.Equal(t, input, got)
			assert.NotContains(t, got, "must-not-leak")
		})
	}
}

func TestExpandEnvFeedsYAMLParser(t *testing.T) {
	t.Setenv("SEARXNG_INSTANCE", "https://searx.internal")

	expanded := ExpandEnv([]byte(`
search:
  engine: searxng
  instance: {{.SEARXNG_INSTANCE}}
`))

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(expanded, &doc))
	search := doc["search"].(map[string]any)
	assert.Equal(t, "https://searx.internal", search["instance"])
}

func TestExpandEnvBrokenTemplateStillParsesAsYAML(t *testing.T) {
	// Quoted, the unclosed template is an ordinary string literal.
	expanded := ExpandEnv([]byte(`
search:
  engine: brave
  api_key: "{{.BRAVE_API_KEY"
`))

	var doc map[string]any
	assert.NoError(t, yaml.Unmarshal(expanded, &doc))
}

func TestExpandEnvEmptyInput(t *testing.T) {
	assert.Empty(t, ExpandEnv(nil))
}

func TestExpandEnvConcurrent(t *testing.T) {
	t.Setenv("RESEARCH_STRATEGY", "standard")
	input := []byte("strategy: {{.RESEARCH_STRATEGY}}")

	var wg sync.WaitGroup
	results := make([]string, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = string(ExpandEnv(input))
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, "strategy: standard", got, "goroutine %d", i)
	}
}
