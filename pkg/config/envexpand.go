package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go
// template syntax ({{.VAR_NAME}}). Plain $ substitution is deliberately
// not supported: config values in this system routinely contain literal
// dollars that must survive untouched, e.g. masking regexes
// (`^sk-[A-Za-z0-9]+$`), passwords, and shell fragments.
//
// Examples:
//   - serp_api_key: {{.SERP_API_KEY}}
//   - instance: {{.SEARXNG_INSTANCE}}
//   - pattern: "key_${SUFFIX}$" → preserved literally
//
// Missing variables expand to the empty string; required-field
// validation happens later. Malformed template syntax returns the input
// unchanged so the YAML parser can report it in context.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
