package masking

import "regexp"

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns covers the credential shapes that leak into error
// messages: engine API keys travel in URLs and headers, and provider
// errors often echo the request that failed.
var builtinPatterns = []CompiledPattern{
	{
		Name:        "url_api_key",
		Regex:       regexp.MustCompile(`(?i)([?&](?:api_key|apikey|key|token|access_token)=)[^&\s"']+`),
		Replacement: "${1}***MASKED***",
		Description: "API keys passed as URL query parameters",
	},
	{
		Name:        "bearer_token",
		Regex:       regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9._~+/=-]{8,}`),
		Replacement: "${1}***MASKED***",
		Description: "Bearer tokens in echoed Authorization headers",
	},
	{
		Name:        "openai_key",
		Regex:       regexp.MustCompile(`sk-[A-Za-z0-9_-]{20,}`),
		Replacement: "***MASKED***",
		Description: "OpenAI-style secret keys",
	},
	{
		Name:        "anthropic_key",
		Regex:       regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
		Replacement: "***MASKED***",
		Description: "Anthropic API keys",
	},
	{
		Name:        "url_credentials",
		Regex:       regexp.MustCompile(`(//)[^/\s:@]+:[^/\s@]+@`),
		Replacement: "${1}***MASKED***@",
		Description: "Credentials embedded in URLs (user:pass@host)",
	},
	{
		Name:        "json_api_key",
		Regex:       regexp.MustCompile(`(?i)("(?:api_key|apikey|token|secret|password)"\s*:\s*")[^"]+(")`),
		Replacement: "${1}***MASKED***${2}",
		Description: "Secrets in echoed JSON request bodies",
	},
}
