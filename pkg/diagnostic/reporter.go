// Package diagnostic classifies research failures and renders the
// user-facing error report. The report generator is total: it always
// produces a non-empty document, falling back to a minimal text block if
// rendering itself fails.
package diagnostic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Category is the user-facing failure kind.
type Category string

const (
	CategoryConnection Category = "connection_error"
	CategoryModel      Category = "model_error"
	CategorySearch     Category = "search_error"
	CategorySynthesis  Category = "synthesis_error"
	CategoryFile       Category = "file_error"
	CategoryUnknown    Category = "unknown_error"
)

// Severity orders categories for display.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Classification describes one failure category.
type Classification struct {
	Category    Category
	Title       string
	Severity    Severity
	Recoverable bool
	Suggestions []string
}

var classifications = map[Category]Classification{
	CategoryConnection: {
		Category:    CategoryConnection,
		Title:       "Connection Problem",
		Severity:    SeverityHigh,
		Recoverable: true,
		Suggestions: []string{
			"Check that your network connection is up.",
			"Verify the LLM endpoint URL in your settings.",
			"If you run a local model server, make sure it is started.",
		},
	},
	CategoryModel: {
		Category:    CategoryModel,
		Title:       "Language Model Error",
		Severity:    SeverityHigh,
		Recoverable: true,
		Suggestions: []string{
			"Verify the model name exists for your provider.",
			"Check your API key and quota.",
			"Try a different model or provider.",
		},
	},
	CategorySearch: {
		Category:    CategorySearch,
		Title:       "Search Engine Error",
		Severity:    SeverityMedium,
		Recoverable: true,
		Suggestions: []string{
			"Check the search engine API key environment variables.",
			"Try the auto engine, which falls back across providers.",
			"Reduce max results if the provider is rate limiting you.",
		},
	},
	CategorySynthesis: {
		Category:    CategorySynthesis,
		Title:       "Synthesis Error",
		Severity:    SeverityLow,
		Recoverable: true,
		Suggestions: []string{
			"Partial findings were kept and are shown below.",
			"Retry the research; synthesis failures are usually transient.",
		},
	},
	CategoryFile: {
		Category:    CategoryFile,
		Title:       "File System Error",
		Severity:    SeverityMedium,
		Recoverable: false,
		Suggestions: []string{
			"Check that the output directory is writable.",
			"Check remaining disk space.",
		},
	},
	CategoryUnknown: {
		Category:    CategoryUnknown,
		Title:       "Unexpected Error",
		Severity:    SeverityHigh,
		Recoverable: false,
		Suggestions: []string{
			"Check the research logs for details.",
			"Report the issue with the error message below.",
		},
	},
}

// patterns maps raw error text to a category. First match wins; order is
// most specific first.
var patterns = []struct {
	re       *regexp.Regexp
	category Category
}{
	{regexp.MustCompile(`(?i)connection refused|no such host|dial tcp|network is unreachable|tls handshake|EOF`), CategoryConnection},
	{regexp.MustCompile(`(?i)timeout|timed out|deadline exceeded`), CategoryConnection},
	{regexp.MustCompile(`(?i)model .*not found|invalid model|context length|max.?_?tokens|quota|billing|invalid api key|incorrect api key|unauthorized|401|429`), CategoryModel},
	{regexp.MustCompile(`(?i)llm|ollama|openai|anthropic|completion`), CategoryModel},
	{regexp.MustCompile(`(?i)search engine|searxng|serpapi|brave|wikipedia|no results|preview`), CategorySearch},
	{regexp.MustCompile(`(?i)synthesi|citation|analysis failed`), CategorySynthesis},
	{regexp.MustCompile(`(?i)permission denied|no space left|read-only file system|is a directory|file exists`), CategoryFile},
}

// friendlyMessages override the generic category explanation for specific
// well-known failures.
var friendlyMessages = []struct {
	re      *regexp.Regexp
	message string
}{
	{regexp.MustCompile(`(?i)11434|ollama`), "The Ollama server could not be reached. Start it with `ollama serve` and confirm the endpoint in your settings."},
	{regexp.MustCompile(`(?i)invalid api key|incorrect api key|401`), "The provider rejected your API key. Re-check the key in your environment or settings."},
	{regexp.MustCompile(`(?i)429|rate limit`), "The provider is rate limiting this client. Wait a minute and retry, or lower the request volume."},
	{regexp.MustCompile(`(?i)context length|max.?_?tokens`), "The model's context window was exceeded. Lower questions per iteration or enable knowledge compression."},
}

// Classify maps a raw error to its classification. A nil error classifies
// as unknown.
func Classify(err error) Classification {
	if err == nil {
		return classifications[CategoryUnknown]
	}
	msg := err.Error()
	for _, p := range patterns {
		if p.re.MatchString(msg) {
			return classifications[p.category]
		}
	}
	return classifications[CategoryUnknown]
}

// FriendlyMessage translates a raw error into a sentence a user can act
// on. Specific known patterns take precedence over the category default.
func FriendlyMessage(err error, c Classification) string {
	if err == nil {
		return "An unknown error occurred."
	}
	msg := err.Error()
	for _, f := range friendlyMessages {
		if f.re.MatchString(msg) {
			return f.message
		}
	}
	switch c.Category {
	case CategoryConnection:
		return "A service this research depends on could not be reached."
	case CategoryModel:
		return "The language model call failed."
	case CategorySearch:
		return "A search engine call failed."
	case CategorySynthesis:
		return "Synthesizing findings failed; the collected sources are preserved."
	case CategoryFile:
		return "Writing research output to disk failed."
	default:
		return "An unexpected error stopped this research."
	}
}

// PartialResults carries whatever the failed run managed to produce.
type PartialResults struct {
	CurrentKnowledge string
	SearchResults    []models.SearchResult
	Findings         []models.Finding
}

// helpLinks is the fixed block of pointers rendered into every report.
var helpLinks = []struct{ label, url string }{
	{"Documentation", "https://github.com/ujesh-sakariya/local-deep-research-sub002#readme"},
	{"Community discussions", "https://github.com/ujesh-sakariya/local-deep-research-sub002/discussions"},
	{"Issue tracker", "https://github.com/ujesh-sakariya/local-deep-research-sub002/issues"},
}

const (
	maxReportResults  = 5
	maxReportFindings = 3
	resultTruncate    = 300
	findingTruncate   = 1000
)

// GenerateReport renders the Markdown diagnostic document. It never
// panics out; if anything goes wrong mid-render the minimal fallback is
// returned instead.
func GenerateReport(query string, err error, partial *PartialResults) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackReport(query, err)
		}
	}()

	c := Classify(err)
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", c.Title)
	fmt.Fprintf(&sb, "Research query: %s\n\n", query)
	fmt.Fprintf(&sb, "%s\n\n", FriendlyMessage(err, c))
	if err != nil {
		fmt.Fprintf(&sb, "```\n%s\n```\n\n", err.Error())
	}
	fmt.Fprintf(&sb, "Severity: %s. Recoverable: %t.\n\n", c.Severity, c.Recoverable)

	sb.WriteString("## Suggested Actions\n\n")
	for _, s := range c.Suggestions {
		fmt.Fprintf(&sb, "- %s\n", s)
	}

	sb.WriteString("\n## Getting Help\n\n")
	for _, h := range helpLinks {
		fmt.Fprintf(&sb, "- [%s](%s)\n", h.label, h.url)
	}

	if partial != nil && (partial.CurrentKnowledge != "" || len(partial.SearchResults) > 0 || len(partial.Findings) > 0) {
		sb.WriteString("\n<details>\n<summary>Partial results collected before the failure</summary>\n\n")

		if partial.CurrentKnowledge != "" {
			sb.WriteString("### Accumulated Knowledge\n\n")
			sb.WriteString(llm.TruncateChars(partial.CurrentKnowledge, findingTruncate) + "\n\n")
		}

		if len(partial.SearchResults) > 0 {
			sb.WriteString("### Search Results\n\n")
			results := partial.SearchResults
			if len(results) > maxReportResults {
				results = results[:maxReportResults]
			}
			for _, r := range results {
				fmt.Fprintf(&sb, "- [%s](%s): %s\n", r.Title, r.Link, llm.TruncateChars(r.Snippet, resultTruncate))
			}
			sb.WriteString("\n")
		}

		findings := nonErrorFindings(partial.Findings)
		if len(findings) > 0 {
			sb.WriteString("### Findings\n\n")
			if len(findings) > maxReportFindings {
				findings = findings[:maxReportFindings]
			}
			for _, f := range findings {
				fmt.Fprintf(&sb, "#### %s\n\n%s\n\n", f.Phase, llm.TruncateChars(f.Content, findingTruncate))
			}
		}

		sb.WriteString("</details>\n")
	}
	return sb.String()
}

// nonErrorFindings drops findings whose phase marks them as error records.
func nonErrorFindings(in []models.Finding) []models.Finding {
	var out []models.Finding
	for _, f := range in {
		if strings.Contains(strings.ToLower(f.Phase), "error") {
			continue
		}
		out = append(out, f)
	}
	return out
}

func fallbackReport(query string, err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return fmt.Sprintf("# Research Failed\n\nQuery: %s\n\nError: %s\n", query, msg)
}
