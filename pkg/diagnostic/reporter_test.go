package diagnostic

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err  string
		want Category
	}{
		{"dial tcp 127.0.0.1:11434: connection refused", CategoryConnection},
		{"context deadline exceeded", CategoryConnection},
		{"model llama9 not found", CategoryModel},
		{"openai: invalid api key", CategoryModel},
		{"searxng instance returned status 502", CategorySearch},
		{"synthesis failed after retry", CategorySynthesis},
		{"open research_outputs/x.md: permission denied", CategoryFile},
		{"something entirely different", CategoryUnknown},
	}
	for _, tc := range cases {
		got := Classify(errors.New(tc.err))
		assert.Equal(t, tc.want, got.Category, "error %q", tc.err)
	}

	t.Run("nil error is unknown", func(t *testing.T) {
		assert.Equal(t, CategoryUnknown, Classify(nil).Category)
	})

	t.Run("severities match taxonomy", func(t *testing.T) {
		assert.Equal(t, SeverityHigh, classifications[CategoryConnection].Severity)
		assert.Equal(t, SeverityHigh, classifications[CategoryModel].Severity)
		assert.Equal(t, SeverityMedium, classifications[CategorySearch].Severity)
		assert.Equal(t, SeverityLow, classifications[CategorySynthesis].Severity)
		assert.Equal(t, SeverityMedium, classifications[CategoryFile].Severity)
		assert.Equal(t, SeverityHigh, classifications[CategoryUnknown].Severity)
	})
}

func TestFriendlyMessage(t *testing.T) {
	t.Run("specific pattern beats category default", func(t *testing.T) {
		err := errors.New("dial tcp 127.0.0.1:11434: connection refused")
		msg := FriendlyMessage(err, Classify(err))
		assert.Contains(t, msg, "ollama serve")
	})

	t.Run("category default otherwise", func(t *testing.T) {
		err := errors.New("no such host")
		msg := FriendlyMessage(err, Classify(err))
		assert.Contains(t, msg, "could not be reached")
	})
}

func TestGenerateReport(t *testing.T) {
	err := errors.New("model llama9 not found")

	t.Run("without partial results", func(t *testing.T) {
		out := GenerateReport("my query", err, nil)
		assert.Contains(t, out, "# Language Model Error")
		assert.Contains(t, out, "my query")
		assert.Contains(t, out, "model llama9 not found")
		assert.Contains(t, out, "## Suggested Actions")
		assert.Contains(t, out, "## Getting Help")
		assert.NotContains(t, out, "<details>")
	})

	t.Run("partial results are collapsed and bounded", func(t *testing.T) {
		partial := &PartialResults{
			CurrentKnowledge: "What was learned so far [1].",
		}
		for i := 0; i < 8; i++ {
			partial.SearchResults = append(partial.SearchResults, models.SearchResult{
				Title: "r", Link: "https://example.org", Snippet: "s",
			})
		}
		for i := 0; i < 5; i++ {
			partial.Findings = append(partial.Findings, models.Finding{
				Phase: "Iteration 1.1", Content: "finding body",
			})
		}
		partial.Findings = append(partial.Findings, models.Finding{
			Phase: "Search error", Content: "engine exploded",
		})

		out := GenerateReport("q", err, partial)
		assert.Contains(t, out, "<details>")
		assert.Contains(t, out, "What was learned so far [1].")
		assert.Equal(t, 5, strings.Count(out, "- [r](https://example.org)"), "at most 5 search results")
		assert.Equal(t, 3, strings.Count(out, "#### Iteration 1.1"), "at most 3 findings")
		assert.NotContains(t, out, "engine exploded", "error findings are excluded")
	})

	t.Run("never empty", func(t *testing.T) {
		out := GenerateReport("", nil, nil)
		require.NotEmpty(t, out)
		assert.Contains(t, out, "# Unexpected Error")
	})
}
