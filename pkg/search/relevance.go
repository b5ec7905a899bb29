package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// RelevanceFilter reranks previews with an LLM. It degrades to the
// unranked input on any model or parse failure.
type RelevanceFilter struct {
	llm    llm.Client
	logger *slog.Logger
}

// NewRelevanceFilter builds a filter around a model client.
func NewRelevanceFilter(client llm.Client, logger *slog.Logger) *RelevanceFilter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RelevanceFilter{llm: client, logger: logger.With("component", "relevance_filter")}
}

// Filter returns an ordered subset of previews, most relevant first,
// bounded by maxFiltered when positive. The output is always a subsequence
// of the input after reordering; it never grows.
func (f *RelevanceFilter) Filter(ctx context.Context, query string, previews []models.SearchResult, maxFiltered int) []models.SearchResult {
	if len(previews) == 0 {
		return previews
	}

	fallback := func() []models.SearchResult {
		if maxFiltered > 0 && len(previews) > maxFiltered {
			return previews[:maxFiltered]
		}
		return previews
	}

	prompt, err := f.buildPrompt(query, previews)
	if err != nil {
		f.logger.Warn("failed to build relevance prompt", "error", err)
		return fallback()
	}

	resp, err := f.llm.Invoke(ctx, prompt)
	if err != nil {
		f.logger.Warn("relevance ranking call failed", "error", err)
		return fallback()
	}

	indices, ok := ParseIndexArray(resp.Content)
	if !ok {
		f.logger.Warn("relevance response was not a JSON index array")
		return fallback()
	}

	ranked := make([]models.SearchResult, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(previews) || seen[idx] {
			continue
		}
		seen[idx] = true
		ranked = append(ranked, previews[idx])
		if maxFiltered > 0 && len(ranked) == maxFiltered {
			break
		}
	}
	if len(ranked) == 0 {
		return fallback()
	}
	return ranked
}

func (f *RelevanceFilter) buildPrompt(query string, previews []models.SearchResult) (string, error) {
	type previewItem struct {
		Index   int    `json:"index"`
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	}
	items := make([]previewItem, len(previews))
	for i, p := range previews {
		items[i] = previewItem{Index: i, Title: p.Title, Snippet: p.Snippet, Link: p.Link}
	}
	encoded, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", err
	}

	today := time.Now().UTC().Format("2006-01-02")
	return fmt.Sprintf(`Analyze these search results and rank them by relevance to the query.

Query: %s
Today's date (UTC): %s

Search results:
%s

Rank by, in order of importance:
1. Timeliness: strongly prefer recent information where the query is time-sensitive.
2. Direct relevance: how squarely the result addresses the query.
3. Source reliability: prefer authoritative sources.
4. Factual plausibility: discount results that look like spam or speculation.

Respond with ONLY a JSON array of integer indices, ranked most relevant
first, e.g. [2, 0, 3]. Exclude irrelevant results. No other text.`, query, today, encoded), nil
}

// ParseIndexArray extracts a JSON array of integers from s, tolerating
// surrounding prose: it takes the substring from the first '[' to the last
// ']'. Returns false when no valid array can be recovered.
func ParseIndexArray(s string) ([]int, bool) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return nil, false
	}
	var indices []int
	if err := json.Unmarshal([]byte(s[start:end+1]), &indices); err != nil {
		return nil, false
	}
	return indices, true
}
