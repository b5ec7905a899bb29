package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

const waybackCDX = "https://web.archive.org/cdx/search/cdx"

// waybackSearcher queries the Wayback Machine CDX index. It treats the
// query as a URL or domain pattern and returns archived snapshots.
type waybackSearcher struct {
	httpClient *http.Client
	fetcher    *FullPageFetcher
	maxResults int
}

func newWaybackSearcher(deps Deps) (PreviewSearcher, error) {
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	return &waybackSearcher{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		fetcher:    deps.Fetcher,
		maxResults: maxResults,
	}, nil
}

func (w *waybackSearcher) Name() string { return EngineWayback }

func (w *waybackSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	pattern := strings.TrimSpace(query)
	if !strings.Contains(pattern, ".") {
		// CDX needs a URL-ish pattern; bare phrases match nothing.
		return nil, nil
	}

	params := url.Values{
		"url":        {pattern + "*"},
		"output":     {"json"},
		"limit":      {fmt.Sprint(w.maxResults)},
		"filter":     {"statuscode:200"},
		"collapse":   {"urlkey"},
		"fastLatest": {"true"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, waybackCDX+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build wayback request: %w", err)
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wayback request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("wayback returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read wayback response: %w", err)
	}

	// CDX JSON output is an array of rows; the first row is the header.
	var rows [][]string
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode wayback response: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[name] = i
	}
	tsCol, okTS := cols["timestamp"]
	urlCol, okURL := cols["original"]
	if !okTS || !okURL {
		return nil, nil
	}

	results := make([]models.SearchResult, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if tsCol >= len(row) || urlCol >= len(row) {
			continue
		}
		original := row[urlCol]
		snapshot := fmt.Sprintf("https://web.archive.org/web/%s/%s", row[tsCol], original)
		results = append(results, models.SearchResult{
			Title:   "Archived: " + original,
			Link:    snapshot,
			Snippet: fmt.Sprintf("Wayback Machine snapshot of %s captured %s", original, row[tsCol]),
			Extra:   map[string]any{"original": original, "timestamp": row[tsCol]},
		})
	}
	return results, nil
}

func (w *waybackSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return w.fetcher.Attach(ctx, results)
}
