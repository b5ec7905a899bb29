package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

const wikipediaAPI = "https://en.wikipedia.org/w/api.php"

// wikipediaSearcher queries the MediaWiki search API for previews and the
// extracts API for article text. Needs no API key, which also makes it the
// meta engine's fallback of last resort.
type wikipediaSearcher struct {
	httpClient *http.Client
	userAgent  string
	maxResults int
}

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

func newWikipediaSearcher(deps Deps) (PreviewSearcher, error) {
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	return &wikipediaSearcher{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  deps.UserAgent,
		maxResults: maxResults,
	}, nil
}

func (w *wikipediaSearcher) Name() string { return EngineWikipedia }

func (w *wikipediaSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {query},
		"srlimit":  {fmt.Sprint(w.maxResults)},
		"format":   {"json"},
	}
	var parsed struct {
		Query struct {
			Search []struct {
				Title   string `json:"title"`
				Snippet string `json:"snippet"`
				PageID  int    `json:"pageid"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := w.getJSON(ctx, params, &parsed); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(parsed.Query.Search))
	for _, item := range parsed.Query.Search {
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Link:    "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(item.Title, " ", "_")),
			Snippet: htmlTagPattern.ReplaceAllString(item.Snippet, ""),
			Extra:   map[string]any{"pageid": item.PageID},
		})
	}
	return results, nil
}

func (w *wikipediaSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	out := make([]models.SearchResult, len(results))
	copy(out, results)
	for i := range out {
		pageID, ok := out[i].Extra["pageid"].(int)
		if !ok {
			continue
		}
		params := url.Values{
			"action":      {"query"},
			"prop":        {"extracts"},
			"explaintext": {"1"},
			"pageids":     {fmt.Sprint(pageID)},
			"format":      {"json"},
		}
		var parsed struct {
			Query struct {
				Pages map[string]struct {
					Extract string `json:"extract"`
				} `json:"pages"`
			} `json:"query"`
		}
		if err := w.getJSON(ctx, params, &parsed); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, page := range parsed.Query.Pages {
			if page.Extract != "" {
				out[i].FullContent = llm.TruncateChars(page.Extract, maxContentChars)
			}
		}
	}
	return out, nil
}

func (w *wikipediaSearcher) getJSON(ctx context.Context, params url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wikipediaAPI+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build wikipedia request: %w", err)
	}
	if w.userAgent != "" {
		req.Header.Set("User-Agent", w.userAgent)
	}
	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("wikipedia returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return fmt.Errorf("failed to read wikipedia response: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode wikipedia response: %w", err)
	}
	return nil
}
