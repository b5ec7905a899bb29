package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

const braveAPI = "https://api.search.brave.com/res/v1/web/search"

// braveSearcher queries the Brave Search API.
type braveSearcher struct {
	apiKey     string
	httpClient *http.Client
	fetcher    *FullPageFetcher
	maxResults int
	country    string
	freshness  string
	safeSearch bool
}

func newBraveSearcher(deps Deps) (PreviewSearcher, error) {
	apiKey := os.Getenv("BRAVE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("BRAVE_API_KEY is not set")
	}
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	return &braveSearcher{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		fetcher:    deps.Fetcher,
		maxResults: maxResults,
		country:    deps.Region,
		freshness:  deps.TimePeriod,
		safeSearch: deps.SafeSearch,
	}, nil
}

func (b *braveSearcher) Name() string { return EngineBrave }

func (b *braveSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	params := url.Values{
		"q":     {query},
		"count": {fmt.Sprint(b.maxResults)},
	}
	if b.country != "" {
		params.Set("country", b.country)
	}
	if b.freshness != "" {
		params.Set("freshness", b.freshness)
	}
	if b.safeSearch {
		params.Set("safesearch", "strict")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, braveAPI+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build brave request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("brave returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read brave response: %w", err)
	}
	var parsed struct {
		Web struct {
			Results []struct {
				Title       string `json:"title"`
				URL         string `json:"url"`
				Description string `json:"description"`
				Age         string `json:"age"`
			} `json:"results"`
		} `json:"web"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode brave response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(parsed.Web.Results))
	for _, item := range parsed.Web.Results {
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Link:    item.URL,
			Snippet: htmlTagPattern.ReplaceAllString(item.Description, ""),
			Extra:   map[string]any{"age": item.Age},
		})
	}
	return results, nil
}

func (b *braveSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return b.fetcher.Attach(ctx, results)
}
