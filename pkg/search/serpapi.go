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

const serpAPI = "https://serpapi.com/search.json"

// serpAPISearcher queries SerpAPI's Google results endpoint.
type serpAPISearcher struct {
	apiKey     string
	httpClient *http.Client
	fetcher    *FullPageFetcher
	maxResults int
}

func newSerpAPISearcher(deps Deps) (PreviewSearcher, error) {
	apiKey := os.Getenv("SERP_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("SERP_API_KEY is not set")
	}
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	return &serpAPISearcher{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		fetcher:    deps.Fetcher,
		maxResults: maxResults,
	}, nil
}

func (s *serpAPISearcher) Name() string { return EngineSerpAPI }

func (s *serpAPISearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	params := url.Values{
		"q":       {query},
		"num":     {fmt.Sprint(s.maxResults)},
		"api_key": {s.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, serpAPI+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build serpapi request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("serpapi returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read serpapi response: %w", err)
	}
	var parsed struct {
		OrganicResults []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
			Date    string `json:"date"`
		} `json:"organic_results"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode serpapi response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(parsed.OrganicResults))
	for _, item := range parsed.OrganicResults {
		if len(results) == s.maxResults {
			break
		}
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
			Extra:   map[string]any{"date": item.Date},
		})
	}
	return results, nil
}

func (s *serpAPISearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return s.fetcher.Attach(ctx, results)
}
