package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// searxngSearcher queries a SearXNG instance's JSON API. Public instances
// rate limit aggressively, so requests go through a per-instance minimum
// delay.
type searxngSearcher struct {
	instance   string
	httpClient *http.Client
	fetcher    *FullPageFetcher
	limiter    *rateLimiter
	userAgent  string
	maxResults int
	language   string
	timeRange  string
	safeSearch bool
}

func newSearXNGSearcher(deps Deps) (PreviewSearcher, error) {
	instance := strings.TrimRight(os.Getenv("SEARXNG_INSTANCE"), "/")
	if instance == "" {
		instance = "http://localhost:8888"
	}
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = 15
	}
	return &searxngSearcher{
		instance:   instance,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		fetcher:    deps.Fetcher,
		limiter:    newRateLimiter(searxngDelay()),
		userAgent:  deps.UserAgent,
		maxResults: maxResults,
		language:   deps.Region,
		timeRange:  deps.TimePeriod,
		safeSearch: deps.SafeSearch,
	}, nil
}

func (s *searxngSearcher) Name() string { return EngineSearXNG }

func (s *searxngSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	if err := s.limiter.wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"q":      {query},
		"format": {"json"},
	}
	if s.language != "" {
		params.Set("language", s.language)
	}
	if s.timeRange != "" {
		params.Set("time_range", s.timeRange)
	}
	if s.safeSearch {
		params.Set("safesearch", "1")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.instance+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build searxng request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searxng request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("searxng returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read searxng response: %w", err)
	}
	var parsed struct {
		Results []struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			Content string `json:"content"`
			Engine  string `json:"engine"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode searxng response: %w", err)
	}

	results := make([]models.SearchResult, 0, len(parsed.Results))
	for _, item := range parsed.Results {
		if len(results) == s.maxResults {
			break
		}
		results = append(results, models.SearchResult{
			Title:   item.Title,
			Link:    item.URL,
			Snippet: item.Content,
			Extra:   map[string]any{"engine": item.Engine},
		})
	}
	return results, nil
}

func (s *searxngSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return s.fetcher.Attach(ctx, results)
}
