package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

const arxivAPI = "https://export.arxiv.org/api/query"

// arxivSearcher queries the arXiv Atom API. The abstract doubles as the
// full content; arXiv has no cheap page-body endpoint worth scraping.
type arxivSearcher struct {
	httpClient *http.Client
	userAgent  string
	maxResults int
}

type arxivFeed struct {
	Entries []struct {
		ID      string `xml:"id"`
		Title   string `xml:"title"`
		Summary string `xml:"summary"`
		Links   []struct {
			Href string `xml:"href,attr"`
			Rel  string `xml:"rel,attr"`
		} `xml:"link"`
		Published string `xml:"published"`
		Authors   []struct {
			Name string `xml:"name"`
		} `xml:"author"`
	} `xml:"entry"`
}

func newArxivSearcher(deps Deps) (PreviewSearcher, error) {
	maxResults := deps.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	return &arxivSearcher{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		userAgent:  deps.UserAgent,
		maxResults: maxResults,
	}, nil
}

func (a *arxivSearcher) Name() string { return EngineArxiv }

func (a *arxivSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	params := url.Values{
		"search_query": {"all:" + query},
		"start":        {"0"},
		"max_results":  {fmt.Sprint(a.maxResults)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPI+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build arxiv request: %w", err)
	}
	if a.userAgent != "" {
		req.Header.Set("User-Agent", a.userAgent)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arxiv request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("arxiv returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read arxiv response: %w", err)
	}
	var feed arxivFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("failed to decode arxiv feed: %w", err)
	}

	results := make([]models.SearchResult, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		link := entry.ID
		for _, l := range entry.Links {
			if l.Rel == "alternate" {
				link = l.Href
			}
		}
		var authors []string
		for _, au := range entry.Authors {
			authors = append(authors, au.Name)
		}
		summary := strings.TrimSpace(entry.Summary)
		results = append(results, models.SearchResult{
			Title:   strings.Join(strings.Fields(entry.Title), " "),
			Link:    link,
			Snippet: snippetOf(summary, 300),
			Extra: map[string]any{
				"authors":   authors,
				"published": entry.Published,
				"abstract":  summary,
			},
		})
	}
	return results, nil
}

func (a *arxivSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	out := make([]models.SearchResult, len(results))
	copy(out, results)
	for i := range out {
		if abstract, ok := out[i].Extra["abstract"].(string); ok && abstract != "" {
			out[i].FullContent = abstract
		}
	}
	return out, nil
}

func snippetOf(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) <= max {
		return s
	}
	return s[:max]
}
