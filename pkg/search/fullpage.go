package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

const (
	maxPageBytes      = 2 << 20
	maxContentChars   = 20000
	defaultFetchLimit = 15 * time.Second
)

// FullPageFetcher loads page bodies for filtered previews and strips HTML
// boilerplate. Engines that have no richer content API delegate their
// full-content phase to it.
type FullPageFetcher struct {
	httpClient *http.Client
	userAgent  string
}

// NewFullPageFetcher builds a fetcher with a bounded per-request timeout.
func NewFullPageFetcher(timeout time.Duration, userAgent string) *FullPageFetcher {
	if timeout <= 0 {
		timeout = defaultFetchLimit
	}
	return &FullPageFetcher{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// Attach fetches each result's page and fills FullContent. Per-page
// failures leave the snippet in place; the call only errors on ctx
// cancellation.
func (f *FullPageFetcher) Attach(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	out := make([]models.SearchResult, len(results))
	copy(out, results)
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := f.Fetch(ctx, out[i].Link)
		if err != nil || content == "" {
			continue
		}
		out[i].FullContent = llm.TruncateChars(content, maxContentChars)
	}
	return out, nil
}

// Fetch downloads one page and returns its visible text.
func (f *FullPageFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build page request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("page fetch failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("page fetch returned status %d", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "html") && !strings.Contains(ct, "text") {
		return "", fmt.Errorf("unsupported content type %q", ct)
	}

	return ExtractText(io.LimitReader(resp.Body, maxPageBytes))
}

// skippedElements carry no prose worth citing.
var skippedElements = map[string]bool{
	"script": true, "style": true, "noscript": true, "iframe": true,
	"nav": true, "header": true, "footer": true, "aside": true,
	"form": true, "svg": true,
}

// ExtractText walks an HTML document and returns its visible text with
// boilerplate elements removed and whitespace collapsed.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				sb.WriteString(text)
				sb.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " "), nil
}
