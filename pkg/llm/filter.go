package llm

import (
	"context"
	"regexp"
	"strings"
)

// thinkTagPattern matches reasoning spans some models emit before the
// answer. Dot matches newlines; spans can be multi-line.
var thinkTagPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// StripThinkTags removes <think>...</think> spans and trims the remainder.
// An unclosed trailing <think> span is dropped as well.
func StripThinkTags(s string) string {
	s = thinkTagPattern.ReplaceAllString(s, "")
	if idx := strings.LastIndex(s, "<think>"); idx >= 0 && !strings.Contains(s[idx:], "</think>") {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// filteredClient post-processes every response through StripThinkTags so
// callers never see reasoning spans.
type filteredClient struct {
	inner Client
}

// WithThinkFilter wraps a client so every response content is cleaned.
func WithThinkFilter(inner Client) Client {
	return &filteredClient{inner: inner}
}

func (c *filteredClient) Invoke(ctx context.Context, prompt string) (Response, error) {
	resp, err := c.inner.Invoke(ctx, prompt)
	if err != nil {
		return resp, err
	}
	resp.Content = StripThinkTags(resp.Content)
	return resp, nil
}

func (c *filteredClient) Model() string    { return c.inner.Model() }
func (c *filteredClient) Provider() string { return c.inner.Provider() }
