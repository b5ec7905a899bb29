// Package llm provides the completion client used by every synthesis step:
// a small Invoke interface, provider constructors, a think-tag stripping
// wrapper, and token metering.
package llm

import (
	"context"
)

// Response is the post-processed result of one completion call.
type Response struct {
	Content string
	Usage   *Usage
}

// Usage reports token counts for one call. Providers that do not report
// usage leave it nil; the meter fills in estimates.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
}

// Client is the single capability the research core consumes from a model.
type Client interface {
	// Invoke sends a prompt and returns the completion. Implementations
	// honor ctx cancellation and apply their own request timeout.
	Invoke(ctx context.Context, prompt string) (Response, error)

	// Model identifies the configured model, for metadata and logging.
	Model() string

	// Provider identifies the backing provider name.
	Provider() string
}
