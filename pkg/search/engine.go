// Package search implements the two-phase search engine abstraction: cheap
// preview retrieval, optional LLM relevance ranking, optional full-content
// fetch, plus the process-wide engine registry and the meta engine that
// picks concrete engines per query.
package search

import (
	"context"
	"log/slog"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// Engine is what strategies consume. Run never returns an error: transient
// failures yield an empty slice and the orchestrator moves on.
type Engine interface {
	Name() string
	Run(ctx context.Context, query string) []models.SearchResult
}

// Invoke is a compatibility alias for Run.
func Invoke(ctx context.Context, e Engine, query string) []models.SearchResult {
	return e.Run(ctx, query)
}

// PreviewSearcher is the provider-specific half of an engine: fetch cheap
// previews, then page bodies for the ones that survived filtering.
type PreviewSearcher interface {
	Name() string
	GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error)
	GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error)
}

// Options tune one engine instance. Zero values mean "no limit" except
// where noted.
type Options struct {
	MaxResults          int
	MaxFilteredResults  int
	SkipRelevanceFilter bool
	// SnippetsOnly skips the full-content phase entirely.
	SnippetsOnly bool
	// TruncateUnfiltered applies MaxFilteredResults to raw previews when
	// the relevance filter is skipped.
	TruncateUnfiltered bool
	// Region, TimePeriod and SafeSearch are forwarded to engines that
	// support them (SearXNG, Brave); others ignore them.
	Region     string
	TimePeriod string
	SafeSearch bool
}

// TwoPhase composes a PreviewSearcher with the relevance filter into the
// default Run pipeline.
type TwoPhase struct {
	source PreviewSearcher
	filter *RelevanceFilter
	opts   Options
	logger *slog.Logger
}

// NewTwoPhase builds the standard pipeline. filter may be nil (previews
// pass through unranked).
func NewTwoPhase(source PreviewSearcher, filter *RelevanceFilter, opts Options, logger *slog.Logger) *TwoPhase {
	if logger == nil {
		logger = slog.Default()
	}
	return &TwoPhase{
		source: source,
		filter: filter,
		opts:   opts,
		logger: logger.With("engine", source.Name()),
	}
}

func (t *TwoPhase) Name() string { return t.source.Name() }

// SetSnippetsOnly toggles the full-content phase. Parallel strategies force
// snippet retrieval during fan-out and restore the previous value after.
func (t *TwoPhase) SetSnippetsOnly(v bool) bool {
	prev := t.opts.SnippetsOnly
	t.opts.SnippetsOnly = v
	return prev
}

// SetSkipRelevanceFilter toggles LLM relevance ranking. The source-based
// strategy disables it for the duration of a run and restores the previous
// value after.
func (t *TwoPhase) SetSkipRelevanceFilter(v bool) bool {
	prev := t.opts.SkipRelevanceFilter
	t.opts.SkipRelevanceFilter = v
	return prev
}

func (t *TwoPhase) Run(ctx context.Context, query string) []models.SearchResult {
	previews, err := t.source.GetPreviews(ctx, query)
	if err != nil {
		t.logger.Warn("preview fetch failed", "query", query, "error", err)
		return nil
	}
	if len(previews) == 0 {
		return nil
	}
	if t.opts.MaxResults > 0 && len(previews) > t.opts.MaxResults {
		previews = previews[:t.opts.MaxResults]
	}

	relevant := previews
	if t.filter != nil && !t.opts.SkipRelevanceFilter {
		relevant = t.filter.Filter(ctx, query, previews, t.opts.MaxFilteredResults)
	} else if t.opts.TruncateUnfiltered && t.opts.MaxFilteredResults > 0 && len(relevant) > t.opts.MaxFilteredResults {
		relevant = relevant[:t.opts.MaxFilteredResults]
	}
	if len(relevant) == 0 {
		return nil
	}

	if t.opts.SnippetsOnly {
		return relevant
	}

	full, err := t.source.GetFullContent(ctx, relevant)
	if err != nil {
		t.logger.Warn("full content fetch failed, returning previews", "query", query, "error", err)
		return relevant
	}
	return full
}
