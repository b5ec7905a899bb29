package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// stubSearcher is a scriptable PreviewSearcher.
type stubSearcher struct {
	name         string
	previews     []models.SearchResult
	previewErr   error
	fullErr      error
	fullCalls    int
	previewCalls int
}

func (s *stubSearcher) Name() string { return s.name }

func (s *stubSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	s.previewCalls++
	return s.previews, s.previewErr
}

func (s *stubSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	s.fullCalls++
	if s.fullErr != nil {
		return nil, s.fullErr
	}
	out := make([]models.SearchResult, len(results))
	copy(out, results)
	for i := range out {
		out[i].FullContent = "full content for " + out[i].Title
	}
	return out, nil
}

func TestTwoPhaseRun(t *testing.T) {
	ctx := context.Background()

	t.Run("preview error yields empty", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previewErr: errors.New("boom")}
		engine := NewTwoPhase(source, nil, Options{}, nil)
		assert.Empty(t, engine.Run(ctx, "q"))
	})

	t.Run("empty previews yield empty without full fetch", func(t *testing.T) {
		source := &stubSearcher{name: "stub"}
		engine := NewTwoPhase(source, nil, Options{}, nil)
		assert.Empty(t, engine.Run(ctx, "q"))
		assert.Zero(t, source.fullCalls)
	})

	t.Run("snippets only skips full content", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(2)}
		engine := NewTwoPhase(source, nil, Options{SnippetsOnly: true}, nil)

		got := engine.Run(ctx, "q")
		require.Len(t, got, 2)
		assert.Empty(t, got[0].FullContent)
		assert.Zero(t, source.fullCalls)
	})

	t.Run("full content attached by default", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(2)}
		engine := NewTwoPhase(source, nil, Options{}, nil)

		got := engine.Run(ctx, "q")
		require.Len(t, got, 2)
		assert.NotEmpty(t, got[0].FullContent)
	})

	t.Run("full content failure falls back to previews", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(2), fullErr: errors.New("fetch failed")}
		engine := NewTwoPhase(source, nil, Options{}, nil)

		got := engine.Run(ctx, "q")
		require.Len(t, got, 2)
		assert.Empty(t, got[0].FullContent)
	})

	t.Run("relevance filter applied", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(3)}
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[2]"}}, nil)
		engine := NewTwoPhase(source, filter, Options{SnippetsOnly: true}, nil)

		got := engine.Run(ctx, "q")
		require.Len(t, got, 1)
		assert.Equal(t, source.previews[2].Link, got[0].Link)
	})

	t.Run("skip filter with truncation", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(5)}
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[0]"}}, nil)
		engine := NewTwoPhase(source, filter, Options{
			SkipRelevanceFilter: true,
			MaxFilteredResults:  2,
			TruncateUnfiltered:  true,
			SnippetsOnly:        true,
		}, nil)

		got := engine.Run(ctx, "q")
		assert.Len(t, got, 2)
	})

	t.Run("max results bounds previews", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(5)}
		engine := NewTwoPhase(source, nil, Options{MaxResults: 3, SnippetsOnly: true}, nil)
		assert.Len(t, engine.Run(ctx, "q"), 3)
	})

	t.Run("SetSnippetsOnly restores previous value", func(t *testing.T) {
		source := &stubSearcher{name: "stub", previews: previewsFixture(1)}
		engine := NewTwoPhase(source, nil, Options{}, nil)

		prev := engine.SetSnippetsOnly(true)
		assert.False(t, prev)
		engine.SetSnippetsOnly(prev)

		got := engine.Run(ctx, "q")
		require.Len(t, got, 1)
		assert.NotEmpty(t, got[0].FullContent)
	})
}

func TestInvokeAlias(t *testing.T) {
	source := &stubSearcher{name: "stub", previews: previewsFixture(1)}
	engine := NewTwoPhase(source, nil, Options{SnippetsOnly: true}, nil)
	assert.Equal(t, engine.Run(context.Background(), "q"), Invoke(context.Background(), engine, "q"))
}
