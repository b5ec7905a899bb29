package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

func TestParseIndexArray(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		got, ok := ParseIndexArray("[2, 0, 3]")
		require.True(t, ok)
		assert.Equal(t, []int{2, 0, 3}, got)
	})

	t.Run("array with surrounding prose", func(t *testing.T) {
		got, ok := ParseIndexArray("Sure! Here is the ranking:\n[1,0]\nHope that helps.")
		require.True(t, ok)
		assert.Equal(t, []int{1, 0}, got)
	})

	t.Run("empty array", func(t *testing.T) {
		got, ok := ParseIndexArray("[]")
		require.True(t, ok)
		assert.Empty(t, got)
	})

	t.Run("no array", func(t *testing.T) {
		_, ok := ParseIndexArray("I cannot rank these results.")
		assert.False(t, ok)
	})

	t.Run("malformed array", func(t *testing.T) {
		_, ok := ParseIndexArray("[one, two]")
		assert.False(t, ok)
	})

	t.Run("uses first bracket and last bracket", func(t *testing.T) {
		got, ok := ParseIndexArray("[0, 1]")
		require.True(t, ok)
		assert.Equal(t, []int{0, 1}, got)
	})
}

// scriptedLLM returns canned responses in order, then repeats the last.
type scriptedLLM struct {
	responses []string
	calls     int
	err       error
}

func (s *scriptedLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if s.err != nil {
		return llm.Response{}, s.err
	}
	idx := s.calls
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	s.calls++
	return llm.Response{Content: s.responses[idx]}, nil
}

func (s *scriptedLLM) Model() string    { return "scripted" }
func (s *scriptedLLM) Provider() string { return "test" }

func previewsFixture(n int) []models.SearchResult {
	out := make([]models.SearchResult, n)
	for i := range out {
		out[i] = models.SearchResult{
			Title:   "result " + string(rune('a'+i)),
			Link:    "https://example.com/" + string(rune('a'+i)),
			Snippet: "snippet",
		}
	}
	return out
}

func TestRelevanceFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("reorders by returned indices", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[2, 0]"}}, nil)
		previews := previewsFixture(3)

		got := filter.Filter(ctx, "q", previews, 0)
		require.Len(t, got, 2)
		assert.Equal(t, previews[2].Link, got[0].Link)
		assert.Equal(t, previews[0].Link, got[1].Link)
	})

	t.Run("bounds output by maxFiltered", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[0, 1, 2, 3]"}}, nil)
		got := filter.Filter(ctx, "q", previewsFixture(4), 2)
		assert.Len(t, got, 2)
	})

	t.Run("parse failure returns truncated unranked input", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"not json"}}, nil)
		previews := previewsFixture(5)

		got := filter.Filter(ctx, "q", previews, 3)
		require.Len(t, got, 3)
		assert.Equal(t, previews[0].Link, got[0].Link)
	})

	t.Run("llm error returns unranked input", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{err: errors.New("model down")}, nil)
		previews := previewsFixture(2)

		got := filter.Filter(ctx, "q", previews, 0)
		assert.Equal(t, previews, got)
	})

	t.Run("out of range and duplicate indices are dropped", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[9, 1, 1, -2, 0]"}}, nil)
		previews := previewsFixture(2)

		got := filter.Filter(ctx, "q", previews, 0)
		require.Len(t, got, 2)
		assert.Equal(t, previews[1].Link, got[0].Link)
		assert.Equal(t, previews[0].Link, got[1].Link)
	})

	t.Run("never increases set size", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[0, 1, 0, 1, 0]"}}, nil)
		previews := previewsFixture(2)
		got := filter.Filter(ctx, "q", previews, 0)
		assert.LessOrEqual(t, len(got), len(previews))
	})

	t.Run("empty input passes through", func(t *testing.T) {
		filter := NewRelevanceFilter(&scriptedLLM{responses: []string{"[0]"}}, nil)
		got := filter.Filter(ctx, "q", nil, 0)
		assert.Empty(t, got)
	})
}
