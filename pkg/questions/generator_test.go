package questions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

type fakeLLM struct {
	responses []string
	calls     int
	err       error
}

func (f *fakeLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if f.err != nil {
		return llm.Response{}, f.err
	}
	idx := f.calls
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	f.calls++
	return llm.Response{Content: f.responses[idx]}, nil
}

func (f *fakeLLM) Model() string    { return "fake" }
func (f *fakeLLM) Provider() string { return "test" }

func TestParseQuestionLines(t *testing.T) {
	t.Run("keeps only Q lines", func(t *testing.T) {
		got := ParseQuestionLines("Here you go:\nQ: first question\nnot a question\nQ: second question", 5)
		assert.Equal(t, []string{"first question", "second question"}, got)
	})

	t.Run("limits to n", func(t *testing.T) {
		got := ParseQuestionLines("Q: a\nQ: b\nQ: c", 2)
		assert.Equal(t, []string{"a", "b"}, got)
	})

	t.Run("tolerates leading whitespace", func(t *testing.T) {
		got := ParseQuestionLines("  Q: indented", 5)
		assert.Equal(t, []string{"indented"}, got)
	})

	t.Run("skips empty questions", func(t *testing.T) {
		got := ParseQuestionLines("Q:\nQ: real", 5)
		assert.Equal(t, []string{"real"}, got)
	})

	t.Run("no Q lines yields empty", func(t *testing.T) {
		assert.Empty(t, ParseQuestionLines("nothing here", 5))
	})
}

func TestStandardGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("parses model questions", func(t *testing.T) {
		g := NewStandard(&fakeLLM{responses: []string{"Q: one\nQ: two"}}, nil)
		got := g.Generate(ctx, "", "topic", 3, nil)
		assert.Equal(t, []string{"one", "two"}, got)
	})

	t.Run("model error degrades to defaults", func(t *testing.T) {
		g := NewStandard(&fakeLLM{err: errors.New("down")}, nil)
		got := g.Generate(ctx, "", "topic", 2, nil)
		require.Len(t, got, 2)
		assert.Equal(t, "topic", got[0])
	})

	t.Run("unparseable response degrades to defaults", func(t *testing.T) {
		g := NewStandard(&fakeLLM{responses: []string{"I refuse"}}, nil)
		got := g.Generate(ctx, "", "topic", 1, nil)
		assert.Equal(t, []string{"topic"}, got)
	})
}

func TestDecomposition(t *testing.T) {
	ctx := context.Background()

	t.Run("first call decomposes", func(t *testing.T) {
		g := NewDecomposition(&fakeLLM{responses: []string{"Q: who wrote X\nQ: when was X published"}}, nil)
		got := g.Generate(ctx, "", "Who wrote X and when was it published?", 5, nil)
		assert.Len(t, got, 2)
	})

	t.Run("later calls act as standard", func(t *testing.T) {
		g := NewDecomposition(&fakeLLM{responses: []string{"Q: gap question"}}, nil)
		history := models.QuestionsByIteration{1: {"who wrote X"}}
		got := g.Generate(ctx, "X was written by Y", "Who wrote X and when was it published?", 2, history)
		assert.Equal(t, []string{"gap question"}, got)
	})

	t.Run("failure falls back to heuristic split", func(t *testing.T) {
		g := NewDecomposition(&fakeLLM{err: errors.New("down")}, nil)
		got := g.Generate(ctx, "", "Who wrote X and when was it published?", 5, nil)
		require.GreaterOrEqual(t, len(got), 2)
	})

	t.Run("unsplittable query falls back to defaults", func(t *testing.T) {
		g := NewDecomposition(&fakeLLM{responses: []string{"no questions here"}}, nil)
		got := g.Generate(ctx, "", "photosynthesis", 2, nil)
		require.NotEmpty(t, got)
	})
}

func TestStripInterrogativePrefix(t *testing.T) {
	assert.Equal(t, "wrote X", StripInterrogativePrefix("Who wrote X"))
	assert.Equal(t, "is the capital of France", StripInterrogativePrefix("What is the capital of France"))
	assert.Equal(t, "plain topic", StripInterrogativePrefix("plain topic"))
}

func TestSplitOnSubordinators(t *testing.T) {
	parts := SplitOnSubordinators("wrote X and when was it published")
	assert.Equal(t, []string{"wrote X", "when was it published"}, parts)

	assert.Equal(t, []string{"single clause"}, SplitOnSubordinators("single clause"))
}

func TestEntityAware(t *testing.T) {
	ctx := context.Background()

	t.Run("detects entity intent", func(t *testing.T) {
		assert.True(t, HasEntityIntent("Who is the author of X?"))
		assert.True(t, HasEntityIntent("Identify the character that said Y"))
		assert.False(t, HasEntityIntent("explain photosynthesis"))
	})

	t.Run("entity queries used for entity intent", func(t *testing.T) {
		g := NewEntityAware(&fakeLLM{responses: []string{`Q: "born 1920" author novel Paris`}}, nil)
		got := g.Generate(ctx, "", "Who is the author born in 1920?", 3, nil)
		assert.Equal(t, []string{`"born 1920" author novel Paris`}, got)
	})

	t.Run("non-entity queries use standard", func(t *testing.T) {
		g := NewEntityAware(&fakeLLM{responses: []string{"Q: std"}}, nil)
		got := g.Generate(ctx, "", "explain photosynthesis", 1, nil)
		assert.Equal(t, []string{"std"}, got)
	})
}

func TestBrowseComp(t *testing.T) {
	ctx := context.Background()

	t.Run("first iteration extracts entities and emits broad queries", func(t *testing.T) {
		g := NewBrowseComp(&fakeLLM{responses: []string{
			`{"temporal": ["1995-1997"], "numerical": [], "names": ["Smith"], "locations": ["Boston"], "descriptors": []}`,
		}}, nil)

		got := g.Generate(ctx, "", "Which Smith lived in Boston in the 1990s?", 4, nil)
		require.NotEmpty(t, got)

		entities := g.ExtractedEntities()
		assert.Equal(t, []string{"1995", "1996", "1997"}, entities["temporal"])
		assert.Equal(t, []string{"Smith"}, entities["names"])
		assert.Equal(t, got, g.SearchProgression())
	})

	t.Run("later iterations avoid repeats", func(t *testing.T) {
		g := NewBrowseComp(&fakeLLM{responses: []string{
			`{"temporal": [], "numerical": [], "names": ["Smith"], "locations": [], "descriptors": []}`,
			"Q: repeated query\nQ: fresh query",
		}}, nil)

		first := g.Generate(ctx, "", "Which Smith?", 1, nil)
		require.Len(t, first, 1)

		// Pretend the first emission was "repeated query" via history.
		history := models.QuestionsByIteration{1: {"repeated query"}}
		second := g.Generate(ctx, "some knowledge", "Which Smith?", 5, history)
		assert.NotContains(t, second, "repeated query")
		assert.Contains(t, second, "fresh query")
	})

	t.Run("extraction failure still yields queries", func(t *testing.T) {
		g := NewBrowseComp(&fakeLLM{err: errors.New("down")}, nil)
		got := g.Generate(ctx, "", "Which Smith?", 2, nil)
		assert.NotEmpty(t, got)
	})
}

func TestExpandYearRanges(t *testing.T) {
	assert.Equal(t, []string{"1990", "1991", "1992"}, ExpandYearRanges([]string{"1990-1992"}))
	assert.Equal(t, []string{"2001"}, ExpandYearRanges([]string{"2001"}))
	assert.Equal(t, []string{"the nineties"}, ExpandYearRanges([]string{"the nineties"}))
	// Inverted and oversized ranges pass through untouched.
	assert.Equal(t, []string{"1999-1990"}, ExpandYearRanges([]string{"1999-1990"}))
}
