package report

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/strategy"
)

func TestParseOutline(t *testing.T) {
	t.Run("well formed structure", func(t *testing.T) {
		out := ParseOutline(`Here you go:
STRUCTURE
1. Background
- Origins | how it started
-   Key terms |  vocabulary
2. Current State
- Adoption | who uses it
END_STRUCTURE
Hope that helps.`, "q")

		require.Len(t, out.Sections, 2)
		assert.Equal(t, "Background", out.Sections[0].Title)
		require.Len(t, out.Sections[0].Subsections, 2)
		assert.Equal(t, "Key terms", out.Sections[0].Subsections[1].Title)
		assert.Equal(t, "vocabulary", out.Sections[0].Subsections[1].Purpose)
	})

	t.Run("missing markers still parses numbered lines", func(t *testing.T) {
		out := ParseOutline("1. Only Section\n- Sub | p", "q")
		require.Len(t, out.Sections, 1)
		assert.Equal(t, "Only Section", out.Sections[0].Title)
	})

	t.Run("section without subsections gets a synthetic one", func(t *testing.T) {
		out := ParseOutline("STRUCTURE\n1. Lonely\nEND_STRUCTURE", "q")
		require.Len(t, out.Sections, 1)
		require.Len(t, out.Sections[0].Subsections, 1)
		assert.Equal(t, "Lonely", out.Sections[0].Subsections[0].Title)
	})

	t.Run("unparseable response falls back to single section", func(t *testing.T) {
		out := ParseOutline("I cannot produce an outline.", "my query")
		require.Len(t, out.Sections, 1)
		assert.Equal(t, "Research Findings", out.Sections[0].Title)
		assert.Contains(t, out.Sections[0].Subsections[0].Purpose, "my query")
	})

	t.Run("bullets before any section are ignored", func(t *testing.T) {
		out := ParseOutline("- stray | bullet\n1. Real\n- Sub | p", "q")
		require.Len(t, out.Sections, 1)
		assert.Len(t, out.Sections[0].Subsections, 1)
	})
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"What is CRDT?":    "what_is_crdt",
		"a/b\\c:d":         "abcd",
		"  spaced   out  ": "__spaced___out__",
		"":                 "research",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFilename(in), "input %q", in)
	}

	t.Run("caps length at 50", func(t *testing.T) {
		assert.Equal(t, strings.Repeat("a", 50), SanitizeFilename(strings.Repeat("a", 80)))
	})
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path, err := Write(dir, "My Query", "# content")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "my_query.md"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# content", string(data))
}

type outlineLLM struct {
	outline string
	err     error
}

func (o *outlineLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if o.err != nil {
		return llm.Response{}, o.err
	}
	if strings.Contains(prompt, "STRUCTURE") {
		return llm.Response{Content: o.outline}, nil
	}
	return llm.Response{Content: "Summary paragraph [1]."}, nil
}

func (o *outlineLLM) Model() string    { return "test-model" }
func (o *outlineLLM) Provider() string { return "test" }

func TestGenerate(t *testing.T) {
	client := &outlineLLM{outline: `STRUCTURE
1. Background
- Origins | how it started
2. Usage
- Adoption | who uses it
END_STRUCTURE`}

	var subQueries []string
	runner := RunnerFunc(func(ctx context.Context, query string) (*strategy.Result, error) {
		subQueries = append(subQueries, query)
		return &strategy.Result{
			CurrentKnowledge: "Body for " + query,
			AllLinks: []models.SearchResult{
				{Title: "src", Link: "https://example.org/" + SanitizeFilename(query)},
			},
		}, nil
	})

	gen := NewGenerator(client, runner, 2, nil, nil)
	rep, err := gen.Generate(context.Background(), "what is X", "initial findings [1]",
		[]models.SearchResult{{Title: "seed", Link: "https://seed.example"}})
	require.NoError(t, err)

	t.Run("researches every subsection with the composed sub-query", func(t *testing.T) {
		require.Len(t, subQueries, 2)
		assert.Equal(t, "what is X Background Origins how it started", subQueries[0])
	})

	t.Run("document structure", func(t *testing.T) {
		assert.Contains(t, rep.Content, "# Research Report: what is X")
		assert.Contains(t, rep.Content, "## Table of Contents")
		assert.Contains(t, rep.Content, "## Research Summary")
		assert.Contains(t, rep.Content, "## Background")
		assert.Contains(t, rep.Content, "### Origins")
		assert.Contains(t, rep.Content, "## Sources")
		assert.Contains(t, rep.Content, "https://seed.example")
	})

	t.Run("metadata", func(t *testing.T) {
		assert.Equal(t, "what is X", rep.Metadata.Query)
		assert.Equal(t, 1, rep.Metadata.InitialSources)
		assert.Equal(t, 2, rep.Metadata.SectionsResearched)
		assert.Equal(t, 2, rep.Metadata.SearchesPerSection)
		assert.NotEmpty(t, rep.Metadata.GeneratedAt)
	})
}

func TestGenerateDegradation(t *testing.T) {
	t.Run("outline failure yields single-section report", func(t *testing.T) {
		client := &outlineLLM{err: errors.New("model down")}
		runner := RunnerFunc(func(ctx context.Context, query string) (*strategy.Result, error) {
			return &strategy.Result{CurrentKnowledge: "fallback body"}, nil
		})

		gen := NewGenerator(client, runner, 2, nil, nil)
		rep, err := gen.Generate(context.Background(), "q", "initial findings", nil)
		require.NoError(t, err)
		assert.Contains(t, rep.Content, "## Research Findings")
		assert.Contains(t, rep.Content, "fallback body")
		// Summary degrades to the initial findings.
		assert.Contains(t, rep.Content, "initial findings")
	})

	t.Run("section run failure leaves a placeholder", func(t *testing.T) {
		client := &outlineLLM{outline: "STRUCTURE\n1. Only\n- Sub | p\nEND_STRUCTURE"}
		runner := RunnerFunc(func(ctx context.Context, query string) (*strategy.Result, error) {
			return nil, errors.New("engine down")
		})

		gen := NewGenerator(client, runner, 2, nil, nil)
		rep, err := gen.Generate(context.Background(), "q", "findings", nil)
		require.NoError(t, err)
		assert.Contains(t, rep.Content, "No information was gathered for this section.")
	})

	t.Run("termination propagates", func(t *testing.T) {
		client := &outlineLLM{outline: "STRUCTURE\n1. Only\n- Sub | p\nEND_STRUCTURE"}
		runner := RunnerFunc(func(ctx context.Context, query string) (*strategy.Result, error) {
			return nil, strategy.ErrTerminated
		})

		gen := NewGenerator(client, runner, 2, nil, nil)
		_, err := gen.Generate(context.Background(), "q", "findings", nil)
		assert.ErrorIs(t, err, strategy.ErrTerminated)
	})
}

func TestAssembleHeaderDedup(t *testing.T) {
	outline := Outline{Sections: []Section{{
		Title: "Background",
		Subsections: []Subsection{
			{Title: "Origins", Purpose: "p"},
		},
	}}}
	bodies := map[string]string{
		"Background\x00Origins": "## Background\nreal text\n### Origins\nmore text",
	}
	out := assemble("q", "summary", outline, bodies, nil)

	assert.Equal(t, 1, strings.Count(out, "## Background"), "section header must appear once")
	assert.Equal(t, 1, strings.Count(out, "### Origins"))
	assert.Contains(t, out, "real text")
}
