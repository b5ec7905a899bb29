package citation

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Content: f.response}, nil
}

func (f *fakeLLM) Model() string    { return "fake" }
func (f *fakeLLM) Provider() string { return "test" }

func resultsFixture() []models.SearchResult {
	return []models.SearchResult{
		{Title: "Paris", Link: "https://en.wikipedia.org/wiki/Paris", Snippet: "Paris is the capital of France."},
		{Title: "France", Link: "https://en.wikipedia.org/wiki/France", Snippet: "France is a country in Europe."},
	}
}

func TestBuildDocuments(t *testing.T) {
	t.Run("indices continue from offset", func(t *testing.T) {
		docs := BuildDocuments(resultsFixture(), 5)
		require.Len(t, docs, 2)
		assert.Equal(t, 6, docs[0].Metadata.Index)
		assert.Equal(t, 7, docs[1].Metadata.Index)
	})

	t.Run("zero offset starts at one", func(t *testing.T) {
		docs := BuildDocuments(resultsFixture(), 0)
		assert.Equal(t, 1, docs[0].Metadata.Index)
	})

	t.Run("prefers full content over snippet", func(t *testing.T) {
		results := resultsFixture()
		results[0].FullContent = "the whole article"
		docs := BuildDocuments(results, 0)
		assert.Equal(t, "the whole article", docs[0].PageContent)
		assert.Equal(t, results[1].Snippet, docs[1].PageContent)
	})

	t.Run("source metadata carries link and title", func(t *testing.T) {
		docs := BuildDocuments(resultsFixture(), 0)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Paris", docs[0].Metadata.Source)
		assert.Equal(t, "Paris", docs[0].Metadata.Title)
	})
}

func TestHandlerAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("empty results produce the no-results notice", func(t *testing.T) {
		model := &fakeLLM{response: "should not be called"}
		h := NewHandler(model, nil)

		analysis, err := h.Analyze(ctx, "q", nil, "", 0)
		require.NoError(t, err)
		assert.Equal(t, "No relevant results found.", analysis.Content)
		assert.Empty(t, model.prompts)
	})

	t.Run("citations map to document indices", func(t *testing.T) {
		model := &fakeLLM{response: "Paris is the capital of France [4]."}
		h := NewHandler(model, nil)

		analysis, err := h.Analyze(ctx, "capital of France", resultsFixture(), "", 3)
		require.NoError(t, err)

		cited := regexp.MustCompile(`\[(\d+)\]`).FindAllStringSubmatch(analysis.Content, -1)
		require.NotEmpty(t, cited)
		indexed := map[int]bool{}
		for _, d := range analysis.Documents {
			indexed[d.Metadata.Index] = true
		}
		for _, m := range cited {
			n, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			assert.True(t, indexed[n], "citation [%d] has no matching document", n)
		}
	})

	t.Run("initial prompt omits previous knowledge", func(t *testing.T) {
		model := &fakeLLM{response: "ok"}
		h := NewHandler(model, nil)

		_, err := h.Analyze(ctx, "q", resultsFixture(), "", 0)
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.NotContains(t, model.prompts[0], "Existing knowledge")
		assert.Contains(t, model.prompts[0], "[1] Paris")
	})

	t.Run("follow-up prompt includes previous knowledge", func(t *testing.T) {
		model := &fakeLLM{response: "ok"}
		h := NewHandler(model, nil)

		_, err := h.Analyze(ctx, "q", resultsFixture(), "Paris is the capital [1].", 2)
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.Contains(t, model.prompts[0], "Existing knowledge")
		assert.Contains(t, model.prompts[0], "[3] Paris")
	})

	t.Run("fact checking adds a cross-reference call", func(t *testing.T) {
		model := &fakeLLM{response: "No conflicts."}
		h := NewHandler(model, nil, WithFactChecking())

		_, err := h.Analyze(ctx, "q", resultsFixture(), "prior knowledge", 0)
		require.NoError(t, err)
		assert.Len(t, model.prompts, 2)
		assert.Contains(t, model.prompts[0], "contradictions")
	})

	t.Run("model failure degrades without error", func(t *testing.T) {
		model := &fakeLLM{err: errors.New("model down")}
		h := NewHandler(model, nil)

		analysis, err := h.Analyze(ctx, "q", resultsFixture(), "", 0)
		require.NoError(t, err)
		assert.Contains(t, analysis.Content, "Analysis unavailable")
		assert.Len(t, analysis.Documents, 2)
	})

	t.Run("cancelled context surfaces as error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		model := &fakeLLM{err: context.Canceled}
		h := NewHandler(model, nil)

		_, err := h.Analyze(cancelled, "q", resultsFixture(), "", 0)
		assert.Error(t, err)
	})

	t.Run("forced answer instruction present", func(t *testing.T) {
		model := &fakeLLM{response: "ok"}
		h := NewHandler(model, nil, WithForcedAnswer())

		_, err := h.Analyze(ctx, "q", resultsFixture(), "", 0)
		require.NoError(t, err)
		assert.Contains(t, model.prompts[0], "single final answer")
	})
}
