package research

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
)

// stubLLM routes prompts to canned responses by substring match.
type stubLLM struct {
	mu       sync.Mutex
	rules    map[string]string
	fallback string
	calls    int
}

func (s *stubLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return llm.Response{}, err
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	for needle, response := range s.rules {
		if strings.Contains(prompt, needle) {
			return llm.Response{Content: response}, nil
		}
	}
	return llm.Response{Content: s.fallback}, nil
}

func (s *stubLLM) Model() string    { return "stub-model" }
func (s *stubLLM) Provider() string { return "stub" }

// memoryRetriever serves a fixed document set for any query.
type memoryRetriever struct {
	docs []models.SearchResult
}

func (m *memoryRetriever) Retrieve(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	if k > 0 && k < len(m.docs) {
		return m.docs[:k], nil
	}
	return m.docs, nil
}

func notesRetriever() *memoryRetriever {
	return &memoryRetriever{docs: []models.SearchResult{
		{Title: "Meeting notes", Link: "file:///notes/meeting.md", Snippet: "The project ships in Q3.", FullContent: "The project ships in Q3 after the beta."},
		{Title: "Design doc", Link: "file:///notes/design.md", Snippet: "The service uses Postgres.", FullContent: "The service uses Postgres for persistence."},
	}}
}

func newTestClient(model llm.Client) *Client {
	return NewClient(nil, model, map[string]search.Retriever{"notes": notesRetriever()}, nil)
}

func TestQuickSummaryRejectsEmptyQuery(t *testing.T) {
	client := newTestClient(&stubLLM{fallback: "answer"})

	_, err := client.QuickSummary(context.Background(), "   ", Options{})
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestQuickSummaryRequiresModel(t *testing.T) {
	client := NewClient(nil, nil, nil, nil)

	_, err := client.QuickSummary(context.Background(), "anything", Options{SearchTool: "wikipedia"})
	assert.ErrorIs(t, err, ErrNoModel)
}

func TestQuickSummaryOverLocalCollection(t *testing.T) {
	model := &stubLLM{fallback: "The project ships in Q3 [1]."}
	client := newTestClient(model)

	var progressMessages []string
	summary, err := client.QuickSummary(context.Background(), "When does the project ship?", Options{
		SearchTool:            "notes",
		Iterations:            1,
		QuestionsPerIteration: 1,
		ProgressCallback: func(message string, progress int, metadata map[string]any) {
			progressMessages = append(progressMessages, message)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Iterations)
	assert.NotEmpty(t, summary.Summary)
	assert.NotEmpty(t, summary.FormattedFindings)
	assert.NotEmpty(t, summary.Findings)
	assert.NotEmpty(t, progressMessages)

	// Every retrieval returns the same two documents; sources are
	// deduplicated by URL.
	seen := map[string]bool{}
	for _, src := range summary.Sources {
		assert.False(t, seen[src.Link], "duplicate source %s", src.Link)
		seen[src.Link] = true
	}
}

func TestQuickSummaryUsesRegisteredModelInstance(t *testing.T) {
	registered := &stubLLM{fallback: "From the registered model [1]."}
	client := newTestClient(&stubLLM{fallback: "base model text"})

	summary, err := client.QuickSummary(context.Background(), "When does the project ship?", Options{
		SearchTool:            "notes",
		Iterations:            1,
		QuestionsPerIteration: 1,
		ModelName:             "mine",
		LLMs:                  map[string]llm.Client{"mine": registered},
	})
	require.NoError(t, err)

	assert.Positive(t, registered.calls)
	assert.NotEmpty(t, summary.Summary)
}

func TestGenerateReportWritesOutputFile(t *testing.T) {
	model := &stubLLM{
		rules: map[string]string{
			"STRUCTURE": "STRUCTURE\n1. Timeline\n- Ship date | when the project ships\nEND_STRUCTURE",
		},
		fallback: "The project ships in Q3 [1].",
	}
	client := newTestClient(model)

	outputFile := filepath.Join(t.TempDir(), "reports", "ship-date.md")
	rep, err := client.GenerateReport(context.Background(), "When does the project ship?", Options{
		SearchTool:            "notes",
		Iterations:            1,
		QuestionsPerIteration: 1,
		SearchesPerSection:    1,
		OutputFile:            outputFile,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rep.Content)
	assert.Equal(t, outputFile, rep.FilePath)
	assert.Equal(t, 1, rep.Metadata.SectionsResearched)
	assert.Equal(t, "When does the project ship?", rep.Metadata.Query)

	written, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, rep.Content, string(written))
}

func TestAnalyzeDocuments(t *testing.T) {
	model := &stubLLM{fallback: "The notes say the project ships in Q3."}
	client := newTestClient(model)

	analysis, err := client.AnalyzeDocuments(context.Background(), "ship date", "notes", Options{})
	require.NoError(t, err)

	assert.Equal(t, "notes", analysis.Collection)
	assert.Equal(t, 2, analysis.DocumentCount)
	assert.Len(t, analysis.Documents, 2)
	assert.Equal(t, "The notes say the project ships in Q3.", analysis.Summary)
}

func TestAnalyzeDocumentsUnknownCollection(t *testing.T) {
	client := newTestClient(&stubLLM{fallback: "answer"})

	_, err := client.AnalyzeDocuments(context.Background(), "anything", "missing", Options{})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestAnalyzeDocumentsEmptyCollection(t *testing.T) {
	client := NewClient(nil, &stubLLM{fallback: "answer"},
		map[string]search.Retriever{"empty": &memoryRetriever{}}, nil)

	analysis, err := client.AnalyzeDocuments(context.Background(), "anything", "empty", Options{})
	require.NoError(t, err)

	assert.Zero(t, analysis.DocumentCount)
	assert.Contains(t, analysis.Summary, "No documents")
}

func TestAnalyzeDocumentsHonorsPerCallRetrievers(t *testing.T) {
	client := NewClient(nil, &stubLLM{fallback: "summary"}, nil, nil)

	analysis, err := client.AnalyzeDocuments(context.Background(), "ship date", "adhoc", Options{
		Retrievers: map[string]search.Retriever{"adhoc": notesRetriever()},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, analysis.DocumentCount)
}

func TestAvailableSearchEngines(t *testing.T) {
	client := newTestClient(&stubLLM{})

	engines := client.AvailableSearchEngines()
	assert.Contains(t, engines, "wikipedia")
	assert.Contains(t, engines, "arxiv")
	for name, description := range engines {
		assert.NotEmpty(t, description, "engine %s has no description", name)
	}
}

func TestAvailableCollections(t *testing.T) {
	client := newTestClient(&stubLLM{})

	collections := client.AvailableCollections()
	require.Contains(t, collections, "notes")
	assert.Equal(t, "notes", collections["notes"].Name)
}
