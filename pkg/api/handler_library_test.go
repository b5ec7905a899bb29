package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/research"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
)

type cannedLLM struct{ response string }

func (c *cannedLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	return llm.Response{Content: c.response}, nil
}
func (c *cannedLLM) Model() string    { return "canned" }
func (c *cannedLLM) Provider() string { return "test" }

type fixedRetriever struct{ docs []models.SearchResult }

func (f *fixedRetriever) Retrieve(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	return f.docs, nil
}

// newLibraryRouter builds a router whose /api/v1 endpoints run against an
// in-memory facade, no database or network behind it.
func newLibraryRouter(model llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	retrievers := map[string]search.Retriever{
		"docs": &fixedRetriever{docs: []models.SearchResult{
			{Title: "One", Link: "file:///one.md", Snippet: "first doc"},
		}},
	}
	server := NewServer(Deps{Library: research.NewClient(nil, model, retrievers, nil)})
	return server.Router()
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestQuickSummaryEndpointRejectsEmptyQuery(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{response: "answer"})

	rec := postJSON(router, "/api/v1/quick_summary", `{"query": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuickSummaryEndpointRejectsMalformedBody(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{response: "answer"})

	rec := postJSON(router, "/api/v1/quick_summary", `{"query": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuickSummaryEndpointWithoutModel(t *testing.T) {
	router := newLibraryRouter(nil)

	rec := postJSON(router, "/api/v1/quick_summary", `{"query": "anything", "search_tool": "docs"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestQuickSummaryEndpoint(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{response: "The answer is in the first doc [1]."})

	rec := postJSON(router, "/api/v1/quick_summary",
		`{"query": "what is in the docs?", "search_tool": "docs", "iterations": 1, "questions_per_iteration": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Summary    string `json:"summary"`
		Iterations int    `json:"iterations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Summary)
	assert.Equal(t, 1, body.Iterations)
}

func TestGenerateReportEndpointTruncatesLongContent(t *testing.T) {
	// Every LLM call answers with an 11k-character block, so the
	// assembled report exceeds the inline response budget.
	router := newLibraryRouter(&cannedLLM{response: strings.Repeat("x", 11000)})

	rec := postJSON(router, "/api/v1/generate_report",
		`{"query": "what is in the docs?", "search_tool": "docs", "iterations": 1, "questions_per_iteration": 1, "searches_per_section": 1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Content   string `json:"content"`
		Truncated bool   `json:"truncated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Truncated)
	assert.Len(t, body.Content, maxInlineReportChars)
}

func TestAnalyzeDocumentsEndpointRequiresCollection(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{response: "answer"})

	rec := postJSON(router, "/api/v1/analyze_documents", `{"query": "anything"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeDocumentsEndpointUnknownCollection(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{response: "answer"})

	rec := postJSON(router, "/api/v1/analyze_documents",
		`{"query": "anything", "collection_name": "missing"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAnalyzeDocumentsEndpoint(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{response: "Summary of the docs."})

	rec := postJSON(router, "/api/v1/analyze_documents",
		`{"query": "what is in the docs?", "collection_name": "docs"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Summary       string `json:"summary"`
		Collection    string `json:"collection"`
		DocumentCount int    `json:"document_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "docs", body.Collection)
	assert.Equal(t, 1, body.DocumentCount)
	assert.Equal(t, "Summary of the docs.", body.Summary)
}

func TestSearchEnginesEndpoint(t *testing.T) {
	router := newLibraryRouter(&cannedLLM{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/search_engines", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Engines map[string]string `json:"engines"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Engines, "wikipedia")
}

func TestHealthEndpointWithoutDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := NewServer(Deps{Library: research.NewClient(nil, nil, nil, nil)})
	router := server.Router()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
}
