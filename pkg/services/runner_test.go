package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/active"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/events"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
	testdb "github.com/ujesh-sakariya/local-deep-research-sub002/test/database"
)

// scriptedLLM answers every prompt with the same content. Good enough for
// runs where only control flow matters.
type scriptedLLM struct {
	mu       sync.Mutex
	response string
	calls    int
}

func (s *scriptedLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return llm.Response{}, err
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return llm.Response{Content: s.response}, nil
}

func (s *scriptedLLM) Model() string    { return "scripted" }
func (s *scriptedLLM) Provider() string { return "test" }

// stubSearcher returns a fixed number of unique previews per call. When
// blockUntil is set, GetPreviews waits for it, letting tests hold a run
// open deterministically.
type stubSearcher struct {
	mu         sync.Mutex
	perQuery   int
	calls      int
	blockUntil chan struct{}
}

func (s *stubSearcher) Name() string { return "stub" }

func (s *stubSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	if s.blockUntil != nil {
		select {
		case <-s.blockUntil:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]models.SearchResult, 0, s.perQuery)
	for i := 0; i < s.perQuery; i++ {
		n := (s.calls-1)*s.perQuery + i
		out = append(out, models.SearchResult{
			Title:   fmt.Sprintf("Stub result %d", n),
			Link:    fmt.Sprintf("https://stub.example/%d", n),
			Snippet: fmt.Sprintf("stub snippet %d", n),
		})
	}
	return out, nil
}

func (s *stubSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return results, nil
}

func stubFactory(model llm.Client, searcher *stubSearcher) *search.Factory {
	registry := search.NewRegistry(search.EngineSpec{
		Name:        "stub",
		Description: "deterministic in-memory engine",
		Reliability: 1,
		New: func(deps search.Deps) (search.PreviewSearcher, error) {
			return searcher, nil
		},
	})
	return search.NewFactory(search.FactoryConfig{Registry: registry, LLM: model})
}

type runnerFixture struct {
	client    *database.Client
	runner    *Runner
	research  *ResearchService
	active    *active.Manager
	outputDir string
}

func newRunnerFixture(t *testing.T, model llm.Client, searcher *stubSearcher) *runnerFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	researchService := NewResearchService(client.Client)
	logService := NewLogService(client.Client)
	resourceService := NewResourceService(client.Client)
	settingsService := NewSettingsService(client.Client)
	tokenService := NewTokenService(client.Client)
	activeManager := active.NewManager()
	publisher := events.NewEventPublisher(client.DB())
	outputDir := t.TempDir()

	runner := NewRunner(
		researchService, logService, resourceService, settingsService, tokenService,
		activeManager, publisher, model, stubFactory(model, searcher), nil,
		RunnerConfig{
			DefaultStrategy:       "standard",
			DefaultEngine:         "stub",
			MaxIterations:         1,
			QuestionsPerIteration: 1,
			ContextLimit:          4000,
			SearchesPerSection:    1,
			MaxResults:            5,
			MaxFilteredResults:    5,
			CompressionMode:       "ITERATION",
			OutputDir:             outputDir,
		}, nil)

	return &runnerFixture{
		client:    client,
		runner:    runner,
		research:  researchService,
		active:    activeManager,
		outputDir: outputDir,
	}
}

func waitForTerminal(t *testing.T, service *ResearchService, id int) researchrecord.Status {
	t.Helper()
	var status researchrecord.Status
	require.Eventually(t, func() bool {
		rec, err := service.GetResearch(context.Background(), id, false)
		if err != nil {
			return false
		}
		status = rec.Status
		return status != researchrecord.StatusInProgress
	}, 30*time.Second, 50*time.Millisecond, "research never reached a terminal state")
	return status
}

func TestRunnerCompletesQuickResearch(t *testing.T) {
	model := &scriptedLLM{response: "Paris is the capital of France [1]."}
	fx := newRunnerFixture(t, model, &stubSearcher{perQuery: 2})
	ctx := context.Background()

	rec, err := fx.runner.Start(ctx, StartOptions{Query: "capital of France", Mode: "quick"})
	require.NoError(t, err)

	status := waitForTerminal(t, fx.research, rec.ID)
	assert.Equal(t, researchrecord.StatusCompleted, status)

	got, err := fx.research.GetResearch(ctx, rec.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.CompletedAt)
	assert.False(t, got.CompletedAt.Before(got.CreatedAt))

	// The report landed on disk and the record points at it.
	require.NotNil(t, got.ReportPath)
	content, err := os.ReadFile(*got.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "capital of France")
	assert.Equal(t, fx.outputDir, filepath.Dir(*got.ReportPath))

	// Citable resources were persisted for the run.
	assert.NotEmpty(t, got.Edges.Resources)
	assert.Positive(t, model.calls)
}

func TestRunnerRejectsEmptyQuery(t *testing.T) {
	fx := newRunnerFixture(t, &scriptedLLM{response: "x"}, &stubSearcher{perQuery: 1})

	_, err := fx.runner.Start(context.Background(), StartOptions{Query: ""})
	var validErr *ValidationError
	assert.ErrorAs(t, err, &validErr)
}

func TestRunnerEnforcesSingleActive(t *testing.T) {
	release := make(chan struct{})
	searcher := &stubSearcher{perQuery: 1, blockUntil: release}
	fx := newRunnerFixture(t, &scriptedLLM{response: "blocked [1]"}, searcher)
	ctx := context.Background()

	first, err := fx.runner.Start(ctx, StartOptions{Query: "long running research"})
	require.NoError(t, err)

	_, err = fx.runner.Start(ctx, StartOptions{Query: "impatient second research"})
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	close(release)
	status := waitForTerminal(t, fx.research, first.ID)
	assert.Equal(t, researchrecord.StatusCompleted, status)

	// With the first run finished, a new one starts cleanly.
	second, err := fx.runner.Start(ctx, StartOptions{Query: "now it is my turn"})
	require.NoError(t, err)
	waitForTerminal(t, fx.research, second.ID)
}

func TestRunnerTerminateSuspendsRun(t *testing.T) {
	release := make(chan struct{})
	searcher := &stubSearcher{perQuery: 1, blockUntil: release}
	fx := newRunnerFixture(t, &scriptedLLM{response: "never finishes"}, searcher)
	ctx := context.Background()

	rec, err := fx.runner.Start(ctx, StartOptions{Query: "research to terminate"})
	require.NoError(t, err)

	require.NoError(t, fx.runner.Terminate(ctx, rec.ID))
	close(release)

	status := waitForTerminal(t, fx.research, rec.ID)
	assert.Equal(t, researchrecord.StatusSuspended, status)

	// Terminating a run that is no longer active reports ErrNotFound at
	// the runner level; the HTTP layer turns that into a no-op success.
	assert.ErrorIs(t, fx.runner.Terminate(ctx, rec.ID), ErrNotFound)
}

func TestRunnerCompletesWithEmptyEngine(t *testing.T) {
	model := &scriptedLLM{response: "No relevant results were found for this query."}
	fx := newRunnerFixture(t, model, &stubSearcher{perQuery: 0})
	ctx := context.Background()

	rec, err := fx.runner.Start(ctx, StartOptions{Query: "query with no sources"})
	require.NoError(t, err)

	// An empty result set is not a failure; synthesis still runs.
	status := waitForTerminal(t, fx.research, rec.ID)
	assert.Equal(t, researchrecord.StatusCompleted, status)

	got, err := fx.research.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.ReportPath)
	content, err := os.ReadFile(*got.ReportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "No relevant results found.")
}

func TestRunnerMasksSecretsInReport(t *testing.T) {
	leaked := "sk-abcdefghijklmnopqrstuvwxyz123456"
	model := &scriptedLLM{response: "The page quoted key " + leaked + " verbatim [1]."}
	fx := newRunnerFixture(t, model, &stubSearcher{perQuery: 1})
	ctx := context.Background()

	rec, err := fx.runner.Start(ctx, StartOptions{Query: "engine configuration leak"})
	require.NoError(t, err)
	status := waitForTerminal(t, fx.research, rec.ID)
	assert.Equal(t, researchrecord.StatusCompleted, status)

	got, err := fx.research.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	require.NotNil(t, got.ReportPath)
	content, err := os.ReadFile(*got.ReportPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), leaked)
	assert.Contains(t, string(content), "***MASKED***")
}

func TestRunnerDetailedModeKeepsProgressMonotone(t *testing.T) {
	model := &scriptedLLM{response: "Detailed findings about the topic [1]."}
	fx := newRunnerFixture(t, model, &stubSearcher{perQuery: 2})
	ctx := context.Background()

	rec, err := fx.runner.Start(ctx, StartOptions{Query: "history of the metric system", Mode: "detailed"})
	require.NoError(t, err)

	status := waitForTerminal(t, fx.research, rec.ID)
	assert.Equal(t, researchrecord.StatusCompleted, status)

	got, err := fx.research.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)

	// The report phase and its per-section sub-runs restart their own
	// counters; the persisted log must never record a regression.
	require.NotEmpty(t, got.ProgressLog)
	last := -1
	for i, entry := range got.ProgressLog {
		p, ok := entryProgress(entry)
		if !ok {
			continue
		}
		assert.GreaterOrEqual(t, p, last, "progress regressed at entry %d: %v", i, entry)
		if p > last {
			last = p
		}
	}
}

// entryProgress pulls the percentage out of a progress_log entry,
// tolerating the numeric widening a JSON round trip applies.
func entryProgress(entry map[string]interface{}) (int, bool) {
	switch v := entry["progress"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

func TestRunnerHonorsSettingsOverrides(t *testing.T) {
	model := &scriptedLLM{response: "settings driven [1]"}
	searcher := &stubSearcher{perQuery: 1}
	fx := newRunnerFixture(t, model, searcher)
	ctx := context.Background()

	settings := NewSettingsService(fx.client.Client)
	require.NoError(t, settings.Set(ctx, "research.max_iterations", 2, "research"))
	require.NoError(t, settings.Set(ctx, "research.questions_per_iteration", 2, "research"))

	rec, err := fx.runner.Start(ctx, StartOptions{Query: "settings override run"})
	require.NoError(t, err)
	waitForTerminal(t, fx.research, rec.ID)

	got, err := fx.research.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ResearchMeta["iterations"])
}
