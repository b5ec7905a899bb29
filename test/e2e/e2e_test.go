// Package e2e exercises the full stack over real HTTP and WebSocket
// against a real PostgreSQL database: router -> runner -> strategy ->
// services -> event bus -> NOTIFY/LISTEN -> WebSocket delivery.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/active"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/api"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/events"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/llm"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/search"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
	testdb "github.com/ujesh-sakariya/local-deep-research-sub002/test/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/test/util"
)

// fixedLLM answers every prompt with the same content.
type fixedLLM struct {
	response string
}

func (f *fixedLLM) Invoke(ctx context.Context, prompt string) (llm.Response, error) {
	if err := ctx.Err(); err != nil {
		return llm.Response{}, err
	}
	return llm.Response{Content: f.response}, nil
}

func (f *fixedLLM) Model() string    { return "fixed" }
func (f *fixedLLM) Provider() string { return "test" }

// gatedSearcher returns unique previews per call. When gate is set,
// GetPreviews blocks until the gate closes, which lets a test hold a
// research open while it pokes at the API.
type gatedSearcher struct {
	mu    sync.Mutex
	calls int
	gate  chan struct{}
}

func (s *gatedSearcher) Name() string { return "stub" }

func (s *gatedSearcher) GetPreviews(ctx context.Context, query string) ([]models.SearchResult, error) {
	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	out := make([]models.SearchResult, 0, 3)
	for i := 0; i < 3; i++ {
		n := (s.calls-1)*3 + i
		out = append(out, models.SearchResult{
			Title:   fmt.Sprintf("Result %d", n),
			Link:    fmt.Sprintf("https://stub.example/%d", n),
			Snippet: fmt.Sprintf("snippet %d", n),
		})
	}
	return out, nil
}

func (s *gatedSearcher) GetFullContent(ctx context.Context, results []models.SearchResult) ([]models.SearchResult, error) {
	return results, nil
}

// stack is the whole application wired against a test database and
// served through httptest.
type stack struct {
	client    *database.Client
	runner    *services.Runner
	research  *services.ResearchService
	publisher *events.EventPublisher
	manager   *events.ConnectionManager
	server    *httptest.Server
	outputDir string
}

func newStack(t *testing.T, searcher *gatedSearcher) *stack {
	t.Helper()

	client := testdb.NewTestClient(t)
	ctx := context.Background()

	researchService := services.NewResearchService(client.Client)
	logService := services.NewLogService(client.Client)
	resourceService := services.NewResourceService(client.Client)
	settingsService := services.NewSettingsService(client.Client)
	tokenService := services.NewTokenService(client.Client)
	eventService := services.NewEventService(client.Client)
	activeManager := active.NewManager()

	publisher := events.NewEventPublisher(client.DB())
	manager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)

	// The listener needs the base connection string: LISTEN is
	// database-level, not scoped to the test schema.
	listener := events.NewNotifyListener(util.GetBaseConnectionString(t), manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)
	t.Cleanup(func() { listener.Stop(context.Background()) })

	model := &fixedLLM{response: "The answer, with sources [1] and [2]."}
	registry := search.NewRegistry(search.EngineSpec{
		Name:        "stub",
		Description: "deterministic in-memory engine",
		Reliability: 1,
		New: func(deps search.Deps) (search.PreviewSearcher, error) {
			return searcher, nil
		},
	})
	factory := search.NewFactory(search.FactoryConfig{Registry: registry, LLM: model})

	outputDir := t.TempDir()
	runner := services.NewRunner(
		researchService, logService, resourceService, settingsService, tokenService,
		activeManager, publisher, model, factory, nil,
		services.RunnerConfig{
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

	srv := api.NewServer(api.Deps{
		DB:          client,
		Runner:      runner,
		Research:    researchService,
		Logs:        logService,
		Resources:   resourceService,
		Active:      activeManager,
		ConnManager: manager,
		Config:      &config.ServerConfig{}, // zero rate limit budget disables limiting
	})
	httpSrv := httptest.NewServer(srv.Router())
	t.Cleanup(httpSrv.Close)

	return &stack{
		client:    client,
		runner:    runner,
		research:  researchService,
		publisher: publisher,
		manager:   manager,
		server:    httpSrv,
		outputDir: outputDir,
	}
}

// --- HTTP helpers ---

func (s *stack) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(s.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeJSON(t, resp)
}

func (s *stack) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(s.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeJSON(t, resp)
}

func (s *stack) deleteJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, s.server.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, decodeJSON(t, resp)
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (s *stack) startResearch(t *testing.T, query string) int {
	t.Helper()
	status, body := s.postJSON(t, "/research/api/start_research", map[string]any{
		"query": query,
		"mode":  "quick",
	})
	require.Equal(t, http.StatusOK, status, "start_research body: %v", body)
	id := int(body["research_id"].(float64))
	require.Positive(t, id)
	return id
}

// pollStatus polls GET /research/api/status/:id until the record reaches
// a terminal status, and returns the final body.
func (s *stack) pollStatus(t *testing.T, id int) map[string]any {
	t.Helper()
	var last map[string]any
	require.Eventually(t, func() bool {
		code, body := s.getJSON(t, fmt.Sprintf("/research/api/status/%d", id))
		if code != http.StatusOK {
			return false
		}
		last = body
		rec := body["research"].(map[string]any)
		switch rec["status"] {
		case "completed", "failed", "suspended":
			return true
		}
		return false
	}, 30*time.Second, 100*time.Millisecond, "research %d never reached a terminal status", id)
	return last
}

// --- WebSocket helpers ---

func (s *stack) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+s.server.URL[len("http"):]+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]any {
	t.Helper()
	msg, ok := tryReadJSON(t, conn, timeout)
	require.True(t, ok, "no WebSocket message within %s", timeout)
	return msg
}

func tryReadJSON(t *testing.T, conn *websocket.Conn, timeout time.Duration) (map[string]any, bool) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	_, data, err := conn.Read(ctx)
	if err != nil {
		return nil, false
	}
	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg, true
}

// subscribe connects, subscribes to the research channel, and then
// publishes probe events until one is delivered, proving the LISTEN is
// live before the test lets the run proceed.
func (s *stack) subscribe(t *testing.T, researchID int) *websocket.Conn {
	t.Helper()
	conn := s.connectWS(t)

	msg := readJSON(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	sub, _ := json.Marshal(events.ClientMessage{Action: "subscribe_to_research", ResearchID: &researchID})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, sub))

	msg = readJSON(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		probeCtx, probeCancel := context.WithTimeout(context.Background(), time.Second)
		err := s.publisher.PublishProgress(probeCtx, events.ProgressPayload{
			Type:       events.EventTypeProgress,
			ResearchID: researchID,
			Message:    "listen-probe",
			Status:     events.StatusInProgress,
			Timestamp:  models.FormatTimestamp(time.Now()),
		})
		probeCancel()
		require.NoError(t, err)
		if _, ok := tryReadJSON(t, conn, 200*time.Millisecond); ok {
			return conn
		}
	}
	t.Fatal("LISTEN never propagated for the research channel")
	return nil
}

// --- Tests ---

func TestE2E_QuickResearchLifecycle(t *testing.T) {
	s := newStack(t, &gatedSearcher{})
	id := s.startResearch(t, "What is the speed of sound in water?")

	final := s.pollStatus(t, id)
	rec := final["research"].(map[string]any)
	assert.Equal(t, "completed", rec["status"])
	assert.EqualValues(t, 100, rec["progress"])
	assert.NotEmpty(t, rec["report_path"])

	// Report is retrievable through the history endpoint.
	code, body := s.getJSON(t, fmt.Sprintf("/research/api/history/report/%d", id))
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body["content"], "speed of sound")

	// History lists the record.
	code, body = s.getJSON(t, "/research/api/history?limit=10")
	require.Equal(t, http.StatusOK, code)
	researches := body["researches"].([]any)
	require.NotEmpty(t, researches)
	assert.EqualValues(t, id, researches[0].(map[string]any)["id"])

	// Details carry the milestone log.
	code, body = s.getJSON(t, fmt.Sprintf("/research/api/details/%d", id))
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["log"].([]any))

	// Persisted milestone logs are exposed separately.
	code, body = s.getJSON(t, fmt.Sprintf("/research/api/logs/%d", id))
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["logs"].([]any))

	// Cited resources carry contiguous citation indices starting at 1.
	code, body = s.getJSON(t, fmt.Sprintf("/research/api/resources/%d", id))
	require.Equal(t, http.StatusOK, code)
	resources := body["resources"].([]any)
	require.NotEmpty(t, resources)
	indices := map[int]bool{}
	for _, raw := range resources {
		res := raw.(map[string]any)
		if v, ok := res["citation_index"]; ok && v != nil {
			indices[int(v.(float64))] = true
		}
	}
	for i := 1; i <= len(indices); i++ {
		assert.True(t, indices[i], "citation index %d missing from %v", i, indices)
	}
}

func TestE2E_ConcurrentStartConflicts(t *testing.T) {
	gate := make(chan struct{})
	searcher := &gatedSearcher{gate: gate}
	s := newStack(t, searcher)

	id := s.startResearch(t, "first research")

	code, body := s.postJSON(t, "/research/api/start_research", map[string]any{
		"query": "second research",
		"mode":  "quick",
	})
	assert.Equal(t, http.StatusConflict, code, "body: %v", body)

	close(gate)
	final := s.pollStatus(t, id)
	assert.Equal(t, "completed", final["research"].(map[string]any)["status"])

	// The slot is free again once the first run finished.
	id2 := s.startResearch(t, "third research")
	s.pollStatus(t, id2)
}

func TestE2E_TerminateAndDelete(t *testing.T) {
	gate := make(chan struct{})
	s := newStack(t, &gatedSearcher{gate: gate})

	id := s.startResearch(t, "research to terminate")

	// Deleting a running research is refused.
	code, _ := s.deleteJSON(t, fmt.Sprintf("/research/api/research/%d/delete", id))
	assert.Equal(t, http.StatusForbidden, code)

	code, body := s.postJSON(t, fmt.Sprintf("/research/api/research/%d/terminate", id), nil)
	require.Equal(t, http.StatusOK, code, "body: %v", body)

	close(gate)
	final := s.pollStatus(t, id)
	assert.Equal(t, "suspended", final["research"].(map[string]any)["status"])

	// Terminating an already-finished research is a no-op success.
	code, body = s.postJSON(t, fmt.Sprintf("/research/api/research/%d/terminate", id), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])

	code, _ = s.deleteJSON(t, fmt.Sprintf("/research/api/research/%d/delete", id))
	require.Equal(t, http.StatusOK, code)

	code, _ = s.getJSON(t, fmt.Sprintf("/research/api/status/%d", id))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestE2E_ProgressStreamsOverWebSocket(t *testing.T) {
	gate := make(chan struct{})
	s := newStack(t, &gatedSearcher{gate: gate})

	id := s.startResearch(t, "streamed research")
	conn := s.subscribe(t, id)
	close(gate)

	// Collect events until the terminal status arrives. Progress must be
	// monotone non-decreasing across everything we observe.
	lastProgress := -1
	progressEvents := 0
	var terminal map[string]any
	deadline := time.Now().Add(30 * time.Second)
	for terminal == nil && time.Now().Before(deadline) {
		msg, ok := tryReadJSON(t, conn, 2*time.Second)
		if !ok {
			continue
		}
		if msg["message"] == "listen-probe" {
			continue
		}
		switch msg["type"] {
		case events.EventTypeProgress:
			p := int(msg["progress"].(float64))
			assert.GreaterOrEqual(t, p, lastProgress, "progress went backwards")
			lastProgress = p
			progressEvents++
		case events.EventTypeStatus:
			if status := msg["status"]; status == events.StatusCompleted ||
				status == events.StatusFailed || status == events.StatusSuspended {
				terminal = msg
			}
		}
	}

	require.NotNil(t, terminal, "no terminal status event arrived")
	assert.Equal(t, events.StatusCompleted, terminal["status"])
	assert.EqualValues(t, 100, terminal["progress"])
	assert.NotEmpty(t, terminal["report_path"])
	assert.Positive(t, progressEvents, "expected at least one progress event")
}
