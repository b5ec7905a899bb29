package events_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ujesh-sakariya/local-deep-research-sub002/pkg/events"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
	testdb "github.com/ujesh-sakariya/local-deep-research-sub002/test/database"
	"github.com/ujesh-sakariya/local-deep-research-sub002/test/util"
)

// researchTestEnv holds all wired-up components for an integration test.
type researchTestEnv struct {
	dbClient     *database.Client
	publisher    *EventPublisher
	eventService *services.EventService
	manager      *ConnectionManager
	listener     *NotifyListener
	server       *httptest.Server
	researchID   int // pre-created ResearchRecord (satisfies FK on events)
	channel      string
}

// setupResearchTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupResearchTest(t *testing.T) *researchTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// ResearchRecord required by the FK on the events table.
	rec, err := dbClient.ResearchRecord.Create().
		SetQuery("integration test research").
		SetMode("quick").
		Save(ctx)
	require.NoError(t, err)

	channel := ResearchChannel(rec.ID)

	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema
	// search_path) because NOTIFY/LISTEN is database-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &researchTestEnv{
		dbClient:     dbClient,
		publisher:    publisher,
		eventService: eventService,
		manager:      manager,
		listener:     listener,
		server:       server,
		researchID:   rec.ID,
		channel:      channel,
	}
}

func (env *researchTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, subscribes to the env's channel,
// and waits for the LISTEN to propagate.
func (env *researchTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe_to_research", ResearchID: &env.researchID})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.IsListeningForTest(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupResearchTest(t)
	ctx := context.Background()

	err := env.publisher.PublishMilestone(ctx, ProgressPayload{
		Type:       EventTypeProgress,
		ResearchID: env.researchID,
		Progress:   10,
		Message:    "Generating questions",
		Status:     StatusInProgress,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	err = env.publisher.PublishStatus(ctx, StatusPayload{
		Type:       EventTypeStatus,
		ResearchID: env.researchID,
		Status:     StatusCompleted,
		Progress:   100,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, env.researchID, events[0].ResearchID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeProgress, events[0].Payload["type"])
	assert.Equal(t, "Generating questions", events[0].Payload["message"])

	assert.Equal(t, EventTypeStatus, events[1].Payload["type"])
	assert.Equal(t, StatusCompleted, events[1].Payload["status"])

	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientProgressNotPersisted(t *testing.T) {
	env := setupResearchTest(t)
	ctx := context.Background()

	err := env.publisher.PublishProgress(ctx, ProgressPayload{
		Type:       EventTypeProgress,
		ResearchID: env.researchID,
		Progress:   33,
		Message:    "Searching: question 2",
		Status:     StatusInProgress,
	})
	require.NoError(t, err)

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "non-milestone progress events should not be persisted")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupResearchTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishMilestone(ctx, ProgressPayload{
		Type:       EventTypeProgress,
		ResearchID: env.researchID,
		Progress:   50,
		Message:    "Iteration 1/2 complete",
		Status:     StatusInProgress,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	// The event arrives via pg_notify, listener, manager.
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeProgress, msg["type"])
	assert.Equal(t, "Iteration 1/2 complete", msg["message"])
	assert.Equal(t, float64(env.researchID), msg["research_id"])
	// db_event_id is added by persistAndNotify after INSERT.
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupResearchTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	err := env.publisher.PublishProgress(ctx, ProgressPayload{
		Type:       EventTypeProgress,
		ResearchID: env.researchID,
		Progress:   17,
		Message:    "Searching: question 1",
		Status:     StatusInProgress,
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeProgress, msg["type"])
	assert.Equal(t, float64(17), msg["progress"])

	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_ProgressThenStatusSequence(t *testing.T) {
	// A completing research publishes milestone progress events followed
	// by a terminal status event. The subscriber observes all of them in
	// order with monotone progress.
	env := setupResearchTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	milestones := []int{10, 20, 50, 100}
	for _, pct := range milestones {
		err := env.publisher.PublishMilestone(ctx, ProgressPayload{
			Type:       EventTypeProgress,
			ResearchID: env.researchID,
			Progress:   pct,
			Message:    "milestone",
			Status:     StatusInProgress,
		})
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeProgress, msg["type"])
		assert.Equal(t, float64(pct), msg["progress"])
	}

	err := env.publisher.PublishStatus(ctx, StatusPayload{
		Type:       EventTypeStatus,
		ResearchID: env.researchID,
		Status:     StatusCompleted,
		Progress:   100,
		ReportPath: "research_outputs/integration_test_research.md",
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeStatus, msg["type"])
	assert.Equal(t, StatusCompleted, msg["status"])
	assert.Equal(t, "research_outputs/integration_test_research.md", msg["report_path"])

	// All five events persisted for catchup.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 5)
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupResearchTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events.
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishMilestone(ctx, ProgressPayload{
			Type:       EventTypeProgress,
			ResearchID: env.researchID,
			Progress:   i * 10,
			Message:    "milestone",
			Status:     StatusInProgress,
		})
		require.NoError(t, err)
	}

	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection).
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe: auto-catchup delivers all 3 prior events immediately.
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeProgress, msg["type"])
		assert.Equal(t, float64(i*10), msg["progress"])
	}

	// Explicit catchup from the first event's ID returns only events 2 and 3.
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i*10), msg["progress"])
	}

	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
