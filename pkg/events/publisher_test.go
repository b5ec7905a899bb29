package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ProgressPayload{
			Type:       EventTypeProgress,
			ResearchID: 123,
			Progress:   40,
			Message:    "Searching: question 2",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeProgress)
		assert.Contains(t, result, "Searching: question 2")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(ProgressPayload{
			Type:       EventTypeProgress,
			ResearchID: 123,
			LogEntry: &LogEntry{
				Message: strings.Repeat("a", 8000),
			},
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(ProgressPayload{
			Type:       EventTypeProgress,
			ResearchID: 789,
			Message:    strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeProgress)
		assert.Contains(t, result, `"research_id":789`)
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Measure the fixed-field overhead first so the test does not flip
		// if fields are added to ProgressPayload.
		base, _ := json.Marshal(ProgressPayload{Type: "t"})
		contentSize := 7900 - len(base) - 20
		payload, _ := json.Marshal(ProgressPayload{
			Type:    "t",
			Message: strings.Repeat("b", contentSize),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(StatusPayload{
			Type:       EventTypeStatus,
			ResearchID: 1,
			Status:     StatusCompleted,
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, StatusCompleted)
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		payload, _ := json.Marshal(ProgressPayload{
			Type:       EventTypeProgress,
			ResearchID: 456,
			Message:    strings.Repeat("x", 8000),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, `"research_id":456`)
	})

	t.Run("rejects non-JSON payload", func(t *testing.T) {
		_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestProgressPayload_JSON(t *testing.T) {
	progress := 35
	payload := ProgressPayload{
		Type:       EventTypeProgress,
		ResearchID: 100,
		Progress:   35,
		Message:    "Iteration 2/3 complete",
		Status:     StatusInProgress,
		LogEntry: &LogEntry{
			Time:     "2026-08-20T10:00:00Z",
			Message:  "Iteration 2/3 complete",
			Progress: &progress,
			Metadata: map[string]any{"phase": "iteration_complete"},
		},
		Timestamp: "2026-08-20T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeProgress, decoded.Type)
	assert.Equal(t, 100, decoded.ResearchID)
	assert.Equal(t, 35, decoded.Progress)
	require.NotNil(t, decoded.LogEntry)
	assert.Equal(t, "iteration_complete", decoded.LogEntry.Metadata["phase"])
	require.NotNil(t, decoded.LogEntry.Progress)
	assert.Equal(t, 35, *decoded.LogEntry.Progress)
}

func TestStatusPayload_OmitsEmptyOptionalFields(t *testing.T) {
	payload := StatusPayload{
		Type:       EventTypeStatus,
		ResearchID: 5,
		Status:     StatusInProgress,
		Timestamp:  "2026-08-20T10:00:00Z",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "error")
	assert.NotContains(t, string(data), "report_path")
}
