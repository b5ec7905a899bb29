package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResearchChannel(t *testing.T) {
	tests := []struct {
		name       string
		researchID int
		want       string
	}{
		{
			name:       "formats research channel correctly",
			researchID: 42,
			want:       "research_progress_42",
		},
		{
			name:       "handles large ids",
			researchID: 1234567,
			want:       "research_progress_1234567",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResearchChannel(tt.researchID))
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	assert.Equal(t, "research.progress", EventTypeProgress)
	assert.Equal(t, "research.status", EventTypeStatus)
	assert.NotEqual(t, EventTypeProgress, EventTypeStatus)
}

func TestGlobalResearchChannel(t *testing.T) {
	assert.Equal(t, "researches", GlobalResearchChannel)
}

func TestClientMessage_SubscribeToResearch(t *testing.T) {
	raw := `{"action":"subscribe_to_research","research_id":7}`

	var msg ClientMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &msg))

	assert.Equal(t, "subscribe_to_research", msg.Action)
	require.NotNil(t, msg.ResearchID)
	assert.Equal(t, 7, *msg.ResearchID)
	assert.Empty(t, msg.Channel)
	assert.Nil(t, msg.LastEventID)
}
