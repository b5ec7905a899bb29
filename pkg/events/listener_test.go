package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=research", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=research", listener.connString)
	assert.NotNil(t, listener.channels)
	assert.Equal(t, manager, listener.manager)
}

// Before Start establishes the LISTEN connection, subscribing to a
// research channel must fail loudly while unsubscribing stays a no-op,
// so a WebSocket client disconnecting during startup cannot wedge the
// manager.
func TestNotifyListenerWithoutConnection(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=research", manager)
	channel := ResearchChannel(42)

	t.Run("subscribe fails", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), channel)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe is a no-op", func(t *testing.T) {
		assert.NoError(t, listener.Unsubscribe(t.Context(), channel))
	})
}
