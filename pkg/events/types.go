// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two kinds of events flow through this package:
//
//   - Persistent events (research.status, milestone research.progress):
//     written to the events table and broadcast via NOTIFY in one
//     transaction. Late subscribers replay them through catchup.
//
//   - Transient events (non-milestone research.progress): broadcast via
//     NOTIFY only. They exist for live progress bars; a reconnecting
//     client reconstructs state from the persisted milestones instead.
//
// Clients subscribe per research via the "research_progress_{id}"
// channel, or to the global "researches" channel for the history page.
package events

import "strconv"

// Event types carried in the "type" field of every payload.
const (
	// EventTypeProgress is emitted on every progress callback from a
	// running research. Milestone occurrences are also persisted.
	EventTypeProgress = "research.progress"

	// EventTypeStatus is emitted when a research transitions between
	// lifecycle states (in_progress, terminating, completed, failed,
	// suspended).
	EventTypeStatus = "research.status"
)

// Research status values used in StatusPayload.Status. "terminating" is
// transient: it signals that termination was requested but the worker
// has not yet observed the flag.
const (
	StatusInProgress  = "in_progress"
	StatusTerminating = "terminating"
	StatusCompleted   = "completed"
	StatusFailed      = "failed"
	StatusSuspended   = "suspended"
)

// GlobalResearchChannel carries status events for every research. The
// history page subscribes to it for live list updates.
const GlobalResearchChannel = "researches"

// ResearchChannel returns the channel name for a specific research.
// Format: "research_progress_{research_id}".
func ResearchChannel(researchID int) string {
	return "research_progress_" + strconv.Itoa(researchID)
}

// ClientMessage is the JSON structure for client to server WebSocket
// messages. "subscribe_to_research" is a convenience action that
// resolves the channel name from ResearchID server-side.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "subscribe_to_research", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // channel name (e.g. "research_progress_42")
	ResearchID  *int   `json:"research_id,omitempty"`   // for subscribe_to_research
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
