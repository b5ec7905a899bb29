package events

// LogEntry mirrors a research_logs row inside a progress payload so the
// UI can append to its log view without a second fetch.
type LogEntry struct {
	Time     string         `json:"time"` // ISO-8601 UTC
	Message  string         `json:"message"`
	Progress *int           `json:"progress,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ProgressPayload is the payload for research.progress events.
// Published on every progress callback from a running research.
type ProgressPayload struct {
	Type       string    `json:"type"`        // always EventTypeProgress
	ResearchID int       `json:"research_id"` // owning research
	Progress   int       `json:"progress"`    // 0..100, monotone non-decreasing
	Message    string    `json:"message"`     // human-readable phase description
	Status     string    `json:"status"`      // current research status
	LogEntry   *LogEntry `json:"log_entry,omitempty"`
	Timestamp  string    `json:"timestamp"` // ISO-8601 UTC
}

// StatusPayload is the payload for research.status events.
// Published when a research transitions between lifecycle states.
type StatusPayload struct {
	Type       string `json:"type"`        // always EventTypeStatus
	ResearchID int    `json:"research_id"` // owning research
	Status     string `json:"status"`      // in_progress, terminating, completed, failed, suspended
	Progress   int    `json:"progress"`    // last known progress
	Error      string `json:"error,omitempty"`
	ReportPath string `json:"report_path,omitempty"` // set on completion when a report was written
	Timestamp  string `json:"timestamp"`             // ISO-8601 UTC
}
