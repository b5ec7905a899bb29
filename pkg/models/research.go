package models

import (
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
)

// ResearchMode selects the output artifact of a run.
type ResearchMode string

const (
	ModeQuick    ResearchMode = "quick"
	ModeDetailed ResearchMode = "detailed"
)

// ResearchStatus is the lifecycle state of a research record.
type ResearchStatus string

const (
	StatusInProgress ResearchStatus = "in_progress"
	StatusCompleted  ResearchStatus = "completed"
	StatusFailed     ResearchStatus = "failed"
	StatusSuspended  ResearchStatus = "suspended"
)

// Terminal reports whether the status is a final state.
func (s ResearchStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusSuspended
}

// Progress phases. Every progress event carries one of these in its metadata.
const (
	PhaseInit                 = "init"
	PhaseIterationStart       = "iteration_start"
	PhaseSearch               = "search"
	PhaseSearchComplete       = "search_complete"
	PhaseSearchError          = "search_error"
	PhaseAnalysis             = "analysis"
	PhaseAnalysisComplete     = "analysis_complete"
	PhaseAnalysisError        = "analysis_error"
	PhaseKnowledgeCompression = "knowledge_compression"
	PhaseIterationComplete    = "iteration_complete"
	PhaseOutputGeneration     = "output_generation"
	PhaseReportGeneration     = "report_generation"
	PhaseReportComplete       = "report_complete"
	PhaseComplete             = "complete"
	PhaseError                = "error"
	PhaseTermination          = "termination"
)

// LogLevel classifies persisted research log rows.
type LogLevel string

const (
	LogLevelInfo      LogLevel = "info"
	LogLevelMilestone LogLevel = "milestone"
	LogLevelError     LogLevel = "error"
)

// ProgressEntry is one append-only line of a research's progress log.
// Time is UTC ISO-8601 with a T separator.
type ProgressEntry struct {
	Time     string         `json:"time"`
	Message  string         `json:"message"`
	Progress *int           `json:"progress,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Phase returns the phase carried in the entry metadata, or "".
func (e ProgressEntry) Phase() string {
	if e.Metadata == nil {
		return ""
	}
	if p, ok := e.Metadata["phase"].(string); ok {
		return p
	}
	return ""
}

// NewProgressEntry stamps an entry with the current UTC time.
func NewProgressEntry(message string, progress int, metadata map[string]any) ProgressEntry {
	p := progress
	return ProgressEntry{
		Time:     FormatTimestamp(time.Now()),
		Message:  message,
		Progress: &p,
		Metadata: metadata,
	}
}

// FormatTimestamp renders a timestamp the way every stored timestamp is
// rendered: UTC, ISO-8601, T separator.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestamp accepts the formats the system has historically written.
// RFC3339 is preferred; the fallbacks tolerate missing zones and space
// separators from older rows.
func ParseTimestamp(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// CreateResearchRequest contains fields for creating a new research record.
type CreateResearchRequest struct {
	Query        string         `json:"query"`
	Mode         ResearchMode   `json:"mode"`
	StrategyName string         `json:"strategy_name,omitempty"`
	Meta         map[string]any `json:"research_meta,omitempty"`
}

// ResearchFilters contains filtering options for listing research records.
type ResearchFilters struct {
	Status ResearchStatus `json:"status,omitempty"`
	Mode   ResearchMode   `json:"mode,omitempty"`
	Limit  int            `json:"limit,omitempty"`
	Offset int            `json:"offset,omitempty"`
}

// ResearchListResponse contains a paginated research list.
type ResearchListResponse struct {
	Researches []*ent.ResearchRecord `json:"researches"`
	TotalCount int                   `json:"total_count"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
}
