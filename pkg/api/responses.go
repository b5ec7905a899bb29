package api

import (
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// ResearchResponse is the JSON shape of one research record.
type ResearchResponse struct {
	ID              int            `json:"id"`
	Query           string         `json:"query"`
	Mode            string         `json:"mode"`
	Status          string         `json:"status"`
	Progress        int            `json:"progress"`
	CreatedAt       string         `json:"created_at"`
	CompletedAt     string         `json:"completed_at,omitempty"`
	DurationSeconds float64        `json:"duration_seconds,omitempty"`
	ReportPath      string         `json:"report_path,omitempty"`
	Meta            map[string]any `json:"research_meta,omitempty"`
}

func toResearchResponse(rec *ent.ResearchRecord) ResearchResponse {
	out := ResearchResponse{
		ID:        rec.ID,
		Query:     rec.Query,
		Mode:      string(rec.Mode),
		Status:    string(rec.Status),
		Progress:  rec.Progress,
		CreatedAt: models.FormatTimestamp(rec.CreatedAt),
		Meta:      rec.ResearchMeta,
	}
	if rec.CompletedAt != nil {
		out.CompletedAt = models.FormatTimestamp(*rec.CompletedAt)
	}
	if rec.DurationSeconds != nil {
		out.DurationSeconds = *rec.DurationSeconds
	}
	if rec.ReportPath != nil {
		out.ReportPath = *rec.ReportPath
	}
	return out
}

func toResearchResponses(recs []*ent.ResearchRecord) []ResearchResponse {
	out := make([]ResearchResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResearchResponse(rec))
	}
	return out
}

// LogResponse is the JSON shape of one persisted log entry.
type LogResponse struct {
	ID       int            `json:"id"`
	Time     string         `json:"time"`
	Message  string         `json:"message"`
	Level    string         `json:"level"`
	Progress *int           `json:"progress,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func toLogResponses(logs []*ent.ResearchLog) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, entry := range logs {
		out = append(out, LogResponse{
			ID:       entry.ID,
			Time:     models.FormatTimestamp(entry.Time),
			Message:  entry.Message,
			Level:    string(entry.Level),
			Progress: entry.Progress,
			Metadata: entry.Metadata,
		})
	}
	return out
}

// ResourceResponse is the JSON shape of one citable resource.
type ResourceResponse struct {
	ID             int            `json:"id"`
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	ContentPreview string         `json:"content_preview,omitempty"`
	SourceType     string         `json:"source_type"`
	CitationIndex  *int           `json:"citation_index,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

func toResourceResponses(resources []*ent.ResearchResource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, res := range resources {
		out = append(out, ResourceResponse{
			ID:             res.ID,
			Title:          res.Title,
			URL:            res.URL,
			ContentPreview: res.ContentPreview,
			SourceType:     res.SourceType,
			CitationIndex:  res.CitationIndex,
			Metadata:       res.Metadata,
			CreatedAt:      models.FormatTimestamp(res.CreatedAt),
		})
	}
	return out
}

// StartResearchResponse is returned by POST /research/api/start_research.
type StartResearchResponse struct {
	Status     string `json:"status"`
	ResearchID int    `json:"research_id"`
}

// ReportContentResponse is returned by GET /research/api/history/report/:id.
type ReportContentResponse struct {
	Status   string         `json:"status"`
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
