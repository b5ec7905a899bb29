package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchlog"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// LogService manages per-research log rows (the structured counterpart
// of the progress_log JSON column).
type LogService struct {
	client *ent.Client
}

// NewLogService creates a new LogService
func NewLogService(client *ent.Client) *LogService {
	return &LogService{client: client}
}

// AddLog appends one log row. Level defaults to info; progress and
// metadata are optional.
func (s *LogService) AddLog(httpCtx context.Context, researchID int, message string, level models.LogLevel, progress *int, metadata map[string]any) (*ent.ResearchLog, error) {
	if message == "" {
		return nil, NewValidationError("message", "required")
	}

	// Background context with timeout: log writes must survive request
	// cancellation because workers log during finalization.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ResearchLog.Create().
		SetResearchID(researchID).
		SetTime(time.Now()).
		SetMessage(message).
		SetLevel(researchlog.Level(level))
	if progress != nil {
		builder = builder.SetProgress(*progress)
	}
	if metadata != nil {
		builder = builder.SetMetadata(metadata)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add research log: %w", err)
	}
	return row, nil
}

// GetLogs returns all log rows for a research in chronological order.
func (s *LogService) GetLogs(ctx context.Context, researchID int) ([]*ent.ResearchLog, error) {
	logs, err := s.client.ResearchLog.Query().
		Where(researchlog.ResearchIDEQ(researchID)).
		Order(ent.Asc(researchlog.FieldTime), ent.Asc(researchlog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get research logs: %w", err)
	}
	return logs, nil
}

// GetLogsByLevel returns log rows of one level for a research.
func (s *LogService) GetLogsByLevel(ctx context.Context, researchID int, level models.LogLevel) ([]*ent.ResearchLog, error) {
	logs, err := s.client.ResearchLog.Query().
		Where(
			researchlog.ResearchIDEQ(researchID),
			researchlog.LevelEQ(researchlog.Level(level)),
		).
		Order(ent.Asc(researchlog.FieldTime), ent.Asc(researchlog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get research logs: %w", err)
	}
	return logs, nil
}
