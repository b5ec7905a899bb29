package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchstrategy"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
)

// ResearchService manages research record lifecycle.
type ResearchService struct {
	client *ent.Client
}

// NewResearchService creates a new ResearchService
func NewResearchService(client *ent.Client) *ResearchService {
	return &ResearchService{client: client}
}

// CreateResearch inserts a new in_progress record together with its
// strategy row. The partial unique index on status rejects a second
// active row; that surfaces as ErrAlreadyRunning.
func (s *ResearchService) CreateResearch(httpCtx context.Context, req models.CreateResearchRequest) (*ent.ResearchRecord, error) {
	if req.Query == "" {
		return nil, NewValidationError("query", "required")
	}
	mode := req.Mode
	if mode == "" {
		mode = models.ModeQuick
	}

	// Background context with timeout for the critical write.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	initEntry := models.NewProgressEntry("Research started", 0, map[string]any{"phase": models.PhaseInit})

	builder := tx.ResearchRecord.Create().
		SetQuery(req.Query).
		SetMode(researchrecord.Mode(mode)).
		SetStatus(researchrecord.StatusInProgress).
		SetProgress(0).
		SetProgressLog([]map[string]interface{}{entryToMap(initEntry)})
	if req.Meta != nil {
		builder = builder.SetResearchMeta(req.Meta)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("failed to create research: %w", err)
	}

	if req.StrategyName != "" {
		_, err = tx.ResearchStrategy.Create().
			SetResearchID(rec.ID).
			SetStrategyName(req.StrategyName).
			SetCreatedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to record strategy: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit research creation: %w", err)
	}

	return rec, nil
}

// GetResearch retrieves a record by ID with optional edge loading.
func (s *ResearchService) GetResearch(ctx context.Context, researchID int, withEdges bool) (*ent.ResearchRecord, error) {
	query := s.client.ResearchRecord.Query().Where(researchrecord.IDEQ(researchID))

	if withEdges {
		query = query.
			WithResources().
			WithStrategy()
	}

	rec, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get research: %w", err)
	}

	return rec, nil
}

// ListResearch lists records with filtering and pagination, newest first.
func (s *ResearchService) ListResearch(ctx context.Context, filters models.ResearchFilters) (*models.ResearchListResponse, error) {
	query := s.client.ResearchRecord.Query()

	if filters.Status != "" {
		query = query.Where(researchrecord.StatusEQ(researchrecord.Status(filters.Status)))
	}
	if filters.Mode != "" {
		query = query.Where(researchrecord.ModeEQ(researchrecord.Mode(filters.Mode)))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count researches: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	records, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(researchrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list researches: %w", err)
	}

	return &models.ResearchListResponse{
		Researches: records,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// AppendProgress updates the progress percentage and appends an entry
// to the progress_log column. Progress never decreases.
func (s *ResearchService) AppendProgress(httpCtx context.Context, researchID int, entry models.ProgressEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := s.client.ResearchRecord.Get(ctx, researchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load research for progress update: %w", err)
	}

	update := rec.Update().
		SetProgressLog(append(rec.ProgressLog, entryToMap(entry)))
	if entry.Progress != nil && *entry.Progress > rec.Progress {
		update = update.SetProgress(*entry.Progress)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append progress: %w", err)
	}
	return nil
}

// FinalizeResearch moves a record to a terminal status, stamping
// completed_at, duration_seconds, and optionally report_path and
// metadata additions.
func (s *ResearchService) FinalizeResearch(httpCtx context.Context, researchID int, status models.ResearchStatus, progress int, reportPath string, metaAdditions map[string]any) error {
	if !status.Terminal() {
		return NewValidationError("status", fmt.Sprintf("%q is not a terminal status", status))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rec, err := s.client.ResearchRecord.Get(ctx, researchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load research for finalize: %w", err)
	}

	now := time.Now()
	update := rec.Update().
		SetStatus(researchrecord.Status(status)).
		SetProgress(progress).
		SetCompletedAt(now).
		SetDurationSeconds(now.Sub(rec.CreatedAt).Seconds())
	if reportPath != "" {
		update = update.SetReportPath(reportPath)
	}
	if len(metaAdditions) > 0 {
		meta := rec.ResearchMeta
		if meta == nil {
			meta = make(map[string]interface{}, len(metaAdditions))
		}
		for k, v := range metaAdditions {
			meta[k] = v
		}
		update = update.SetResearchMeta(meta)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to finalize research: %w", err)
	}
	return nil
}

// DeleteResearch removes a record and, via FK cascade, its logs,
// resources, strategy, usage, and events. Running researches are
// protected.
func (s *ResearchService) DeleteResearch(ctx context.Context, researchID int) error {
	rec, err := s.GetResearch(ctx, researchID, false)
	if err != nil {
		return err
	}
	if rec.Status == researchrecord.StatusInProgress {
		return ErrResearchActive
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.ResearchRecord.DeleteOneID(researchID).Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete research: %w", err)
	}
	return nil
}

// SuspendStale marks in_progress rows without a live worker in this
// process as suspended. Called before starting a new research and at
// startup; a crashed pod leaves such rows behind.
func (s *ResearchService) SuspendStale(ctx context.Context, isActive func(researchID int) bool) (int, error) {
	stale, err := s.client.ResearchRecord.Query().
		Where(researchrecord.StatusEQ(researchrecord.StatusInProgress)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query in-progress researches: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	suspended := 0
	for _, rec := range stale {
		if isActive != nil && isActive(rec.ID) {
			continue
		}
		err := rec.Update().
			SetStatus(researchrecord.StatusSuspended).
			SetCompletedAt(time.Now()).
			Exec(writeCtx)
		if err != nil {
			return suspended, fmt.Errorf("failed to suspend stale research %d: %w", rec.ID, err)
		}
		suspended++
	}
	return suspended, nil
}

// PurgeOldResearches deletes finished records whose completion is older
// than the retention window. Logs, resources, strategy, and usage rows
// go with them via FK cascade. In-progress rows are never touched.
func (s *ResearchService) PurgeOldResearches(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.ResearchRecord.Delete().
		Where(
			researchrecord.StatusNEQ(researchrecord.StatusInProgress),
			researchrecord.CompletedAtLT(cutoff),
		).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge old researches: %w", err)
	}
	return count, nil
}

// GetStrategyName returns the recorded strategy for a research, or ""
// when none was recorded.
func (s *ResearchService) GetStrategyName(ctx context.Context, researchID int) (string, error) {
	row, err := s.client.ResearchStrategy.Query().
		Where(researchstrategy.ResearchIDEQ(researchID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get research strategy: %w", err)
	}
	return row.StrategyName, nil
}

// SearchHistory performs full-text search over past research queries.
func (s *ResearchService) SearchHistory(ctx context.Context, query string, limit int) ([]*ent.ResearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	records, err := s.client.ResearchRecord.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP("to_tsvector('english', query) @@ plainto_tsquery($1)", query))
		}).
		Limit(limit).
		Order(ent.Desc(researchrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search research history: %w", err)
	}

	return records, nil
}

// entryToMap converts a ProgressEntry to the map shape stored in the
// progress_log JSON column.
func entryToMap(entry models.ProgressEntry) map[string]interface{} {
	raw, err := json.Marshal(entry)
	if err != nil {
		return map[string]interface{}{"message": entry.Message}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]interface{}{"message": entry.Message}
	}
	return m
}
