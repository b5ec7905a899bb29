package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/researchrecord"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	testdb "github.com/ujesh-sakariya/local-deep-research-sub002/test/database"
)

func TestCreateResearchValidation(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	_, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: ""})
	var validErr *ValidationError
	require.ErrorAs(t, err, &validErr)
	assert.Equal(t, "query", validErr.Field)

	// No row was written.
	count, err := client.ResearchRecord.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateResearchDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{
		Query:        "capital of France",
		StrategyName: "standard",
	})
	require.NoError(t, err)

	assert.Equal(t, researchrecord.ModeQuick, rec.Mode)
	assert.Equal(t, researchrecord.StatusInProgress, rec.Status)
	assert.Zero(t, rec.Progress)
	require.NotEmpty(t, rec.ProgressLog, "creation seeds the progress log")

	name, err := service.GetStrategyName(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "standard", name)
}

func TestSingleActiveResearchEnforced(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	_, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "first"})
	require.NoError(t, err)

	// The partial unique index rejects a second in_progress row.
	_, err = service.CreateResearch(ctx, models.CreateResearchRequest{Query: "second"})
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestAppendProgressIsMonotone(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "monotone"})
	require.NoError(t, err)

	require.NoError(t, service.AppendProgress(ctx, rec.ID, models.NewProgressEntry("halfway", 50, nil)))
	// A later entry with lower progress must not move the bar backwards.
	require.NoError(t, service.AppendProgress(ctx, rec.ID, models.NewProgressEntry("late lagging entry", 10, nil)))

	got, err := service.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 50, got.Progress)
	assert.Len(t, got.ProgressLog, 3, "creation entry plus two appends")
}

func TestFinalizeResearchCompleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "finalize me"})
	require.NoError(t, err)

	err = service.FinalizeResearch(ctx, rec.ID, models.StatusCompleted, 100,
		"research_outputs/finalize_me.md", map[string]any{"iterations": 2})
	require.NoError(t, err)

	got, err := service.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, researchrecord.StatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	require.NotNil(t, got.CompletedAt)
	assert.False(t, got.CompletedAt.Before(got.CreatedAt))
	require.NotNil(t, got.DurationSeconds)
	assert.GreaterOrEqual(t, *got.DurationSeconds, 0.0)
	require.NotNil(t, got.ReportPath)
	assert.Equal(t, "research_outputs/finalize_me.md", *got.ReportPath)
	assert.EqualValues(t, 2, got.ResearchMeta["iterations"])
}

func TestDeleteResearchRefusesActive(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "still running"})
	require.NoError(t, err)

	assert.ErrorIs(t, service.DeleteResearch(ctx, rec.ID), ErrResearchActive)

	require.NoError(t, service.FinalizeResearch(ctx, rec.ID, models.StatusSuspended, 30, "", nil))
	require.NoError(t, service.DeleteResearch(ctx, rec.ID))

	_, err = service.GetResearch(ctx, rec.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSuspendStaleReapsDeadWorkers(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "orphaned run"})
	require.NoError(t, err)

	// No live worker claims the row.
	suspended, err := service.SuspendStale(ctx, func(int) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, 1, suspended)

	got, err := service.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, researchrecord.StatusSuspended, got.Status)
}

func TestSuspendStaleSkipsLiveWorkers(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "live run"})
	require.NoError(t, err)

	suspended, err := service.SuspendStale(ctx, func(id int) bool { return id == rec.ID })
	require.NoError(t, err)
	assert.Zero(t, suspended)

	got, err := service.GetResearch(ctx, rec.ID, false)
	require.NoError(t, err)
	assert.Equal(t, researchrecord.StatusInProgress, got.Status)
}

func TestListResearchFilters(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	first, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "first run"})
	require.NoError(t, err)
	require.NoError(t, service.FinalizeResearch(ctx, first.ID, models.StatusCompleted, 100, "", nil))

	second, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "second run", Mode: models.ModeDetailed})
	require.NoError(t, err)
	require.NoError(t, service.FinalizeResearch(ctx, second.ID, models.StatusFailed, 40, "", nil))

	all, err := service.ListResearch(ctx, models.ResearchFilters{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalCount)

	completed, err := service.ListResearch(ctx, models.ResearchFilters{Status: models.StatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed.Researches, 1)
	assert.Equal(t, first.ID, completed.Researches[0].ID)

	detailed, err := service.ListResearch(ctx, models.ResearchFilters{Mode: models.ModeDetailed})
	require.NoError(t, err)
	require.Len(t, detailed.Researches, 1)
	assert.Equal(t, second.ID, detailed.Researches[0].ID)
}

func TestSearchHistoryFullText(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	rec, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "history of the steam engine"})
	require.NoError(t, err)
	require.NoError(t, service.FinalizeResearch(ctx, rec.ID, models.StatusCompleted, 100, "", nil))

	matches, err := service.SearchHistory(ctx, "steam", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, rec.ID, matches[0].ID)

	none, err := service.SearchHistory(ctx, "quantum", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPurgeOldResearches(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewResearchService(client.Client)
	ctx := context.Background()

	old, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "ancient run"})
	require.NoError(t, err)
	require.NoError(t, service.FinalizeResearch(ctx, old.ID, models.StatusCompleted, 100, "", nil))
	// Age the record past the retention horizon.
	err = client.ResearchRecord.UpdateOneID(old.ID).
		SetCompletedAt(time.Now().UTC().AddDate(0, 0, -400)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, err := service.CreateResearch(ctx, models.CreateResearchRequest{Query: "recent run"})
	require.NoError(t, err)
	require.NoError(t, service.FinalizeResearch(ctx, fresh.ID, models.StatusCompleted, 100, "", nil))

	purged, err := service.PurgeOldResearches(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = service.GetResearch(ctx, old.ID, false)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = service.GetResearch(ctx, fresh.ID, false)
	assert.NoError(t, err)
}
