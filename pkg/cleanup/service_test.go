package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/models"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
	testdb "github.com/ujesh-sakariya/local-deep-research-sub002/test/database"
)

func TestRunAllEnforcesRetention(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	researchService := services.NewResearchService(client.Client)
	eventService := services.NewEventService(client.Client)

	// One research past the retention window, one fresh.
	old, err := researchService.CreateResearch(ctx, models.CreateResearchRequest{Query: "expired research"})
	require.NoError(t, err)
	require.NoError(t, researchService.FinalizeResearch(ctx, old.ID, models.StatusCompleted, 100, "", nil))
	require.NoError(t, client.ResearchRecord.UpdateOneID(old.ID).
		SetCompletedAt(time.Now().UTC().AddDate(0, 0, -31)).
		Exec(ctx))

	fresh, err := researchService.CreateResearch(ctx, models.CreateResearchRequest{Query: "fresh research"})
	require.NoError(t, err)
	require.NoError(t, researchService.FinalizeResearch(ctx, fresh.ID, models.StatusCompleted, 100, "", nil))

	// One stale event and one recent event.
	_, err = client.Event.Create().
		SetResearchID(old.ID).
		SetChannel("research_progress_1").
		SetPayload(map[string]any{"message": "stale"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetResearchID(fresh.ID).
		SetChannel("research_progress_2").
		SetPayload(map[string]any{"message": "recent"}).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(&config.RetentionConfig{
		ResearchRetentionDays: 30,
		EventTTL:              time.Hour,
		CleanupInterval:       time.Hour,
	}, researchService, eventService)
	svc.runAll(ctx)

	_, err = researchService.GetResearch(ctx, old.ID, false)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = researchService.GetResearch(ctx, fresh.ID, false)
	assert.NoError(t, err)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestStartStopIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)

	svc := NewService(&config.RetentionConfig{
		ResearchRetentionDays: 30,
		EventTTL:              time.Hour,
		CleanupInterval:       time.Hour,
	}, services.NewResearchService(client.Client), services.NewEventService(client.Client))

	svc.Start(context.Background())
	svc.Start(context.Background()) // second call is a no-op
	svc.Stop()
	svc.Stop() // stopping twice must not block or panic
}

func TestRetentionDisabledKeepsEverything(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	researchService := services.NewResearchService(client.Client)
	eventService := services.NewEventService(client.Client)

	rec, err := researchService.CreateResearch(ctx, models.CreateResearchRequest{Query: "kept forever"})
	require.NoError(t, err)
	require.NoError(t, researchService.FinalizeResearch(ctx, rec.ID, models.StatusCompleted, 100, "", nil))
	require.NoError(t, client.ResearchRecord.UpdateOneID(rec.ID).
		SetCompletedAt(time.Now().UTC().AddDate(-1, 0, 0)).
		Exec(ctx))

	svc := NewService(&config.RetentionConfig{
		ResearchRetentionDays: 0,
		EventTTL:              24 * time.Hour,
		CleanupInterval:       time.Hour,
	}, researchService, eventService)
	svc.runAll(ctx)

	_, err = researchService.GetResearch(ctx, rec.ID, false)
	assert.NoError(t, err)
}
