// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/config"
	"github.com/ujesh-sakariya/local-deep-research-sub002/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes finished research records past the retention window
//     (logs, resources, strategy, and usage rows cascade)
//   - Removes orphaned Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config          *config.RetentionConfig
	researchService *services.ResearchService
	eventService    *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	researchService *services.ResearchService,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:          cfg,
		researchService: researchService,
		eventService:    eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"research_retention_days", s.config.ResearchRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeOldResearches(ctx)
	s.cleanupOrphanedEvents(ctx)
}

func (s *Service) purgeOldResearches(_ context.Context) {
	count, err := s.researchService.PurgeOldResearches(context.Background(), s.config.ResearchRetentionDays)
	if err != nil {
		slog.Error("Retention: research purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old researches", "count", count)
	}
}

func (s *Service) cleanupOrphanedEvents(_ context.Context) {
	count, err := s.eventService.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up orphaned events", "count", count)
	}
}
