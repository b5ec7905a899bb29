package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes research events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via
// NOTIFY. Transient events are broadcast via NOTIFY only.
//
// Each public method accepts a typed payload struct from payloads.go.
// Payloads are marshaled to JSON and routed to the channel derived from
// the research ID.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// PublishProgress broadcasts a research.progress transient event
// (no DB persistence). Used for high-frequency progress updates; a
// reconnecting client recovers from persisted milestones instead.
func (p *EventPublisher) PublishProgress(ctx context.Context, payload ProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, ResearchChannel(payload.ResearchID), payloadJSON)
}

// PublishMilestone persists and broadcasts a research.progress event.
// Used for milestone progress updates that must survive reconnects
// (iteration boundaries, errors, round-ten percentages).
func (p *EventPublisher) PublishMilestone(ctx context.Context, payload ProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ProgressPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ResearchID, ResearchChannel(payload.ResearchID), payloadJSON)
}

// PublishStatus persists a research status event to the per-research
// channel and broadcasts a transient copy to the global researches
// channel. Both publishes are best-effort: if the persistent one fails,
// the transient one is still attempted. Returns the first error
// encountered (if any).
func (p *EventPublisher) PublishStatus(ctx context.Context, payload StatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.ResearchID, ResearchChannel(payload.ResearchID), payloadJSON); err != nil {
		slog.Warn("Failed to publish status to research channel",
			"research_id", payload.ResearchID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Global channel carries transient copies for the history list page.
	if err := p.notifyOnly(ctx, GlobalResearchChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish status to global channel",
			"research_id", payload.ResearchID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional and held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, researchID int, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (research_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		researchID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// pg_notify within the same transaction, held until COMMIT.
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, extracting only the routing fields the
// client needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type       string `json:"type"`
		ResearchID int    `json:"research_id"`
		DBEventID  *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":        routing.Type,
		"research_id": routing.ResearchID,
		"truncated":   true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
