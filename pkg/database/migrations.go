package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search over past research queries in
// the history view.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_research_history_query_gin
		ON research_history USING gin(to_tsvector('english', query))`)
	if err != nil {
		return fmt.Errorf("failed to create query GIN index: %w", err)
	}

	return nil
}

// CreateSingleActiveIndex creates the partial unique index that backs the
// one-active-research invariant at the storage level. Stale in_progress
// rows must be suspended before a new research is inserted.
func CreateSingleActiveIndex(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS research_history_single_in_progress
		ON research_history ((status))
		WHERE status = 'in_progress'`)
	if err != nil {
		return fmt.Errorf("failed to create single-active index: %w", err)
	}

	return nil
}
