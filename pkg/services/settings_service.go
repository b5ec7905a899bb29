package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ujesh-sakariya/local-deep-research-sub002/ent"
	"github.com/ujesh-sakariya/local-deep-research-sub002/ent/setting"
)

// SettingsService stores runtime-adjustable settings as key/value rows.
// Values are wrapped in {"v": ...} so scalars survive the JSON column.
type SettingsService struct {
	client *ent.Client
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(client *ent.Client) *SettingsService {
	return &SettingsService{client: client}
}

// Set upserts a setting value.
func (s *SettingsService) Set(httpCtx context.Context, key string, value any, category string) error {
	if key == "" {
		return NewValidationError("key", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wrapped := map[string]any{"v": value}

	existing, err := s.client.Setting.Query().
		Where(setting.KeyEQ(key)).
		Only(ctx)
	switch {
	case err == nil:
		update := existing.Update().SetValue(wrapped).SetUpdatedAt(time.Now())
		if category != "" {
			update = update.SetCategory(category)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update setting %s: %w", key, err)
		}
		return nil
	case ent.IsNotFound(err):
		create := s.client.Setting.Create().
			SetKey(key).
			SetValue(wrapped).
			SetUpdatedAt(time.Now())
		if category != "" {
			create = create.SetCategory(category)
		}
		if err := create.Exec(ctx); err != nil {
			return fmt.Errorf("failed to create setting %s: %w", key, err)
		}
		return nil
	default:
		return fmt.Errorf("failed to query setting %s: %w", key, err)
	}
}

// Get returns the raw value for a key, or (nil, false) when absent.
func (s *SettingsService) Get(ctx context.Context, key string) (any, bool, error) {
	row, err := s.client.Setting.Query().
		Where(setting.KeyEQ(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return row.Value["v"], true, nil
}

// GetString returns a string setting, or def when absent or mistyped.
func (s *SettingsService) GetString(ctx context.Context, key, def string) string {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	if str, ok := v.(string); ok {
		return str
	}
	return def
}

// GetInt returns an integer setting, or def when absent or mistyped.
// JSON numbers decode as float64.
func (s *SettingsService) GetInt(ctx context.Context, key string, def int) int {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return def
}

// GetBool returns a boolean setting, or def when absent or mistyped.
func (s *SettingsService) GetBool(ctx context.Context, key string, def bool) bool {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// List returns all settings, optionally filtered by category, keyed by
// setting key with unwrapped values.
func (s *SettingsService) List(ctx context.Context, category string) (map[string]any, error) {
	query := s.client.Setting.Query()
	if category != "" {
		query = query.Where(setting.CategoryEQ(category))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	out := make(map[string]any, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value["v"]
	}
	return out, nil
}

// Delete removes a setting. Missing keys are not an error.
func (s *SettingsService) Delete(ctx context.Context, key string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.client.Setting.Delete().
		Where(setting.KeyEQ(key)).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
