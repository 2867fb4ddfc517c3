package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"thermal_sentinel/internal/models"
)

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite {
	return &SettingsSQLite{db: db}
}

const (
	settingsRowID = 1

	upsertSettingsSQL = `
		INSERT INTO settings (id, remote, ai_api_key, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			remote=excluded.remote,
			ai_api_key=excluded.ai_api_key,
			updated_at=excluded.updated_at
	`

	selectSettingsSQL = `
		SELECT id, remote, ai_api_key, updated_at
		FROM settings WHERE id=?
	`
)

// Save upserts the settings row (id always 1); UpdatedAt is stored as UTC.
func (r *SettingsSQLite) Save(ctx context.Context, s models.Settings) error {
	remote, err := json.Marshal(s.Remote)
	if err != nil {
		return fmt.Errorf("marshal remote config: %w", err)
	}

	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	var key sql.NullString
	if s.AIAPIKey != "" {
		key = sql.NullString{String: s.AIAPIKey, Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, upsertSettingsSQL, settingsRowID, string(remote), key, ts); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// Load fetches the settings row. A missing row yields the zero value.
func (r *SettingsSQLite) Load(ctx context.Context) (models.Settings, error) {
	row := r.db.QueryRowContext(ctx, selectSettingsSQL, settingsRowID)

	var (
		s      models.Settings
		remote string
		key    sql.NullString
	)
	if err := row.Scan(&s.ID, &remote, &key, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Settings{}, nil
		}
		return models.Settings{}, fmt.Errorf("select settings: %w", err)
	}
	if err := json.Unmarshal([]byte(remote), &s.Remote); err != nil {
		return models.Settings{}, fmt.Errorf("unmarshal remote config: %w", err)
	}
	s.AIAPIKey = key.String
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
