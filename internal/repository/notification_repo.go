package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"thermal_sentinel/internal/models"

	"github.com/google/uuid"
)

type NotificationSQLite struct {
	db *sql.DB
}

func NewNotificationSQLite(db *sql.DB) *NotificationSQLite { return &NotificationSQLite{db: db} }

const (
	insertNotificationSQL = `
		INSERT INTO notification_events (id, occurred_at, phase, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`
	selectNotificationsSQL = `SELECT id, occurred_at, phase, message, meta FROM notification_events`

	sqliteTimestampLayout = "2006-01-02 15:04:05"
)

// Append inserts a transition. Empty EventID and zero OccurredAt are filled in.
func (r *NotificationSQLite) Append(ctx context.Context, e models.NotificationEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var meta sql.NullString
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			meta = sql.NullString{String: string(b), Valid: true}
		}
	}

	_, err := r.db.ExecContext(ctx, insertNotificationSQL,
		e.EventID,
		e.OccurredAt.Format(sqliteTimestampLayout),
		strings.ToUpper(strings.TrimSpace(string(e.Phase))),
		e.Message,
		meta,
	)
	if err != nil {
		return fmt.Errorf("insert notification event: %w", err)
	}
	return nil
}

// List returns transitions in [from, to] (zero bounds are open), optionally
// restricted to one phase, oldest first.
func (r *NotificationSQLite) List(ctx context.Context, from, to time.Time, phase string) ([]models.NotificationEvent, error) {
	var (
		conds []string
		args  []any
	)

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format(sqliteTimestampLayout))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format(sqliteTimestampLayout))
	}
	if phase = strings.ToUpper(strings.TrimSpace(phase)); phase != "" {
		conds = append(conds, "phase = ?")
		args = append(args, phase)
	}

	q := selectNotificationsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query notification events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.NotificationEvent, 0, 64)
	for rows.Next() {
		var (
			ev      models.NotificationEvent
			phaseDB string
			meta    sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ev.OccurredAt, &phaseDB, &ev.Message, &meta); err != nil {
			return nil, fmt.Errorf("scan notification event: %w", err)
		}
		ev.Phase = models.NotificationPhase(phaseDB)
		ev.OccurredAt = ev.OccurredAt.UTC()

		if meta.Valid && meta.String != "" {
			var v any
			if err := json.Unmarshal([]byte(meta.String), &v); err == nil {
				ev.Metadata = v
			} else {
				// keep raw if malformed
				ev.Metadata = meta.String
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification events: %w", err)
	}
	return out, nil
}
