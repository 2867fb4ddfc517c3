package repository

import (
	"context"
	"database/sql"
	"time"

	"thermal_sentinel/internal/models"
)

// Operators stores dashboard accounts.
type Operators interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.Operator, error)
	TouchSignIn(ctx context.Context, id int, at time.Time) error
}

// SettingsRepo persists the single cached settings row.
type SettingsRepo interface {
	Save(ctx context.Context, s models.Settings) error
	Load(ctx context.Context) (models.Settings, error)
}

// NotificationRepo is the append-only log of notification transitions.
type NotificationRepo interface {
	Append(ctx context.Context, e models.NotificationEvent) error
	List(ctx context.Context, from, to time.Time, phase string) ([]models.NotificationEvent, error)
}

type Repository struct {
	Settings      SettingsRepo
	Notifications NotificationRepo
	Operators     Operators
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Settings:      NewSettingsSQLite(db),
		Notifications: NewNotificationSQLite(db),
		Operators:     NewOperatorRepository(db),
	}
}
