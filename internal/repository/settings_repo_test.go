package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"thermal_sentinel/internal/models"
	"thermal_sentinel/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSettingsSQLite_Save_SetsUTCWhenTimeZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSettingsSQLite(db)

	s := models.Settings{
		Remote:   models.RemoteConfig{MaxTempTrigger: 60, ScanWaitTimeSec: 5, SystemEnabled: true, PanStepDegrees: 0.5, AlertEmail: "ops@example.com"},
		AIAPIKey: "k-123",
	}

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
		WithArgs(
			1,
			`{"max_temp_trigger":60,"scan_wait_time_sec":5,"system_enabled":true,"pan_step_degrees":0.5,"alert_email":"ops@example.com"}`,
			"k-123",
			isUTCRecent,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsSQLite_Save_EmptyKeyStoredAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSettingsSQLite(db)
	loc := time.FixedZone("UTC-3", -3*3600)
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, loc)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
		WithArgs(1, sqlmock.AnyArg(), nil, at.UTC()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Save(context.Background(), models.Settings{UpdatedAt: at}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSettingsSQLite_Save_ExecErrorIsWrapped(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSettingsSQLite(db)
	down := errors.New("db down")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).WillReturnError(down)

	if err := repo.Save(context.Background(), models.Settings{}); !errors.Is(err, down) {
		t.Fatalf("Save() expected wrapped db error, got %v", err)
	}
}

func TestSettingsSQLite_Load(t *testing.T) {
	cols := []string{"id", "remote", "ai_api_key", "updated_at"}
	nonUTC := time.Date(2024, 2, 1, 8, 30, 0, 0, time.FixedZone("EST", -5*3600))

	tests := []struct {
		name    string
		expect  func(m sqlmock.Sqlmock)
		wantErr bool
		check   func(t *testing.T, got models.Settings)
	}{
		{
			name: "no rows returns zero value",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT id, remote, ai_api_key, updated_at")).
					WithArgs(1).
					WillReturnError(sql.ErrNoRows)
			},
			check: func(t *testing.T, got models.Settings) {
				if got.ID != 0 || got.AIAPIKey != "" {
					t.Fatalf("expected zero settings, got %+v", got)
				}
			},
		},
		{
			name: "happy path unmarshals and converts to UTC",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT id, remote, ai_api_key, updated_at")).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows(cols).AddRow(1, `{"max_temp_trigger":72.5,"alert_email":"a@b.c"}`, "secret", nonUTC))
			},
			check: func(t *testing.T, got models.Settings) {
				if got.ID != 1 || got.Remote.MaxTempTrigger != 72.5 || got.Remote.AlertEmail != "a@b.c" || got.AIAPIKey != "secret" {
					t.Fatalf("unexpected settings: %+v", got)
				}
				if got.UpdatedAt.Location() != time.UTC || !got.UpdatedAt.Equal(nonUTC) {
					t.Fatalf("UpdatedAt = %v", got.UpdatedAt)
				}
			},
		},
		{
			name: "null key becomes empty string",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT id, remote, ai_api_key, updated_at")).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows(cols).AddRow(1, `{}`, nil, nonUTC))
			},
			check: func(t *testing.T, got models.Settings) {
				if got.AIAPIKey != "" {
					t.Fatalf("AIAPIKey = %q", got.AIAPIKey)
				}
			},
		},
		{
			name: "invalid remote JSON is an error",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta("SELECT id, remote, ai_api_key, updated_at")).
					WithArgs(1).
					WillReturnRows(sqlmock.NewRows(cols).AddRow(1, `[not json`, nil, nonUTC))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New(): %v", err)
			}
			defer func() { _ = db.Close() }()

			tt.expect(mock)
			got, err := repository.NewSettingsSQLite(db).Load(context.Background())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			tt.check(t, got)
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}
