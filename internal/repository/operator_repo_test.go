package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOperatorMock(t *testing.T) (*OperatorRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewOperatorRepository(db), mock
}

func TestOperatorRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		expect  func(sqlmock.Sqlmock)
		wantID  int
		wantErr error
		errText string
	}{
		{
			name: "inserts with creation time",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertOperatorSQL)).
					WithArgs("alice", "hash", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "duplicate username",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertOperatorSQL)).
					WithArgs("alice", "hash", sqlmock.AnyArg()).
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: operators.username (2067)"))
			},
			wantErr: ErrOperatorExists,
		},
		{
			name: "driver error is wrapped",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertOperatorSQL)).
					WithArgs("alice", "hash", sqlmock.AnyArg()).
					WillReturnError(errors.New("disk I/O error"))
			},
			errText: "insert operator",
		},
		{
			name: "last insert id unavailable",
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertOperatorSQL)).
					WithArgs("alice", "hash", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			errText: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newOperatorMock(t)
			tt.expect(mock)

			id, err := repo.Create(context.Background(), "alice", "hash")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
				assert.NotErrorIs(t, err, ErrOperatorExists)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestOperatorRepository_GetByUsername(t *testing.T) {
	created := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	seen := created.Add(48 * time.Hour)
	cols := []string{"id", "username", "password_hash", "created_at", "last_sign_in_at"}

	t.Run("found with last sign-in", func(t *testing.T) {
		repo, mock := newOperatorMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOperatorByUsernameSQL)).
			WithArgs("diana").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "diana", "h", created, seen))

		op, err := repo.GetByUsername(context.Background(), "diana")
		require.NoError(t, err)
		require.NotNil(t, op)
		assert.Equal(t, 7, op.ID)
		assert.Equal(t, "h", op.PasswordHash)
		assert.Equal(t, created, op.CreatedAt)
		require.NotNil(t, op.LastSignInAt)
		assert.Equal(t, seen, *op.LastSignInAt)
	})

	t.Run("never signed in", func(t *testing.T) {
		repo, mock := newOperatorMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOperatorByUsernameSQL)).
			WithArgs("erin").
			WillReturnRows(sqlmock.NewRows(cols).AddRow(8, "erin", "h", created, nil))

		op, err := repo.GetByUsername(context.Background(), "erin")
		require.NoError(t, err)
		require.NotNil(t, op)
		assert.Nil(t, op.LastSignInAt)
	})

	t.Run("missing operator is not an error", func(t *testing.T) {
		repo, mock := newOperatorMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOperatorByUsernameSQL)).
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		op, err := repo.GetByUsername(context.Background(), "ghost")
		assert.NoError(t, err)
		assert.Nil(t, op)
	})

	t.Run("query failure", func(t *testing.T) {
		repo, mock := newOperatorMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(selectOperatorByUsernameSQL)).
			WithArgs("diana").
			WillReturnError(errors.New("database is locked"))

		op, err := repo.GetByUsername(context.Background(), "diana")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "select operator")
		assert.Nil(t, op)
	})
}

func TestOperatorRepository_TouchSignIn(t *testing.T) {
	at := time.Date(2025, 5, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	t.Run("stores UTC time", func(t *testing.T) {
		repo, mock := newOperatorMock(t)
		mock.ExpectExec(regexp.QuoteMeta(touchOperatorSignInSQL)).
			WithArgs(at.UTC(), 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.TouchSignIn(context.Background(), 7, at))
	})

	t.Run("unknown operator", func(t *testing.T) {
		repo, mock := newOperatorMock(t)
		mock.ExpectExec(regexp.QuoteMeta(touchOperatorSignInSQL)).
			WithArgs(at.UTC(), 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.TouchSignIn(context.Background(), 99, at), sql.ErrNoRows)
	})
}
