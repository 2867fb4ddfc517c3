package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"thermal_sentinel/internal/models"
)

// ErrOperatorExists is returned by Create when the username is taken.
var ErrOperatorExists = errors.New("operator already exists")

type OperatorRepository struct {
	db *sql.DB
}

func NewOperatorRepository(db *sql.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

var _ Operators = (*OperatorRepository)(nil)

const (
	insertOperatorSQL = `INSERT INTO operators (username, password_hash, created_at) VALUES (?, ?, ?)`

	selectOperatorByUsernameSQL = `
SELECT id, username, password_hash, created_at, last_sign_in_at
FROM operators
WHERE username = ?`

	touchOperatorSignInSQL = `UPDATE operators SET last_sign_in_at = ? WHERE id = ?`
)

// Create inserts a new operator and returns its ID.
func (r *OperatorRepository) Create(ctx context.Context, username, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertOperatorSQL, username, passwordHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %q", ErrOperatorExists, username)
		}
		return 0, fmt.Errorf("insert operator %q: %w", username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for operator %q: %w", username, err)
	}
	return int(id), nil
}

// GetByUsername returns (nil, nil) if the operator does not exist.
func (r *OperatorRepository) GetByUsername(ctx context.Context, username string) (*models.Operator, error) {
	var (
		op       models.Operator
		lastSeen sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, selectOperatorByUsernameSQL, username).
		Scan(&op.ID, &op.Username, &op.PasswordHash, &op.CreatedAt, &lastSeen)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select operator %q: %w", username, err)
	}
	if lastSeen.Valid {
		t := lastSeen.Time
		op.LastSignInAt = &t
	}
	return &op, nil
}

// TouchSignIn records a successful sign-in.
func (r *OperatorRepository) TouchSignIn(ctx context.Context, id int, at time.Time) error {
	res, err := r.db.ExecContext(ctx, touchOperatorSignInSQL, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("touch operator %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for operator %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("touch operator %d: %w", id, sql.ErrNoRows)
	}
	return nil
}

// SQLite reports the constraint name in the message; the driver's typed
// error is not exposed through database/sql mocks.
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
