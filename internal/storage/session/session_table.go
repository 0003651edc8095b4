package session

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

var _ ISessionTable = (*Table)(nil)

// Table provides access to the sessions table.
type Table struct {
	exec pgdb.Queryer
}

// NewTable creates a Table bound to the given executor (pool or tx).
func NewTable(exec pgdb.Queryer) *Table {
	return &Table{exec: exec}
}

// Insert stores a new session.
func (t *Table) Insert(ctx context.Context, tokenHash string, userID uuid.UUID, expiresAt time.Time) error {
	_, err := t.exec.Exec(ctx,
		"INSERT INTO sessions (token_hash, user_id, expires_at) VALUES ($1, $2, $3)",
		tokenHash, userID, expiresAt)
	return pgdb.Classify(err)
}

// FindByTokenHash retrieves a session by its hashed token.
func (t *Table) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	var s Session
	err := t.exec.QueryRow(ctx,
		"SELECT token_hash, user_id, expires_at FROM sessions WHERE token_hash = $1",
		tokenHash,
	).Scan(&s.TokenHash, &s.UserID, &s.ExpiresAt)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	return &s, nil
}

// UpdateExpiry extends a session's lifetime.
func (t *Table) UpdateExpiry(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	_, err := t.exec.Exec(ctx,
		"UPDATE sessions SET expires_at = $1 WHERE token_hash = $2", expiresAt, tokenHash)
	return pgdb.Classify(err)
}

// DeleteByTokenHash removes one session.
func (t *Table) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	_, err := t.exec.Exec(ctx,
		"DELETE FROM sessions WHERE token_hash = $1", tokenHash)
	return pgdb.Classify(err)
}

// DeleteByUserID removes every session belonging to one user.
func (t *Table) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := t.exec.Exec(ctx,
		"DELETE FROM sessions WHERE user_id = $1", userID)
	return pgdb.Classify(err)
}
