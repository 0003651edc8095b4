package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

var _ IUserTable = (*Table)(nil)

// Table provides access to the users and recovery_tokens tables.
type Table struct {
	exec pgdb.Queryer
}

// NewTable creates a Table bound to the given executor (pool or tx).
func NewTable(exec pgdb.Queryer) *Table {
	return &Table{exec: exec}
}

// Insert creates a new user. A duplicate email surfaces as pgdb.ErrConflict.
func (t *Table) Insert(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		"INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id",
		email, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, pgdb.Classify(err)
	}
	return id, nil
}

// FindByEmail retrieves a user by email address.
func (t *Table) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := t.exec.QueryRow(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	return &u, nil
}

// FindByID retrieves a user by primary key.
func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := t.exec.QueryRow(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	return &u, nil
}

// UpdatePassword replaces a user's password hash.
func (t *Table) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := t.exec.Exec(ctx,
		"UPDATE users SET password_hash = $1 WHERE id = $2", passwordHash, id)
	if err != nil {
		return pgdb.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return pgdb.ErrNotFound
	}
	return nil
}

// InsertRecoveryToken stores a hashed one-time password recovery token.
func (t *Table) InsertRecoveryToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	_, err := t.exec.Exec(ctx,
		"INSERT INTO recovery_tokens (token_hash, user_id, expires_at) VALUES ($1, $2, $3)",
		tokenHash, userID, expiresAt)
	return pgdb.Classify(err)
}

// ConsumeRecoveryToken deletes an unexpired recovery token and returns the
// user it belongs to. Expired or unknown tokens yield pgdb.ErrNotFound.
func (t *Table) ConsumeRecoveryToken(ctx context.Context, tokenHash string, now time.Time) (uuid.UUID, error) {
	var userID uuid.UUID
	err := t.exec.QueryRow(ctx,
		"DELETE FROM recovery_tokens WHERE token_hash = $1 AND expires_at > $2 RETURNING user_id",
		tokenHash, now,
	).Scan(&userID)
	if err != nil {
		return uuid.Nil, pgdb.Classify(err)
	}
	return userID, nil
}
