// Package pgdb holds the pieces shared by every storage table package: the
// query executor interface satisfied by both pgxpool.Pool and pgx.Tx, and the
// typed error kinds the rest of the server branches on.
package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of pgx execution methods the table packages need.
// Both *pgxpool.Pool and pgx.Tx satisfy it.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict means a uniqueness constraint rejected the write.
	ErrConflict = errors.New("record already exists")
	// ErrForeignKey means a referenced entity is missing.
	ErrForeignKey = errors.New("referenced record missing")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// Classify maps a driver error onto the typed kinds above, keeping the
// original error in the chain. Constraint failures are detected from the
// Postgres error code, never from the message text.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return errors.Join(ErrConflict, err)
		case foreignKeyViolationCode:
			return errors.Join(ErrForeignKey, err)
		}
	}

	return err
}
