package account

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

var _ IAccountTable = (*Table)(nil)

// Table provides access to the accounts table.
type Table struct {
	exec pgdb.Queryer
}

// NewTable creates a Table bound to the given executor (pool or tx).
func NewTable(exec pgdb.Queryer) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves one account scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, userID uuid.UUID) (*Account, error) {
	var a Account
	err := t.exec.QueryRow(ctx,
		"SELECT id, user_id, name, created_at FROM accounts WHERE id = $1 AND user_id = $2",
		id, userID,
	).Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	return &a, nil
}

// Insert creates a new account and returns its generated ID. A duplicate
// name for the same owner surfaces as pgdb.ErrConflict.
func (t *Table) Insert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		"INSERT INTO accounts (user_id, name) VALUES ($1, $2) RETURNING id",
		userID, name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, pgdb.Classify(err)
	}
	return id, nil
}

// List returns the owner's accounts ordered by name.
func (t *Table) List(ctx context.Context, userID uuid.UUID) ([]*Account, error) {
	rows, err := t.exec.Query(ctx,
		"SELECT id, user_id, name, created_at FROM accounts WHERE user_id = $1 ORDER BY name ASC, id ASC",
		userID)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	defer rows.Close()

	var result []*Account
	for rows.Next() {
		var a Account
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.CreatedAt); err != nil {
			return nil, pgdb.Classify(err)
		}
		result = append(result, &a)
	}
	return result, pgdb.Classify(rows.Err())
}
