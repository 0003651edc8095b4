package category

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

var _ ICategoryTable = (*Table)(nil)

// Table provides access to the categories table.
type Table struct {
	exec pgdb.Queryer
}

// NewTable creates a Table bound to the given executor (pool or tx).
func NewTable(exec pgdb.Queryer) *Table {
	return &Table{exec: exec}
}

// FindByID retrieves one category scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, userID uuid.UUID) (*Category, error) {
	var c Category
	err := t.exec.QueryRow(ctx,
		"SELECT id, user_id, name, created_at FROM categories WHERE id = $1 AND user_id = $2",
		id, userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	return &c, nil
}

// Insert creates a new category and returns its generated ID. A duplicate
// name for the same owner surfaces as pgdb.ErrConflict.
func (t *Table) Insert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		"INSERT INTO categories (user_id, name) VALUES ($1, $2) RETURNING id",
		userID, name,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, pgdb.Classify(err)
	}
	return id, nil
}

// List returns the owner's categories ordered by name.
func (t *Table) List(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	rows, err := t.exec.Query(ctx,
		"SELECT id, user_id, name, created_at FROM categories WHERE user_id = $1 ORDER BY name ASC, id ASC",
		userID)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	defer rows.Close()

	var result []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt); err != nil {
			return nil, pgdb.Classify(err)
		}
		result = append(result, &c)
	}
	return result, pgdb.Classify(rows.Err())
}

// Delete removes one owned category. Transactions referencing it fall back
// to no category via the ON DELETE SET NULL constraint.
func (t *Table) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := t.exec.Exec(ctx,
		"DELETE FROM categories WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return pgdb.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return pgdb.ErrNotFound
	}
	return nil
}
