package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

// CreateCategory inserts a new category for the owner.
type CreateCategory struct {
	UserID uuid.UUID
	Name   string
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	return writer.Categories.Insert(ctx, c.UserID, c.Name)
}

// DeleteCategory removes one owned category. Transactions that referenced it
// become uncategorized through the schema's ON DELETE SET NULL.
type DeleteCategory struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	return uuid.Nil, writer.Categories.Delete(ctx, d.ID, d.UserID)
}
