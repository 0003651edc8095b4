package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

// DeleteTransaction removes one owned transaction.
type DeleteTransaction struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	return uuid.Nil, writer.Transactions.Delete(ctx, d.ID, d.UserID)
}
