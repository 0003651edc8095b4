package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

// CreateAccount inserts a new account for the owner.
type CreateAccount struct {
	UserID uuid.UUID
	Name   string
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	return writer.Accounts.Insert(ctx, c.UserID, c.Name)
}
