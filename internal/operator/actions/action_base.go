package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

// IAction is a unit of work performed inside one storage transaction.
// Perform returns the ID of a created entity, or uuid.Nil when the action
// does not create one.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error)
}
