package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Account represents an account record.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// IAccountTable defines the interface for account storage operations.
type IAccountTable interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Account, error)
	Insert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Account, error)
}
