package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. Names are unique per owner, not
// globally; the constraint lives on (user_id, lower(name)).
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// ICategoryTable defines the interface for category storage operations.
type ICategoryTable interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Category, error)
	Insert(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
