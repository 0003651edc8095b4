package user

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents a user record.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// IUserTable defines the interface for user storage operations.
type IUserTable interface {
	Insert(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	InsertRecoveryToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ConsumeRecoveryToken(ctx context.Context, tokenHash string, now time.Time) (uuid.UUID, error)
}
