package session

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Session represents a session row. TokenHash is the sha256 of the opaque
// token handed to the client; the raw token is never stored.
type Session struct {
	TokenHash string
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// ISessionTable defines the interface for session storage operations.
type ISessionTable interface {
	Insert(ctx context.Context, tokenHash string, userID uuid.UUID, expiresAt time.Time) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	UpdateExpiry(ctx context.Context, tokenHash string, expiresAt time.Time) error
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
