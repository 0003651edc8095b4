// Package auth carries the resolved owner identity through request contexts.
// Handlers trust the identity placed here by the session middleware and
// never authenticate directly.
package auth

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type contextKey struct{}

// WithUserID stores the resolved owner identity in the context.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID retrieves the resolved owner identity from the context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return userID, ok
}
