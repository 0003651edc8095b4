package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
)

type sessionResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// AuthMiddleware resolves the session token on every operation not marked
// public and stores the owner identity in the request context. Requests
// without a valid session are rejected before the handler runs.
func AuthMiddleware(api huma.API, sessions sessionResolver) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if op := ctx.Operation(); op != nil {
			if public, ok := op.Metadata["public"].(bool); ok && public {
				next(ctx)
				return
			}
		}

		token := sessionToken(ctx)
		if token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing session token")
			return
		}

		userID, err := sessions.Resolve(ctx.Context(), token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	}
}

func sessionToken(ctx huma.Context) string {
	if token, ok := strings.CutPrefix(ctx.Header("Authorization"), "Bearer "); ok {
		return token
	}
	if cookie, err := huma.ReadCookie(ctx, "session_token"); err == nil {
		return cookie.Value
	}
	return ""
}
