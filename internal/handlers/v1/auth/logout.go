package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
)

type logoutService interface {
	Logout(ctx context.Context, token string) error
}

// LogoutInput is the Huma input for logout. The session token comes from
// the bearer Authorization header or the session cookie.
type LogoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer session token"`
	SessionCookie string `cookie:"session_token" doc:"Session token cookie"`
}

// LogoutOutput is the Huma output for logout. The cookie is expired so
// browser clients drop the session too.
type LogoutOutput struct {
	Status    int
	SetCookie http.Cookie `header:"Set-Cookie"`
}

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct {
	Service logoutService
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(svc logoutService) *LogoutHandler {
	return &LogoutHandler{Service: svc}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/v1/auth/logout",
		Summary:       "Log out",
		Description:   "Revokes the current session token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Metadata:      map[string]any{"public": true},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	token := sessionTokenFromRequest(input.Authorization, input.SessionCookie)
	if token == "" {
		return nil, huma.Error401Unauthorized("missing session token")
	}

	if err := h.Service.Logout(ctx, token); err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to log out")
	}

	return &LogoutOutput{
		Status: http.StatusNoContent,
		SetCookie: http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
	}, nil
}
