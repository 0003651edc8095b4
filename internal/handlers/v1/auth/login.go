package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type loginService interface {
	Login(ctx context.Context, email, password string) (*service.SessionToken, error)
}

// LoginBody is the request body for logging in.
type LoginBody struct {
	Email    string `json:"email" required:"true" doc:"Email address"`
	Password string `json:"password" required:"true" doc:"Password"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token     string `json:"token" doc:"Opaque session token, also set as a cookie"`
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 session expiry"`
}

// LoginOutput is the Huma output for login. The session token is returned
// in the body and mirrored in an HttpOnly cookie.
type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LoginResponse
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	Service loginService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc loginService) *LoginHandler {
	return &LoginHandler{Service: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Exchanges credentials for a session token.",
		Tags:        []string{"Auth"},
		Metadata:    map[string]any{"public": true},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	cmd, fieldErrs := command.ParseLogin(input.Body.Email, input.Body.Password)
	if len(fieldErrs) > 0 {
		return nil, httperror.FromFieldErrors(fieldErrs)
	}

	session, err := h.Service.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.Error401Unauthorized("invalid email or password")
		}
		return nil, httperror.FromStorage(ctx, err, "failed to log in")
	}

	return &LoginOutput{
		SetCookie: http.Cookie{
			Name:     sessionCookieName,
			Value:    session.Token,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		Body: LoginResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt.UTC().Format(time.RFC3339),
		},
	}, nil
}
