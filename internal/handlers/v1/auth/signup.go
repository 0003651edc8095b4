package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
)

type signupService interface {
	Signup(ctx context.Context, email, password string) (uuid.UUID, error)
}

// SignupBody is the request body for registering a new user.
type SignupBody struct {
	Email           string `json:"email" required:"true" doc:"Email address, unique across users"`
	Password        string `json:"password" required:"true" doc:"At least 8 characters with a letter and a number"`
	ConfirmPassword string `json:"confirmPassword,omitempty" doc:"Optional confirmation; must match password when present"`
}

// SignupInput is the Huma input for signup.
type SignupInput struct {
	Body SignupBody
}

// SignupResponse is the response body for a successful signup.
type SignupResponse struct {
	ID string `json:"id" doc:"New user UUID"`
}

// SignupOutput is the Huma output for signup.
type SignupOutput struct {
	Body SignupResponse
}

// SignupHandler handles POST /v1/auth/signup.
type SignupHandler struct {
	Service signupService
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(svc signupService) *SignupHandler {
	return &SignupHandler{Service: svc}
}

// Register registers the signup endpoint with the Huma API.
func (h *SignupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "signup",
		Method:        http.MethodPost,
		Path:          "/v1/auth/signup",
		Summary:       "Sign up",
		Description:   "Registers a new user.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
		Metadata:      map[string]any{"public": true},
	}, h.handle)
}

func (h *SignupHandler) handle(ctx context.Context, input *SignupInput) (*SignupOutput, error) {
	var (
		cmd       command.SignupCommand
		fieldErrs command.FieldErrors
	)
	if input.Body.ConfirmPassword != "" {
		cmd, fieldErrs = command.ParseSignupConfirm(input.Body.Email, input.Body.Password, input.Body.ConfirmPassword)
	} else {
		cmd, fieldErrs = command.ParseSignup(input.Body.Email, input.Body.Password)
	}
	if len(fieldErrs) > 0 {
		return nil, httperror.FromFieldErrors(fieldErrs)
	}

	id, err := h.Service.Signup(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to sign up")
	}

	return &SignupOutput{Body: SignupResponse{ID: id.String()}}, nil
}
