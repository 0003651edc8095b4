package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type resetService interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ResetPasswordBody is the request body for completing a password reset.
type ResetPasswordBody struct {
	Token    string `json:"token" required:"true" doc:"Recovery token from the recovery link"`
	Password string `json:"password" required:"true" doc:"New password, at least 8 characters with a letter and a number"`
}

// ResetPasswordInput is the Huma input for a password reset.
type ResetPasswordInput struct {
	Body ResetPasswordBody
}

// ResetPasswordOutput is the Huma output for a password reset.
type ResetPasswordOutput struct {
	Status int
}

// ResetPasswordHandler handles POST /v1/auth/reset.
type ResetPasswordHandler struct {
	Service resetService
}

// NewResetPasswordHandler creates a new ResetPasswordHandler.
func NewResetPasswordHandler(svc resetService) *ResetPasswordHandler {
	return &ResetPasswordHandler{Service: svc}
}

// Register registers the password reset endpoint with the Huma API.
func (h *ResetPasswordHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "reset-password",
		Method:        http.MethodPost,
		Path:          "/v1/auth/reset",
		Summary:       "Reset password",
		Description:   "Consumes a recovery token, sets a new password, and revokes existing sessions.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
		Metadata:      map[string]any{"public": true},
	}, h.handle)
}

func (h *ResetPasswordHandler) handle(ctx context.Context, input *ResetPasswordInput) (*ResetPasswordOutput, error) {
	fieldErrs := command.CheckPassword(input.Body.Password)
	if len(fieldErrs) > 0 {
		return nil, httperror.FromFieldErrors(fieldErrs)
	}

	if err := h.Service.ResetPassword(ctx, input.Body.Token, input.Body.Password); err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return nil, huma.Error401Unauthorized("invalid or expired recovery token")
		}
		return nil, httperror.FromStorage(ctx, err, "failed to reset password")
	}

	return &ResetPasswordOutput{Status: http.StatusNoContent}, nil
}
