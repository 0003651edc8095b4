package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
)

type recoverService interface {
	Recover(ctx context.Context, email string) (string, error)
}

// RecoverBody is the request body for requesting a password recovery token.
type RecoverBody struct {
	Email      string `json:"email" required:"true" doc:"Email address"`
	RedirectTo string `json:"redirectTo,omitempty" doc:"Optional absolute URL the recovery link should return to"`
}

// RecoverInput is the Huma input for recovery.
type RecoverInput struct {
	Body RecoverBody
}

// RecoverResponse is the response body for a recovery request. It is the
// same for known and unknown emails so accounts cannot be enumerated.
type RecoverResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// RecoverOutput is the Huma output for recovery.
type RecoverOutput struct {
	Body RecoverResponse
}

// RecoverHandler handles POST /v1/auth/recover.
type RecoverHandler struct {
	Service recoverService
	Log     *logrus.Logger
}

// NewRecoverHandler creates a new RecoverHandler.
func NewRecoverHandler(svc recoverService, log *logrus.Logger) *RecoverHandler {
	return &RecoverHandler{Service: svc, Log: log}
}

// Register registers the recovery endpoint with the Huma API.
func (h *RecoverHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recover-password",
		Method:      http.MethodPost,
		Path:        "/v1/auth/recover",
		Summary:     "Request password recovery",
		Description: "Issues a one-time password recovery token. The response is identical whether or not the email is known.",
		Tags:        []string{"Auth"},
		Metadata:    map[string]any{"public": true},
	}, h.handle)
}

func (h *RecoverHandler) handle(ctx context.Context, input *RecoverInput) (*RecoverOutput, error) {
	cmd, fieldErrs := command.ParseRecover(input.Body.Email, input.Body.RedirectTo)
	if len(fieldErrs) > 0 {
		return nil, httperror.FromFieldErrors(fieldErrs)
	}

	token, err := h.Service.Recover(ctx, cmd.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to process recovery request")
	}

	// Token delivery is out of band. Until a mailer is wired up, an issued
	// token is only recorded in the log; an operator relays it to the user,
	// who completes the flow through the reset endpoint.
	if token != "" {
		h.Log.WithFields(logrus.Fields{
			"email":      cmd.Email,
			"token":      token,
			"redirectTo": cmd.RedirectTo,
		}).Info("Auth.Recover.TokenIssued")
	}

	return &RecoverOutput{Body: RecoverResponse{
		Message: "If that email is registered, a recovery link has been sent.",
	}}, nil
}
