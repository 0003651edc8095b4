package account

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"100" doc:"Account name, unique per owner"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountResponse is the response body for a created account.
type CreateAccountResponse struct {
	ID string `json:"id" doc:"Account UUID"`
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body CreateAccountResponse
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator actionProcessor
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op actionProcessor) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Creates a new account for the authenticated owner. Account names are unique per owner.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	name := strings.TrimSpace(input.Body.Name)
	if name == "" {
		return nil, huma.Error422UnprocessableEntity("name must not be blank")
	}

	id, err := h.Operator.Process(ctx, &actions.CreateAccount{UserID: userID, Name: name})
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to create account")
	}

	return &CreateAccountOutput{Body: CreateAccountResponse{ID: id.String()}}, nil
}
