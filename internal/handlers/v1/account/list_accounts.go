package account

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
)

type accountLister interface {
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]service.Account, error)
}

// AccountResponse is one account in the list response.
type AccountResponse struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body []AccountResponse
}

// ListAccountsHandler handles GET /v1/accounts.
type ListAccountsHandler struct {
	Service accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{Service: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/v1/accounts",
		Summary:     "List accounts",
		Description: "Lists the authenticated owner's accounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ListAccountsOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	accounts, err := h.Service.ListAccounts(ctx, userID)
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to list accounts")
	}

	body := make([]AccountResponse, len(accounts))
	for i, acct := range accounts {
		body[i] = AccountResponse{
			ID:        acct.ID.String(),
			Name:      acct.Name,
			CreatedAt: acct.CreatedAt.UTC().Format(time.RFC3339),
		}
	}

	return &ListAccountsOutput{Body: body}, nil
}
