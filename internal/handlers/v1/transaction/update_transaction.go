package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
)

// UpdateTransactionBody is the request body for a partial transaction update.
// Absent fields are left unchanged; an empty categoryId clears the category.
type UpdateTransactionBody struct {
	Amount      *string `json:"amount,omitempty" doc:"Positive dollar amount, up to two decimal places"`
	Type        *string `json:"type,omitempty" enum:"income,expense" doc:"Classification"`
	Date        *string `json:"date,omitempty" doc:"Transaction date in DD/MM/YYYY HH:MM format"`
	AccountID   *string `json:"accountId,omitempty" doc:"Account UUID"`
	CategoryID  *string `json:"categoryId,omitempty" doc:"Category UUID, empty string clears the category"`
	Description *string `json:"description,omitempty" maxLength:"255" doc:"Free-text description"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Status int
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	Operator actionProcessor
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(op actionProcessor) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{Operator: op}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPatch,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Applies a partial update to one of the authenticated owner's transactions.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("transaction not found")
	}

	cmd, fieldErrs := command.ParseTransactionUpdate(command.TransactionUpdateInput{
		Amount:      input.Body.Amount,
		Type:        input.Body.Type,
		Date:        input.Body.Date,
		AccountID:   input.Body.AccountID,
		CategoryID:  input.Body.CategoryID,
		Description: input.Body.Description,
	})
	if len(fieldErrs) > 0 {
		return nil, httperror.FromFieldErrors(fieldErrs)
	}

	if _, err := h.Operator.Process(ctx, &actions.UpdateTransaction{
		ID:              id,
		UserID:          userID,
		AccountID:       cmd.AccountID,
		CategoryID:      cmd.CategoryID,
		Type:            cmd.Type,
		AmountCents:     cmd.AmountCents,
		Description:     cmd.Description,
		TransactionDate: cmd.Date,
	}); err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{Status: http.StatusNoContent}, nil
}
