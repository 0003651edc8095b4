package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/handlers/v1/httperror"
	"github.com/sznajderm/budget-manager-sub002/internal/logging"
	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	Amount      string `json:"amount" required:"true" doc:"Positive dollar amount, up to two decimal places"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"Classification"`
	Date        string `json:"date" required:"true" doc:"Transaction date in DD/MM/YYYY HH:MM format"`
	AccountID   string `json:"accountId" required:"true" doc:"Account UUID"`
	CategoryID  string `json:"categoryId,omitempty" doc:"Category UUID, optional"`
	Description string `json:"description" required:"true" maxLength:"255" doc:"Free-text description"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for a created transaction.
type CreateTransactionResponse struct {
	ID string `json:"id" doc:"Transaction UUID"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction for the authenticated owner.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthenticated")
	}

	cmd, fieldErrs := command.ParseTransactionCreate(command.TransactionCreateInput{
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

	id, err := h.Operator.Process(ctx, &actions.CreateTransaction{
		UserID:          userID,
		AccountID:       cmd.AccountID,
		CategoryID:      cmd.CategoryID,
		Type:            cmd.Type,
		AmountCents:     cmd.AmountCents,
		Description:     cmd.Description,
		TransactionDate: cmd.Date,
	})
	if err != nil {
		return nil, httperror.FromStorage(ctx, err, "failed to create transaction")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", id.String())
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{ID: id.String()}}, nil
}
