package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sznajderm/budget-manager-sub002/internal/auth"
	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

// mockOperator is a mock for actionProcessor.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) (uuid.UUID, error) {
	args := m.Called(ctx, action)
	if args.Get(0) == nil {
		return uuid.Nil, args.Error(1)
	}
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// newAuthedAPI builds a humatest API whose requests carry the given owner
// identity, mimicking the session middleware.
func newAuthedAPI(t *testing.T, userID uuid.UUID, register func(api huma.API)) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, auth.WithUserID(ctx.Context(), userID)))
	})
	register(api)
	return api
}

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			create.UserID == userID &&
			create.AccountID == accountID &&
			!create.CategoryID.Valid &&
			create.Type == service.TypeExpense &&
			create.AmountCents == 1550 &&
			create.Description == "Coffee" &&
			create.TransactionDate.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	})).Return(txID, nil)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "15.50",
		Type:        "expense",
		Date:        "15/01/2025 10:30",
		AccountID:   accountID.String(),
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_WithCategory_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok && create.CategoryID.Valid && create.CategoryID.UUID == categoryID
	})).Return(txID, nil)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "1500",
		Type:        "income",
		Date:        "01/06/2025 09:00",
		AccountID:   accountID.String(),
		CategoryID:  categoryID.String(),
		Description: "Salary",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_InvalidFields(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockOp := new(mockOperator)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "-12.50",
		Type:        "expense",
		Date:        "2025-01-15",
		AccountID:   "not-a-uuid",
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_TooManyDecimalPlaces(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockOp := new(mockOperator)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10.999",
		Type:        "expense",
		Date:        "15/01/2025 10:30",
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(nil, pgdb.ErrNotFound)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10.00",
		Type:        "expense",
		Date:        "15/01/2025 10:30",
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_OperatorError(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewCreateTransactionHandler(mockOp).Register(api)
	})

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10.00",
		Type:        "expense",
		Date:        "15/01/2025 10:30",
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_Unauthenticated(t *testing.T) {
	mockOp := new(mockOperator)

	_, api := humatest.New(t)
	NewCreateTransactionHandler(mockOp).Register(api)

	resp := api.Post("/v1/transaction", CreateTransactionBody{
		Amount:      "10.00",
		Type:        "expense",
		Date:        "15/01/2025 10:30",
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
