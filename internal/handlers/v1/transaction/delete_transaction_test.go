package transaction

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sznajderm/budget-manager-sub002/internal/operator/actions"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		del, ok := a.(*actions.DeleteTransaction)
		return ok && del.ID == txID && del.UserID == userID
	})).Return(uuid.Nil, nil)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewDeleteTransactionHandler(mockOp).Register(api)
	})

	resp := api.Delete("/v1/transaction/" + txID.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_MalformedID(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	mockOp := new(mockOperator)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewDeleteTransactionHandler(mockOp).Register(api)
	})

	resp := api.Delete("/v1/transaction/not-a-uuid")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockOp := new(mockOperator)
	mockOp.On("Process", mock.Anything, mock.Anything).Return(nil, pgdb.ErrNotFound)

	api := newAuthedAPI(t, userID, func(api huma.API) {
		NewDeleteTransactionHandler(mockOp).Register(api)
	})

	resp := api.Delete("/v1/transaction/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockOp.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_Unauthenticated(t *testing.T) {
	mockOp := new(mockOperator)

	_, api := humatest.New(t)
	NewDeleteTransactionHandler(mockOp).Register(api)

	resp := api.Delete("/v1/transaction/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
