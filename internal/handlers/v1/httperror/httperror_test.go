package httperror

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/logging"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

func newLogContext() (context.Context, *logging.LogData) {
	logData := logging.NewLogData(logrus.New())
	return logging.WithLogData(context.Background(), logData), logData
}

func TestFromStorage_NotFound(t *testing.T) {
	ctx, _ := newLogContext()

	err := FromStorage(ctx, pgdb.ErrNotFound, "transaction not found")

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, model.Status)
	assert.Equal(t, "transaction not found", model.Detail)
}

func TestFromStorage_Conflict_HidesConstraintText(t *testing.T) {
	ctx, _ := newLogContext()
	driverErr := errors.Join(pgdb.ErrConflict,
		errors.New(`duplicate key value violates unique constraint "accounts_user_id_name_unique"`))

	err := FromStorage(ctx, driverErr, "failed to create account")

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, model.Status)
	assert.Equal(t, "failed to create account", model.Detail)
	assert.Empty(t, model.Errors)
}

func TestFromStorage_UnexpectedError_GenericResponseAndLoggedServerSide(t *testing.T) {
	ctx, logData := newLogContext()
	driverErr := errors.New("failed to connect to host=10.0.0.5 user=budget database=budget")

	err := FromStorage(ctx, driverErr, "failed to create transaction")

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, model.Status)
	assert.Equal(t, "failed to create transaction", model.Detail)
	assert.Empty(t, model.Errors)

	entry := logData.Log()
	assert.Equal(t, driverErr.Error(), entry.Data["error"])
}

func TestFromStorage_UnexpectedError_NoLogData(t *testing.T) {
	// Without request LogData the error still may not reach the caller.
	err := FromStorage(context.Background(), errors.New("connection reset"), "failed to list accounts")

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, model.Status)
	assert.Empty(t, model.Errors)
}

func TestFromStorageConstraint_ConflictBecomes422(t *testing.T) {
	ctx, _ := newLogContext()
	driverErr := errors.Join(pgdb.ErrConflict, errors.New("duplicate key"))

	err := FromStorageConstraint(ctx, driverErr, "failed to create category")

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, model.Status)
	assert.Empty(t, model.Errors)
}

func TestFromFieldErrors_Locations(t *testing.T) {
	errs := command.FieldErrors{
		{Field: "amount", Kind: command.KindInvalidFormat, Message: "Amount must be a positive dollar value."},
		{Field: "accountId", Kind: command.KindRequired, Message: "Account is required."},
	}

	err := FromFieldErrors(errs)

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, model.Status)
	assert.Len(t, model.Errors, 2)
	assert.Equal(t, "body.amount", model.Errors[0].Location)
	assert.Equal(t, "body.accountId", model.Errors[1].Location)
}

func TestFromQueryFieldErrors_Locations(t *testing.T) {
	errs := command.FieldErrors{
		{Field: "start_date", Kind: command.KindInvalidFormat, Message: "Start date must be in YYYY-MM-DD format."},
	}

	err := FromQueryFieldErrors(errs)

	model, ok := err.(*huma.ErrorModel)
	assert.True(t, ok)
	assert.Equal(t, "query.start_date", model.Errors[0].Location)
}
