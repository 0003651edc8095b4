// Package httperror maps storage and validation failures onto HTTP errors.
package httperror

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"

	"github.com/sznajderm/budget-manager-sub002/internal/command"
	"github.com/sznajderm/budget-manager-sub002/internal/logging"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

// FromFieldErrors turns a schema's field errors into a 422 response carrying
// every field failure as a detail located in the request body.
func FromFieldErrors(errs command.FieldErrors) error {
	return fromFieldErrors(errs, "body.")
}

// FromQueryFieldErrors is FromFieldErrors for failures in query parameters.
func FromQueryFieldErrors(errs command.FieldErrors) error {
	return fromFieldErrors(errs, "query.")
}

func fromFieldErrors(errs command.FieldErrors, locationPrefix string) error {
	details := make([]error, len(errs))
	for i, fieldErr := range errs {
		details[i] = &huma.ErrorDetail{
			Message:  fieldErr.Message,
			Location: locationPrefix + fieldErr.Field,
		}
	}
	return huma.NewError(http.StatusUnprocessableEntity, errs.Error(), details...)
}

// FromStorage maps a typed storage error onto the status taxonomy: missing
// referenced entities are 404, uniqueness conflicts default to 409, broken
// references are 422, anything else is 500. The caller only ever sees the
// generic message; driver error text stays in the server-side log.
func FromStorage(ctx context.Context, err error, message string) error {
	switch {
	case errors.Is(err, pgdb.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message)
	case errors.Is(err, pgdb.ErrConflict):
		return huma.NewError(http.StatusConflict, message)
	case errors.Is(err, pgdb.ErrForeignKey):
		return huma.NewError(http.StatusUnprocessableEntity, message)
	default:
		logUnexpected(ctx, err, message)
		return huma.NewError(http.StatusInternalServerError, message)
	}
}

// FromStorageConstraint is FromStorage with conflicts reported as 422, for
// entities whose uniqueness failure is a validation-level concern
// (e.g. category names) rather than a resource conflict.
func FromStorageConstraint(ctx context.Context, err error, message string) error {
	if errors.Is(err, pgdb.ErrConflict) {
		return huma.NewError(http.StatusUnprocessableEntity, message)
	}
	return FromStorage(ctx, err, message)
}

func logUnexpected(ctx context.Context, err error, message string) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
		return
	}
	logrus.WithError(err).Error(message)
}
