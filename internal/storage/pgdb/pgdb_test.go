package pgdb

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Nil(t *testing.T) {
	assert.Nil(t, Classify(nil))
}

func TestClassify_NoRows(t *testing.T) {
	assert.ErrorIs(t, Classify(pgx.ErrNoRows), ErrNotFound)
}

func TestClassify_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "categories_user_id_name_key"}

	err := Classify(pgErr)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorAs(t, err, &pgErr)
}

func TestClassify_ForeignKeyViolation(t *testing.T) {
	err := Classify(&pgconn.PgError{Code: "23503"})
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestClassify_Passthrough(t *testing.T) {
	plain := errors.New("connection refused")
	assert.Equal(t, plain, Classify(plain))
	assert.NotErrorIs(t, Classify(&pgconn.PgError{Code: "57014"}), ErrConflict)
}
