package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Transaction represents a transaction row with the owning account name and
// category name resolved by the listing join. CategoryName is empty when the
// transaction has no category.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       uuid.UUID
	AccountName     string
	CategoryID      uuid.NullUUID
	CategoryName    string
	TransactionType string
	AmountCents     int64
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.NullUUID
	TransactionType string
	AmountCents     int64
	Description     string
	TransactionDate time.Time
}

// TransactionUpdate carries the fields of a partial update; nil fields are
// left unchanged.
type TransactionUpdate struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.NullUUID
	TransactionType *string
	AmountCents     *int64
	Description     *string
	TransactionDate *time.Time
}

// TransactionFilter specifies filters for listing transactions. UserID is
// mandatory; every query is scoped to one owner.
type TransactionFilter struct {
	UserID     uuid.UUID
	ID         *uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Limit      int
	Offset     int
}

// ITransactionTable defines the interface for transaction storage operations.
type ITransactionTable interface {
	FindByID(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	Update(ctx context.Context, id, userID uuid.UUID, update *TransactionUpdate) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
