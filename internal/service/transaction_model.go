package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// TransactionType is the income/expense classification of a transaction.
// It carries the sign semantics; stored amounts are always positive.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts a raw string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(s) {
	case TypeIncome, TypeExpense:
		return TransactionType(s), true
	default:
		return "", false
	}
}

// Transaction represents a transaction in the service layer, with the
// account and category names already resolved by the storage join.
type Transaction struct {
	ID              uuid.UUID
	AccountID       uuid.UUID
	AccountName     string
	CategoryID      uuid.NullUUID
	CategoryName    string // empty when the transaction has no category
	Type            TransactionType
	AmountCents     int64
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionFilter narrows a transaction listing. Every listing is scoped
// to one owner by the caller.
type TransactionFilter struct {
	ID         *uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *TransactionType
	Limit      int
	Offset     int
}

// TransactionCreate is the validated input for creating a transaction.
type TransactionCreate struct {
	AccountID       uuid.UUID
	CategoryID      uuid.NullUUID
	Type            TransactionType
	AmountCents     int64
	Description     string
	TransactionDate time.Time
}

// TransactionUpdate carries the fields of a partial update; nil fields are
// left unchanged.
type TransactionUpdate struct {
	AccountID       *uuid.UUID
	CategoryID      *uuid.NullUUID
	Type            *TransactionType
	AmountCents     *int64
	Description     *string
	TransactionDate *time.Time
}
