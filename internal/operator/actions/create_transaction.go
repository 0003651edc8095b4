package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/storage"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/transaction"
)

// CreateTransaction inserts a transaction after verifying the owner's
// account, and category when one is referenced, exist.
type CreateTransaction struct {
	UserID          uuid.UUID
	AccountID       uuid.UUID
	CategoryID      uuid.NullUUID
	Type            service.TransactionType
	AmountCents     int64
	Description     string
	TransactionDate time.Time
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	if _, err := writer.Accounts.FindByID(ctx, c.AccountID, c.UserID); err != nil {
		return uuid.Nil, err
	}

	if c.CategoryID.Valid {
		if _, err := writer.Categories.FindByID(ctx, c.CategoryID.UUID, c.UserID); err != nil {
			return uuid.Nil, err
		}
	}

	return writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		UserID:          c.UserID,
		AccountID:       c.AccountID,
		CategoryID:      c.CategoryID,
		TransactionType: string(c.Type),
		AmountCents:     c.AmountCents,
		Description:     c.Description,
		TransactionDate: c.TransactionDate,
	})
}
