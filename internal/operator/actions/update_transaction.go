package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/service"
	"github.com/sznajderm/budget-manager-sub002/internal/storage"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/transaction"
)

// UpdateTransaction applies a partial update to one owned transaction.
// Nil fields are left unchanged. Re-pointed account or category references
// are verified against the owner before the update.
type UpdateTransaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	AccountID       *uuid.UUID
	CategoryID      *uuid.NullUUID
	Type            *service.TransactionType
	AmountCents     *int64
	Description     *string
	TransactionDate *time.Time
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) (uuid.UUID, error) {
	if u.AccountID != nil {
		if _, err := writer.Accounts.FindByID(ctx, *u.AccountID, u.UserID); err != nil {
			return uuid.Nil, err
		}
	}

	if u.CategoryID != nil && u.CategoryID.Valid {
		if _, err := writer.Categories.FindByID(ctx, u.CategoryID.UUID, u.UserID); err != nil {
			return uuid.Nil, err
		}
	}

	update := &transaction.TransactionUpdate{
		AccountID:       u.AccountID,
		CategoryID:      u.CategoryID,
		AmountCents:     u.AmountCents,
		Description:     u.Description,
		TransactionDate: u.TransactionDate,
	}
	if u.Type != nil {
		storageType := string(*u.Type)
		update.TransactionType = &storageType
	}

	return uuid.Nil, writer.Transactions.Update(ctx, u.ID, u.UserID, update)
}
