package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/account"
)

// AccountService handles account read-side business logic.
type AccountService struct {
	accounts account.IAccountTable
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts account.IAccountTable) *AccountService {
	return &AccountService{accounts: accounts}
}

// ListAccounts returns the owner's accounts.
func (s *AccountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	rows, err := s.accounts.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = Account{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}
	}
	return converted, nil
}
