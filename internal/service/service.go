package service

import (
	"time"

	"github.com/sznajderm/budget-manager-sub002/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Category    *CategoryService
	Summary     *SummaryService
	Auth        *AuthService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, bcryptCost int, sessionTTL time.Duration) *Service {
	return &Service{
		Transaction: NewTransactionService(store.Transactions),
		Account:     NewAccountService(store.Accounts),
		Category:    NewCategoryService(store.Categories),
		Summary:     NewSummaryService(store.Transactions),
		Auth:        NewAuthService(store.Users, store.Sessions, bcryptCost, sessionTTL),
	}
}
