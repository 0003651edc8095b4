package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/transaction"
)

// TransactionService handles transaction read-side business logic. Writes go
// through the operator so they run inside a storage transaction.
type TransactionService struct {
	transactions transaction.ITransactionTable
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactions transaction.ITransactionTable) *TransactionService {
	return &TransactionService{transactions: transactions}
}

// GetTransaction retrieves one owned transaction.
func (s *TransactionService) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	row, err := s.transactions.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	converted := fromStorageTransaction(row)
	return &converted, nil
}

// ListTransactions returns the owner's transactions matching the filter.
func (s *TransactionService) ListTransactions(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]Transaction, error) {
	storageFilter := &transaction.TransactionFilter{UserID: userID}
	if filter != nil {
		storageFilter.ID = filter.ID
		storageFilter.AccountID = filter.AccountID
		storageFilter.CategoryID = filter.CategoryID
		storageFilter.Limit = filter.Limit
		storageFilter.Offset = filter.Offset
		if filter.Type != nil {
			storageType := string(*filter.Type)
			storageFilter.Type = &storageType
		}
	}

	rows, err := s.transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = fromStorageTransaction(row)
	}
	return converted, nil
}

// ListTransactionViews returns the owner's transactions as view models.
func (s *TransactionService) ListTransactionViews(ctx context.Context, userID uuid.UUID, filter *TransactionFilter) ([]TransactionView, error) {
	transactions, err := s.ListTransactions(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, len(transactions))
	for i, tx := range transactions {
		views[i] = MapTransactionView(tx)
	}
	return views, nil
}

func fromStorageTransaction(row *transaction.Transaction) Transaction {
	txType, _ := ParseTransactionType(row.TransactionType)
	return Transaction{
		ID:              row.ID,
		AccountID:       row.AccountID,
		AccountName:     row.AccountName,
		CategoryID:      row.CategoryID,
		CategoryName:    row.CategoryName,
		Type:            txType,
		AmountCents:     row.AmountCents,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}
