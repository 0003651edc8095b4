package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/transaction"
)

// SummaryService aggregates an owner's transactions over a date range.
type SummaryService struct {
	transactions transaction.ITransactionTable
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(transactions transaction.ITransactionTable) *SummaryService {
	return &SummaryService{transactions: transactions}
}

// Summarize totals one classification over the inclusive [start, end] range.
// The date range is pushed down to the store; classification filtering and
// the integer accumulation happen in AggregateSummary.
func (s *SummaryService) Summarize(ctx context.Context, userID uuid.UUID, txType TransactionType, start, end time.Time) (Summary, error) {
	rows, err := s.transactions.List(ctx, &transaction.TransactionFilter{
		UserID:   userID,
		DateFrom: &start,
		DateTo:   &end,
	})
	if err != nil {
		return Summary{}, err
	}

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = fromStorageTransaction(row)
	}

	return AggregateSummary(converted, txType, start, end), nil
}
