package service

import (
	"time"

	"github.com/sznajderm/budget-manager-sub002/internal/money"
)

// UncategorizedLabel is the sentinel category name rendered when a
// transaction has no category.
const UncategorizedLabel = "Uncategorized"

const (
	classPositive = "amount-positive"
	classNegative = "amount-negative"
)

// TransactionView is the display-ready projection of a transaction.
type TransactionView struct {
	ID                 string `json:"id" doc:"Transaction UUID"`
	CreatedAtISO       string `json:"createdAtISO" doc:"RFC3339 creation time"`
	TransactionDateISO string `json:"transactionDateISO" doc:"RFC3339 transaction date"`
	Description        string `json:"description" doc:"Free-text description"`
	AccountName        string `json:"accountName" doc:"Owning account name"`
	AccountID          string `json:"accountId" doc:"Owning account UUID"`
	CategoryName       string `json:"categoryName" doc:"Category name, Uncategorized when absent"`
	CategoryID         string `json:"categoryId,omitempty" doc:"Category UUID, empty when absent"`
	Type               string `json:"type" enum:"income,expense" doc:"Classification"`
	AmountCents        int64  `json:"amountCents" doc:"Amount in integer cents, always positive"`
	AmountFormatted    string `json:"amountFormatted" doc:"Currency-formatted amount"`
	AmountClassName    string `json:"amountClassName" doc:"Presentational class derived from the classification"`
}

// MapTransactionView converts a transaction into its view model. It is a
// total, deterministic function with no side effects. AmountClassName is
// derived from the classification alone, never from the numeric sign, since
// amounts are stored positive for both types.
func MapTransactionView(tx Transaction) TransactionView {
	categoryName := tx.CategoryName
	if !tx.CategoryID.Valid || categoryName == "" {
		categoryName = UncategorizedLabel
	}

	categoryID := ""
	if tx.CategoryID.Valid {
		categoryID = tx.CategoryID.UUID.String()
	}

	className := classNegative
	if tx.Type == TypeIncome {
		className = classPositive
	}

	return TransactionView{
		ID:                 tx.ID.String(),
		CreatedAtISO:       tx.CreatedAt.UTC().Format(time.RFC3339),
		TransactionDateISO: tx.TransactionDate.UTC().Format(time.RFC3339),
		Description:        tx.Description,
		AccountName:        tx.AccountName,
		AccountID:          tx.AccountID.String(),
		CategoryName:       categoryName,
		CategoryID:         categoryID,
		Type:               string(tx.Type),
		AmountCents:        tx.AmountCents,
		AmountFormatted:    money.FormatCentsAsCurrency(tx.AmountCents),
		AmountClassName:    className,
	}
}

// Summary is the aggregate of one classification over a date range.
type Summary struct {
	TotalCents  int64
	Count       int
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// AggregateSummary filters records to the requested classification and the
// inclusive [start, end] range, summing amounts as integers. An empty input
// yields a zero summary, not an error.
func AggregateSummary(records []Transaction, txType TransactionType, start, end time.Time) Summary {
	summary := Summary{PeriodStart: start, PeriodEnd: end}

	for _, tx := range records {
		if tx.Type != txType {
			continue
		}
		if tx.TransactionDate.Before(start) || tx.TransactionDate.After(end) {
			continue
		}
		summary.TotalCents += tx.AmountCents
		summary.Count++
	}

	return summary
}
