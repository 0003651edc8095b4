package storage

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/account"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/category"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/session"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/transaction"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/user"
)

// Writer exposes the entity tables inside one database transaction.
type Writer struct {
	tx           pgx.Tx
	Transactions *transaction.Table
	Accounts     *account.Table
	Categories   *category.Table
	Users        *user.Table
	Sessions     *session.Table
}

func NewWriter(tx pgx.Tx) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transaction.NewTable(tx),
		Accounts:     account.NewTable(tx),
		Categories:   category.NewTable(tx),
		Users:        user.NewTable(tx),
		Sessions:     session.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
