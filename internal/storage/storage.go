package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sznajderm/budget-manager-sub002/internal/config"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/account"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/category"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/session"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/transaction"
	"github.com/sznajderm/budget-manager-sub002/internal/storage/user"
)

// Storage bundles the per-entity tables bound to the connection pool.
type Storage struct {
	Pool         *pgxpool.Pool
	Transactions transaction.ITransactionTable
	Accounts     account.IAccountTable
	Categories   category.ICategoryTable
	Users        user.IUserTable
	Sessions     session.ISessionTable
}

// NewStorage opens a connection pool and binds the table accessors to it.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	pool, err := pgxpool.New(ctx, env.ConnectionString())
	if err != nil {
		return nil, err
	}

	return &Storage{
		Pool:         pool,
		Transactions: transaction.NewTable(pool),
		Accounts:     account.NewTable(pool),
		Categories:   category.NewTable(pool),
		Users:        user.NewTable(pool),
		Sessions:     session.NewTable(pool),
	}, nil
}

// Write begins a transaction and returns a Writer whose tables all execute
// inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Close releases the connection pool.
func (s *Storage) Close() {
	s.Pool.Close()
}
