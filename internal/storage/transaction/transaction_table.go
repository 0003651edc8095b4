package transaction

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/sznajderm/budget-manager-sub002/internal/storage/pgdb"
)

var _ ITransactionTable = (*Table)(nil)

// Table provides access to the transactions table.
type Table struct {
	exec pgdb.Queryer
}

// NewTable creates a Table bound to the given executor (pool or tx).
func NewTable(exec pgdb.Queryer) *Table {
	return &Table{exec: exec}
}

const selectColumns = `t.id, t.user_id, t.account_id, a.name, t.category_id, c.name,
	t.transaction_type, t.amount_cents, t.description, t.transaction_date, t.created_at`

const fromJoined = ` FROM transactions t
	JOIN accounts a ON a.id = t.account_id
	LEFT JOIN categories c ON c.id = t.category_id`

// FindByID retrieves one transaction scoped to its owner.
func (t *Table) FindByID(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	row := t.exec.QueryRow(ctx,
		"SELECT "+selectColumns+fromJoined+" WHERE t.id = $1 AND t.user_id = $2",
		id, userID)

	tx, err := scanTransaction(row)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	return tx, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	var id uuid.UUID
	err := t.exec.QueryRow(ctx,
		`INSERT INTO transactions
			(user_id, account_id, category_id, transaction_type, amount_cents, description, transaction_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		create.UserID, create.AccountID, create.CategoryID,
		create.TransactionType, create.AmountCents, create.Description, create.TransactionDate,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, pgdb.Classify(err)
	}
	return id, nil
}

// Update applies the non-nil fields of update to one owned transaction.
func (t *Table) Update(ctx context.Context, id, userID uuid.UUID, update *TransactionUpdate) error {
	var (
		sets []string
		args []any
	)
	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}

	if update.AccountID != nil {
		addSet("account_id", *update.AccountID)
	}
	if update.CategoryID != nil {
		addSet("category_id", *update.CategoryID)
	}
	if update.TransactionType != nil {
		addSet("transaction_type", *update.TransactionType)
	}
	if update.AmountCents != nil {
		addSet("amount_cents", *update.AmountCents)
	}
	if update.Description != nil {
		addSet("description", *update.Description)
	}
	if update.TransactionDate != nil {
		addSet("transaction_date", *update.TransactionDate)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id, userID)
	query := "UPDATE transactions SET " + strings.Join(sets, ", ") +
		" WHERE id = $" + strconv.Itoa(len(args)-1) +
		" AND user_id = $" + strconv.Itoa(len(args))

	tag, err := t.exec.Exec(ctx, query, args...)
	if err != nil {
		return pgdb.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return pgdb.ErrNotFound
	}
	return nil
}

// Delete removes one owned transaction.
func (t *Table) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := t.exec.Exec(ctx,
		"DELETE FROM transactions WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return pgdb.Classify(err)
	}
	if tag.RowsAffected() == 0 {
		return pgdb.ErrNotFound
	}
	return nil
}

// List returns transactions matching the filter, newest transaction date first.
func (t *Table) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	args := []any{filter.UserID}
	where := []string{"t.user_id = $1"}
	addWhere := func(clause string, value any) {
		args = append(args, value)
		where = append(where, clause+" $"+strconv.Itoa(len(args)))
	}

	if filter.ID != nil {
		addWhere("t.id =", *filter.ID)
	}
	if filter.AccountID != nil {
		addWhere("t.account_id =", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		addWhere("t.category_id =", *filter.CategoryID)
	}
	if filter.Type != nil {
		addWhere("t.transaction_type =", *filter.Type)
	}
	if filter.DateFrom != nil {
		addWhere("t.transaction_date >=", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		addWhere("t.transaction_date <=", *filter.DateTo)
	}

	query := "SELECT " + selectColumns + fromJoined +
		" WHERE " + strings.Join(where, " AND ") +
		" ORDER BY t.transaction_date DESC, t.id DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}

	rows, err := t.exec.Query(ctx, query, args...)
	if err != nil {
		return nil, pgdb.Classify(err)
	}
	defer rows.Close()

	var result []*Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, pgdb.Classify(err)
		}
		result = append(result, tx)
	}
	return result, pgdb.Classify(rows.Err())
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*Transaction, error) {
	var (
		tx           Transaction
		categoryName *string
	)
	err := row.Scan(
		&tx.ID, &tx.UserID, &tx.AccountID, &tx.AccountName, &tx.CategoryID, &categoryName,
		&tx.TransactionType, &tx.AmountCents, &tx.Description, &tx.TransactionDate, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryName != nil {
		tx.CategoryName = *categoryName
	}
	return &tx, nil
}
