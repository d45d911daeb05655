package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row joined with its category.
// Expected column order: id, user_id, category_id, amount, type, description,
// raw_body, date, auto_categorized, needs_category, created_at,
// category_name, category_icon, category_color.
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var rawBody, catName, catIcon, catColor sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.UserID, &tx.CategoryID, &tx.Amount, &typeStr, &tx.Description,
		&rawBody, &tx.Date, &tx.AutoCategorized, &tx.NeedsCategory, &tx.CreatedAt,
		&catName, &catIcon, &catColor,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.RawBody = rawBody.String
	tx.CategoryName = catName.String
	tx.CategoryIcon = catIcon.String
	tx.CategoryColor = catColor.String

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.user_id, t.category_id, t.amount, t.type, t.description,
	t.raw_body, t.date, t.auto_categorized, t.needs_category, t.created_at,
	c.name as category_name, c.icon as category_icon, c.color as category_color
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, amount, type, description, raw_body, date, auto_categorized, needs_category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.UserID,
		tx.CategoryID,
		tx.Amount,
		tx.Type,
		tx.Description,
		tx.RawBody,
		tx.Date,
		tx.AutoCategorized,
		tx.NeedsCategory,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1`

	args := []any{userID}

	argIdx := 2

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.NeedsCategory != nil {
		query += fmt.Sprintf(" AND t.needs_category = $%d", argIdx)

		args = append(args, *filter.NeedsCategory)
		argIdx++
	}

	query += " ORDER BY t.date DESC, t.created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)

		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error {
	query := `
		UPDATE transactions
		SET category_id = $1, needs_category = FALSE
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, categoryID, id)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
