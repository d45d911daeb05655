package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateBudget(ctx context.Context, b *budget.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category_id, amount, period, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		b.UserID,
		b.CategoryID,
		b.Amount,
		b.Period,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating budget: %w", err)
	}

	return nil
}

func (s *Store) ListBudgets(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error) {
	query := `
		SELECT b.id, b.user_id, b.category_id, b.amount, b.period, b.created_at,
		       c.name AS category_name, c.icon AS category_icon
		FROM budgets b
		JOIN categories c ON c.id = b.category_id
		WHERE b.user_id = $1
		ORDER BY c.name
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []budget.Budget
	for rows.Next() {
		var b budget.Budget
		err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Amount, &b.Period, &b.CreatedAt,
			&b.CategoryName, &b.CategoryIcon)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}

func (s *Store) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting budget: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return budget.ErrNotFound
	}

	return nil
}

func (s *Store) SpentInRange(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = 'expense'
		  AND date >= $3 AND date < $4
	`

	var spent int64
	err := s.db.QueryRowContext(ctx, query, userID, categoryID, start, end).Scan(&spent)
	if err != nil {
		return 0, fmt.Errorf("summing spend: %w", err)
	}

	return spent, nil
}
