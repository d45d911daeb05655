package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CategoryTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]report.CategoryTotal, error) {
	query := `
		SELECT t.category_id,
		       COALESCE(c.name, '') AS category_name,
		       COALESCE(c.icon, '') AS category_icon,
		       t.type,
		       SUM(t.amount) AS total,
		       COUNT(*) AS count
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1 AND t.date >= $2 AND t.date <= $3
		GROUP BY t.category_id, c.name, c.icon, t.type
		ORDER BY total DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("aggregating transactions: %w", err)
	}
	defer rows.Close()

	var totals []report.CategoryTotal
	for rows.Next() {
		var t report.CategoryTotal
		err := rows.Scan(&t.CategoryID, &t.CategoryName, &t.CategoryIcon, &t.Type, &t.Total, &t.Count)
		if err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		totals = append(totals, t)
	}

	return totals, rows.Err()
}
