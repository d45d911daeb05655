package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (user_id, name, type, icon, color, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.UserID,
		c.Name,
		c.Type,
		c.Icon,
		c.Color,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID, typ *category.Type) ([]category.Category, error) {
	query := `
		SELECT id, user_id, name, type, icon, color, created_at
		FROM categories
		WHERE user_id = $1
	`

	args := []any{userID}

	if typ != nil {
		query += " AND type = $2"

		args = append(args, *typ)
	}

	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category

	for rows.Next() {
		var c category.Category

		var typeStr string

		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &typeStr, &c.Icon, &c.Color, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Type = category.Type(typeStr)
		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category rows: %w", err)
	}

	return cats, nil
}
