package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cashkelli/cashkelli/internal/user"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, initial_balance, current_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.InitialBalance,
		u.CurrentBalance,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return user.ErrEmailTaken
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `
		SELECT id, name, email, password_hash, initial_balance, current_balance, created_at
		FROM users
		WHERE id = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, id))
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `
		SELECT id, name, email, password_hash, initial_balance, current_balance, created_at
		FROM users
		WHERE email = $1
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

func (s *Store) AdjustBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	query := `
		UPDATE users
		SET current_balance = current_balance + $1
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("adjusting balance: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (s *Store) scanUser(row *sql.Row) (*user.User, error) {
	var u user.User

	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.InitialBalance, &u.CurrentBalance, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return &u, nil
}
