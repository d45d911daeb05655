package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Store is the processed-message ledger. Rows are written once per message
// and never updated or deleted.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) IsProcessed(ctx context.Context, userID uuid.UUID, messageID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM processed_sms WHERE user_id = $1 AND message_id = $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, messageID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking processed message: %w", err)
	}

	return exists, nil
}

func (s *Store) MarkProcessed(ctx context.Context, userID uuid.UUID, messageID, sender, body string) error {
	query := `
		INSERT INTO processed_sms (user_id, message_id, sender, body, processed_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, userID, messageID, sender, body)
	if err != nil {
		return fmt.Errorf("marking message processed: %w", err)
	}

	return nil
}
