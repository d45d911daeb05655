package sms

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/category"
	"github.com/cashkelli/cashkelli/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=sms

// Ledger is the persisted record of which messages already produced a
// transaction. Concurrent syncs for the same user must be serialized by the
// caller: the ledger alone cannot stop two in-flight batches from both
// passing the IsProcessed check for the same message.
type Ledger interface {
	IsProcessed(ctx context.Context, userID uuid.UUID, messageID string) (bool, error)
	MarkProcessed(ctx context.Context, userID uuid.UUID, messageID, sender, body string) error
}

// TransactionCreator persists the transactions a sync produces.
type TransactionCreator interface {
	Create(ctx context.Context, params transaction.CreateParams) (*transaction.Transaction, error)
}

type Service struct {
	ledger Ledger
	txs    TransactionCreator
}

func NewService(ledger Ledger, txs TransactionCreator) *Service {
	return &Service{ledger: ledger, txs: txs}
}

// Sync runs a message batch through parse, categorize and persist, strictly
// in input order. Non-financial messages are dropped without touching the
// ledger. Storage failures are isolated to the message they hit: that draft
// is dropped and the rest of the batch continues. The returned drafts keep
// the input order.
func (s *Service) Sync(ctx context.Context, userID uuid.UUID, msgs []RawMessage, cats []category.Category) ([]Draft, error) {
	drafts := make([]Draft, 0, len(msgs))

	for _, msg := range msgs {
		if err := ctx.Err(); err != nil {
			return drafts, err
		}

		msgID := msg.ID()

		processed, err := s.ledger.IsProcessed(ctx, userID, msgID)
		if err != nil {
			slog.Error("sms sync: ledger lookup failed", "message_id", msgID, "error", err)
			messagesProcessed.WithLabelValues(outcomeFailed).Inc()

			continue
		}

		if processed {
			messagesProcessed.WithLabelValues(outcomeDuplicate).Inc()
			continue
		}

		ev, ok := Parse(msg.Body, msg.Sender)
		if !ok || ev.Amount <= 0 {
			messagesProcessed.WithLabelValues(outcomeIgnored).Inc()
			continue
		}

		var categoryID *uuid.UUID

		if id, resolved := ResolveCategory(ev, cats); resolved {
			categoryID = &id
		}

		// A bank debit keeps its manual-categorization flag even when the
		// catch-all bucket resolved; the bucket is a placeholder there, not
		// an answer.
		needsCategory := ev.NeedsManualCategory || categoryID == nil

		tx, err := s.txs.Create(ctx, transaction.CreateParams{
			UserID:          userID,
			CategoryID:      categoryID,
			Amount:          ev.Amount,
			Type:            ev.Kind,
			Description:     ev.Description,
			RawBody:         msg.Body,
			Date:            msg.Date(),
			AutoCategorized: categoryID != nil,
			NeedsCategory:   needsCategory,
		})
		if err != nil {
			slog.Error("sms sync: creating transaction failed", "message_id", msgID, "error", err)
			messagesProcessed.WithLabelValues(outcomeFailed).Inc()

			continue
		}

		if err := s.ledger.MarkProcessed(ctx, userID, msgID, msg.Sender, msg.Body); err != nil {
			slog.Error("sms sync: marking message processed failed", "message_id", msgID, "error", err)
			messagesProcessed.WithLabelValues(outcomeFailed).Inc()

			continue
		}

		drafts = append(drafts, Draft{
			TransactionID:   tx.ID,
			Amount:          ev.Amount,
			Type:            ev.Kind,
			Description:     ev.Description,
			RawBody:         msg.Body,
			Date:            msg.Date(),
			CategoryID:      categoryID,
			AutoCategorized: categoryID != nil,
			NeedsCategory:   needsCategory,
		})
		messagesProcessed.WithLabelValues(outcomeSynced).Inc()
	}

	syncBatches.Inc()

	return drafts, nil
}
