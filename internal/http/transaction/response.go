package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/transaction"
)

type transactionResponse struct {
	ID              uuid.UUID        `json:"id"`
	CategoryID      *uuid.UUID       `json:"category_id,omitempty"`
	Amount          int64            `json:"amount"`
	Type            transaction.Type `json:"type"`
	Description     string           `json:"description"`
	RawBody         string           `json:"raw_body,omitempty"`
	Date            time.Time        `json:"date"`
	AutoCategorized bool             `json:"auto_categorized"`
	NeedsCategory   bool             `json:"needs_category"`
	CategoryName    string           `json:"category_name,omitempty"`
	CategoryIcon    string           `json:"category_icon,omitempty"`
	CategoryColor   string           `json:"category_color,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:              tx.ID,
		CategoryID:      tx.CategoryID,
		Amount:          tx.Amount,
		Type:            tx.Type,
		Description:     tx.Description,
		RawBody:         tx.RawBody,
		Date:            tx.Date,
		AutoCategorized: tx.AutoCategorized,
		NeedsCategory:   tx.NeedsCategory,
		CategoryName:    tx.CategoryName,
		CategoryIcon:    tx.CategoryIcon,
		CategoryColor:   tx.CategoryColor,
		CreatedAt:       tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
