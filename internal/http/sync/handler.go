package sync

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/category"
	"github.com/cashkelli/cashkelli/internal/http/middleware"
	"github.com/cashkelli/cashkelli/internal/sms"
	"github.com/cashkelli/cashkelli/internal/transaction"
	"github.com/cashkelli/cashkelli/internal/user"
)

type Handler struct {
	smsSvc     *sms.Service
	categories *category.Service
	users      *user.Service
	maxBatch   int
}

func NewHandler(smsSvc *sms.Service, categories *category.Service, users *user.Service, maxBatch int) *Handler {
	return &Handler{smsSvc: smsSvc, categories: categories, users: users, maxBatch: maxBatch}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.sync)
}

type messageRequest struct {
	Sender          string `json:"sender"`
	Body            string `json:"body"`
	TimestampMillis int64  `json:"timestamp"`
}

type syncRequest struct {
	Messages []messageRequest `json:"messages"`
}

type draftResponse struct {
	TransactionID   uuid.UUID        `json:"transaction_id"`
	CategoryID      *uuid.UUID       `json:"category_id,omitempty"`
	Amount          int64            `json:"amount"`
	Type            transaction.Type `json:"type"`
	Description     string           `json:"description"`
	Date            time.Time        `json:"date"`
	AutoCategorized bool             `json:"auto_categorized"`
	NeedsCategory   bool             `json:"needs_category"`
}

type syncResponse struct {
	Synced       int             `json:"synced"`
	Transactions []draftResponse `json:"transactions"`
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if len(req.Messages) == 0 {
		http.Error(w, "messages are required", http.StatusBadRequest)
		return
	}

	if h.maxBatch > 0 && len(req.Messages) > h.maxBatch {
		http.Error(w, "batch too large", http.StatusRequestEntityTooLarge)
		return
	}

	msgs := make([]sms.RawMessage, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = sms.RawMessage{
			Sender:          m.Sender,
			Body:            m.Body,
			TimestampMillis: m.TimestampMillis,
		}
	}

	cats, err := h.categories.List(r.Context(), userID, nil)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	drafts, err := h.smsSvc.Sync(r.Context(), userID, msgs, cats)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var delta int64
	for _, d := range drafts {
		if d.Type == transaction.TypeExpense {
			delta -= d.Amount
		} else {
			delta += d.Amount
		}
	}

	if delta != 0 {
		if err := h.users.AdjustBalance(r.Context(), userID, delta); err != nil {
			slog.Error("failed to adjust balance after sync", "user_id", userID, "error", err)
		}
	}

	resp := syncResponse{
		Synced:       len(drafts),
		Transactions: make([]draftResponse, len(drafts)),
	}
	for i, d := range drafts {
		resp.Transactions[i] = draftResponse{
			TransactionID:   d.TransactionID,
			CategoryID:      d.CategoryID,
			Amount:          d.Amount,
			Type:            d.Type,
			Description:     d.Description,
			Date:            d.Date,
			AutoCategorized: d.AutoCategorized,
			NeedsCategory:   d.NeedsCategory,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
