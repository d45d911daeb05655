package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/http/middleware"
	"github.com/cashkelli/cashkelli/internal/transaction"
	"github.com/cashkelli/cashkelli/internal/user"
)

type Handler struct {
	svc   *transaction.Service
	users *user.Service
}

func NewHandler(svc *transaction.Service, users *user.Service) *Handler {
	return &Handler{svc: svc, users: users}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/category", h.categorize)
}

type createTransactionRequest struct {
	CategoryID  *uuid.UUID       `json:"category_id,omitempty"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description"`
	Date        time.Time        `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Amount <= 0 {
		http.Error(w, "amount must be positive", http.StatusBadRequest)
		return
	}

	if !req.Type.Valid() {
		http.Error(w, "type must be income or expense", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		UserID:        userID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Type:          req.Type,
		Description:   req.Description,
		Date:          req.Date,
		NeedsCategory: req.CategoryID == nil,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := h.users.AdjustBalance(r.Context(), userID, balanceDelta(tx)); err != nil {
		slog.Error("failed to adjust balance", "user_id", userID, "transaction_id", tx.ID, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	if s := r.URL.Query().Get("needs_category"); s != "" {
		filter.NeedsCategory = new(s == "true")
	}

	txs, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.ownedTransaction(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.ownedTransaction(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), tx.ID); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// Deleting undoes the transaction's effect on the running balance.
	if err := h.users.AdjustBalance(r.Context(), tx.UserID, -balanceDelta(tx)); err != nil {
		slog.Error("failed to adjust balance", "user_id", tx.UserID, "transaction_id", tx.ID, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

type categorizeRequest struct {
	CategoryID uuid.UUID `json:"category_id"`
}

func (h *Handler) categorize(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.ownedTransaction(w, r)
	if !ok {
		return
	}

	var req categorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.CategoryID == uuid.Nil {
		http.Error(w, "category_id is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Categorize(r.Context(), tx.ID, req.CategoryID); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ownedTransaction loads the transaction from the URL and verifies it
// belongs to the authenticated user. Foreign transactions read as not
// found so IDs cannot be probed.
func (h *Handler) ownedTransaction(w http.ResponseWriter, r *http.Request) (*transaction.Transaction, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	if tx.UserID != userID {
		http.Error(w, "transaction not found", http.StatusNotFound)
		return nil, false
	}

	return tx, true
}

func balanceDelta(tx *transaction.Transaction) int64 {
	if tx.Type == transaction.TypeExpense {
		return -tx.Amount
	}

	return tx.Amount
}
