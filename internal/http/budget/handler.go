package budget

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/budget"
	"github.com/cashkelli/cashkelli/internal/http/middleware"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Delete("/{id}", h.delete)
}

type createBudgetRequest struct {
	CategoryID uuid.UUID     `json:"category_id"`
	Amount     int64         `json:"amount"`
	Period     budget.Period `json:"period"`
}

type budgetResponse struct {
	ID           uuid.UUID     `json:"id"`
	CategoryID   uuid.UUID     `json:"category_id"`
	CategoryName string        `json:"category_name,omitempty"`
	CategoryIcon string        `json:"category_icon,omitempty"`
	Amount       int64         `json:"amount"`
	Period       budget.Period `json:"period"`
	Spent        int64         `json:"spent"`
	Remaining    int64         `json:"remaining"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Create(r.Context(), budget.CreateParams{
		UserID:     userID,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Period:     req.Period,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	resp := budgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		Period:     b.Period,
		Remaining:  b.Amount,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	statuses, err := h.svc.Statuses(r.Context(), userID, time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]budgetResponse, len(statuses))
	for i, s := range statuses {
		resp[i] = budgetResponse{
			ID:           s.ID,
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			CategoryIcon: s.CategoryIcon,
			Amount:       s.Amount,
			Period:       s.Period,
			Spent:        s.Spent,
			Remaining:    s.Remaining,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, budget.ErrNotFound) {
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
