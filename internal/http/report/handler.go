package report

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/http/middleware"
	"github.com/cashkelli/cashkelli/internal/report"
	"github.com/cashkelli/cashkelli/internal/transaction"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
}

type categoryTotalResponse struct {
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	CategoryIcon string           `json:"category_icon,omitempty"`
	Type         transaction.Type `json:"type"`
	Total        int64            `json:"total"`
	Count        int              `json:"count"`
}

type summaryResponse struct {
	StartDate    string                  `json:"start_date"`
	EndDate      string                  `json:"end_date"`
	TotalIncome  int64                   `json:"total_income"`
	TotalExpense int64                   `json:"total_expense"`
	Net          int64                   `json:"net"`
	ByCategory   []categoryTotalResponse `json:"by_category"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// Default to the current calendar month.
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	if s := r.URL.Query().Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		start = t
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		end = t
	}

	summary, err := h.svc.Summarize(r.Context(), userID, start, end)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := summaryResponse{
		StartDate:    summary.StartDate.Format(time.DateOnly),
		EndDate:      summary.EndDate.Format(time.DateOnly),
		TotalIncome:  summary.TotalIncome,
		TotalExpense: summary.TotalExpense,
		Net:          summary.Net,
		ByCategory:   make([]categoryTotalResponse, len(summary.ByCategory)),
	}
	for i, t := range summary.ByCategory {
		resp.ByCategory[i] = categoryTotalResponse{
			CategoryID:   t.CategoryID,
			CategoryName: t.CategoryName,
			CategoryIcon: t.CategoryIcon,
			Type:         t.Type,
			Total:        t.Total,
			Count:        t.Count,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
