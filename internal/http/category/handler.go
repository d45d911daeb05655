package category

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/category"
	"github.com/cashkelli/cashkelli/internal/http/middleware"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
}

type categoryResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Type      category.Type `json:"type"`
	Icon      string        `json:"icon"`
	Color     string        `json:"color"`
	CreatedAt time.Time     `json:"created_at"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Type:      c.Type,
		Icon:      c.Icon,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
	}
}

type createCategoryRequest struct {
	Name  string        `json:"name"`
	Type  category.Type `json:"type"`
	Icon  string        `json:"icon"`
	Color string        `json:"color"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" || !req.Type.Valid() {
		http.Error(w, "name and a valid type are required", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Create(r.Context(), userID, category.CreateParams{
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(c)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var typ *category.Type
	if s := r.URL.Query().Get("type"); s != "" {
		t := category.Type(s)
		if !t.Valid() {
			http.Error(w, "invalid type", http.StatusBadRequest)
			return
		}

		typ = &t
	}

	cats, err := h.svc.List(r.Context(), userID, typ)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]categoryResponse, len(cats))
	for i := range cats {
		resp[i] = toResponse(&cats[i])
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
