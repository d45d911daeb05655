package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/auth"
	"github.com/cashkelli/cashkelli/internal/category"
	"github.com/cashkelli/cashkelli/internal/user"
)

type Handler struct {
	users      *user.Service
	categories *category.Service
	tokens     *auth.TokenManager
}

func NewHandler(users *user.Service, categories *category.Service, tokens *auth.TokenManager) *Handler {
	return &Handler{users: users, categories: categories, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	InitialBalance int64  `json:"initial_balance"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type userResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CurrentBalance int64     `json:"current_balance"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.users.Register(r.Context(), user.RegisterParams{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		InitialBalance: req.InitialBalance,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	// A failed seed leaves the account usable; categories can be created
	// by hand later.
	if err := h.categories.SeedDefaults(r.Context(), u.ID); err != nil {
		slog.Error("failed to seed default categories", "user_id", u.ID, "error", err)
	}

	h.respondWithToken(w, u, http.StatusCreated)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	h.respondWithToken(w, u, http.StatusOK)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, u *user.User, status int) {
	token, err := h.tokens.Generate(u.ID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := authResponse{
		Token: token,
		User: userResponse{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			CurrentBalance: u.CurrentBalance,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
