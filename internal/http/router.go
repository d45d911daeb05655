package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authsvc "github.com/cashkelli/cashkelli/internal/auth"
	"github.com/cashkelli/cashkelli/internal/http/auth"
	"github.com/cashkelli/cashkelli/internal/http/budget"
	"github.com/cashkelli/cashkelli/internal/http/category"
	"github.com/cashkelli/cashkelli/internal/http/middleware"
	"github.com/cashkelli/cashkelli/internal/http/report"
	"github.com/cashkelli/cashkelli/internal/http/sync"
	"github.com/cashkelli/cashkelli/internal/http/transaction"
)

func New(
	tokens *authsvc.TokenManager,
	authV1 *auth.Handler,
	categoriesV1 *category.Handler,
	transactionsV1 *transaction.Handler,
	budgetsV1 *budget.Handler,
	syncV1 *sync.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(tokens))

			r.Route("/categories", func(r chi.Router) {
				categoriesV1.Routes(r)
			})

			r.Route("/transactions", func(r chi.Router) {
				transactionsV1.Routes(r)
			})

			r.Route("/budgets", func(r chi.Router) {
				budgetsV1.Routes(r)
			})

			r.Route("/sync", func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				syncV1.Routes(r)
			})

			r.Route("/reports", func(r chi.Router) {
				reportsV1.Routes(r)
			})
		})
	})

	return router
}
