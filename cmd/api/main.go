package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/cashkelli/cashkelli/internal/auth"
	"github.com/cashkelli/cashkelli/internal/budget"
	budgetStore "github.com/cashkelli/cashkelli/internal/budget/store"
	"github.com/cashkelli/cashkelli/internal/category"
	categoryStore "github.com/cashkelli/cashkelli/internal/category/store"
	"github.com/cashkelli/cashkelli/internal/config"
	"github.com/cashkelli/cashkelli/internal/database"
	cashkelliHttp "github.com/cashkelli/cashkelli/internal/http"
	authHandler "github.com/cashkelli/cashkelli/internal/http/auth"
	budgetHandler "github.com/cashkelli/cashkelli/internal/http/budget"
	categoryHandler "github.com/cashkelli/cashkelli/internal/http/category"
	reportHandler "github.com/cashkelli/cashkelli/internal/http/report"
	syncHandler "github.com/cashkelli/cashkelli/internal/http/sync"
	txHandler "github.com/cashkelli/cashkelli/internal/http/transaction"
	"github.com/cashkelli/cashkelli/internal/report"
	reportStore "github.com/cashkelli/cashkelli/internal/report/store"
	"github.com/cashkelli/cashkelli/internal/sms"
	smsStore "github.com/cashkelli/cashkelli/internal/sms/store"
	"github.com/cashkelli/cashkelli/internal/transaction"
	txStore "github.com/cashkelli/cashkelli/internal/transaction/store"
	"github.com/cashkelli/cashkelli/internal/user"
	userStore "github.com/cashkelli/cashkelli/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var (
		userService        = user.NewService(userStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		reportService      = report.NewService(reportStore.New(db))
		smsService         = sms.NewService(smsStore.New(db), transactionService)
	)

	var (
		authH     = authHandler.NewHandler(userService, categoryService, tokens)
		categoryH = categoryHandler.NewHandler(categoryService)
		txH       = txHandler.NewHandler(transactionService, userService)
		budgetH   = budgetHandler.NewHandler(budgetService)
		syncH     = syncHandler.NewHandler(smsService, categoryService, userService, cfg.SMS.MaxBatch)
		reportH   = reportHandler.NewHandler(reportService)
	)

	router := cashkelliHttp.New(tokens, authH, categoryH, txH, budgetH, syncH, reportH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}
	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
