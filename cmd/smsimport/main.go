// Command smsimport replays an SMS backup file through the sync pipeline,
// creating transactions for a user directly against the database. It exists
// for onboarding: a fresh account can be backfilled from months of message
// history without pushing thousands of messages through the API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cashkelli/cashkelli/internal/category"
	categoryStore "github.com/cashkelli/cashkelli/internal/category/store"
	"github.com/cashkelli/cashkelli/internal/config"
	"github.com/cashkelli/cashkelli/internal/database"
	"github.com/cashkelli/cashkelli/internal/importer"
	"github.com/cashkelli/cashkelli/internal/sms"
	smsStore "github.com/cashkelli/cashkelli/internal/sms/store"
	"github.com/cashkelli/cashkelli/internal/transaction"
	txStore "github.com/cashkelli/cashkelli/internal/transaction/store"
	"github.com/cashkelli/cashkelli/internal/user"
	userStore "github.com/cashkelli/cashkelli/internal/user/store"
)

type options struct {
	file   string
	userID string
	sender string
	since  string
	max    int
}

func main() {
	_ = godotenv.Load()

	var opts options

	cmd := &cobra.Command{
		Use:   "smsimport",
		Short: "Import an SMS backup file and sync its transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "path to the SMS backup XML file")
	cmd.Flags().StringVarP(&opts.userID, "user", "u", "", "ID of the user to import for")
	cmd.Flags().StringVarP(&opts.sender, "sender", "s", "", "only import messages from this sender")
	cmd.Flags().StringVar(&opts.since, "since", "", "only import messages on or after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.max, "max", 0, "cap the number of imported messages (0 = no cap)")

	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("user")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts options) error {
	userID, err := uuid.Parse(opts.userID)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", opts.userID, err)
	}

	filter := importer.Filter{Sender: opts.sender, Max: opts.max}

	if opts.since != "" {
		since, err := time.Parse(time.DateOnly, opts.since)
		if err != nil {
			return fmt.Errorf("invalid --since date %q: %w", opts.since, err)
		}

		filter.Since = since
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()

	userService := user.NewService(userStore.New(db))
	if _, err := userService.Get(ctx, userID); err != nil {
		return fmt.Errorf("looking up user: %w", err)
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("opening backup file: %w", err)
	}
	defer f.Close()

	msgs, err := importer.NewService().Import(importer.FormatSMSBackup, f, filter)
	if err != nil {
		return fmt.Errorf("parsing backup file: %w", err)
	}

	slog.Info("parsed backup file", "file", opts.file, "messages", len(msgs))

	categoryService := category.NewService(categoryStore.New(db))

	cats, err := categoryService.List(ctx, userID, nil)
	if err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	transactionService := transaction.NewService(txStore.New(db))
	smsService := sms.NewService(smsStore.New(db), transactionService)

	drafts, err := smsService.Sync(ctx, userID, msgs, cats)
	if err != nil {
		return fmt.Errorf("syncing messages: %w", err)
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
		if err := userService.AdjustBalance(ctx, userID, delta); err != nil {
			return fmt.Errorf("adjusting balance: %w", err)
		}
	}

	cmd.Printf("imported %d messages, created %d transactions, balance delta %+.2f\n",
		len(msgs), len(drafts), float64(delta)/100)

	return nil
}
