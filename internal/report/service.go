// Package report aggregates transactions into the income and spending
// summaries the app's overview screens show.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/transaction"
)

// CategoryTotal is the aggregate for one category over a date range.
// Uncategorized transactions show up with a nil CategoryID.
type CategoryTotal struct {
	CategoryID   *uuid.UUID
	CategoryName string
	CategoryIcon string
	Type         transaction.Type
	Total        int64
	Count        int
}

// Summary covers one user over one date range. Totals are in cents.
type Summary struct {
	StartDate    time.Time
	EndDate      time.Time
	TotalIncome  int64
	TotalExpense int64
	Net          int64
	ByCategory   []CategoryTotal
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	CategoryTotals(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]CategoryTotal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summarize totals every transaction in [start, end] grouped by category.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID, start, end time.Time) (*Summary, error) {
	totals, err := s.repo.CategoryTotals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		StartDate:  start,
		EndDate:    end,
		ByCategory: totals,
	}
	for _, t := range totals {
		switch t.Type {
		case transaction.TypeIncome:
			summary.TotalIncome += t.Total
		case transaction.TypeExpense:
			summary.TotalExpense += t.Total
		}
	}
	summary.Net = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}
