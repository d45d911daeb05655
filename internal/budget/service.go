package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	CreateBudget(ctx context.Context, b *Budget) error
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]Budget, error)
	DeleteBudget(ctx context.Context, userID, id uuid.UUID) error
	SpentInRange(ctx context.Context, userID, categoryID uuid.UUID, start, end time.Time) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     int64
	Period     Period
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Budget, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("budget amount must be positive")
	}
	if !params.Period.Valid() {
		return nil, fmt.Errorf("invalid budget period %q", params.Period)
	}

	b := &Budget{
		UserID:     params.UserID,
		CategoryID: params.CategoryID,
		Amount:     params.Amount,
		Period:     params.Period,
	}
	if err := s.repo.CreateBudget(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	return s.repo.ListBudgets(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteBudget(ctx, userID, id)
}

// Status is a budget with its spending for the current period window.
type Status struct {
	Budget
	Spent     int64
	Remaining int64
}

// Statuses returns every budget with the expense total accumulated in
// the period window containing now.
func (s *Service) Statuses(ctx context.Context, userID uuid.UUID, now time.Time) ([]Status, error) {
	budgets, err := s.repo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		start, end := b.Period.Range(now)

		spent, err := s.repo.SpentInRange(ctx, userID, b.CategoryID, start, end)
		if err != nil {
			return nil, fmt.Errorf("computing spend for budget %s: %w", b.ID, err)
		}

		statuses = append(statuses, Status{
			Budget:    b,
			Spent:     spent,
			Remaining: b.Amount - spent,
		})
	}

	return statuses, nil
}
