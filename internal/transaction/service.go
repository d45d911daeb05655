package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	UpdateCategory(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID          uuid.UUID
	CategoryID      *uuid.UUID
	Amount          int64
	Type            Type
	Description     string
	RawBody         string
	Date            time.Time
	AutoCategorized bool
	NeedsCategory   bool
}

type ListFilter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	NeedsCategory *bool
	Limit         int
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		UserID:          params.UserID,
		CategoryID:      params.CategoryID,
		Amount:          params.Amount,
		Type:            params.Type,
		Description:     params.Description,
		RawBody:         params.RawBody,
		Date:            params.Date,
		AutoCategorized: params.AutoCategorized,
		NeedsCategory:   params.NeedsCategory,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, userID, filter)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}

// Categorize assigns a category to a transaction and clears its
// needs-category flag. This is the manual-resolution path for drafts the
// SMS categorizer could not place.
func (s *Service) Categorize(ctx context.Context, id uuid.UUID, categoryID uuid.UUID) error {
	return s.repo.UpdateCategory(ctx, id, categoryID)
}
