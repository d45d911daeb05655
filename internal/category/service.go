package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context, userID uuid.UUID, typ *Type) ([]Category, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Type  Type
	Icon  string
	Color string
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, params CreateParams) (*Category, error) {
	c := &Category{
		UserID: userID,
		Name:   params.Name,
		Type:   params.Type,
		Icon:   params.Icon,
		Color:  params.Color,
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, typ *Type) ([]Category, error) {
	return s.repo.ListCategories(ctx, userID, typ)
}

// SeedDefaults creates the default category set for a freshly registered user.
func (s *Service) SeedDefaults(ctx context.Context, userID uuid.UUID) error {
	for _, d := range Defaults {
		c := d
		c.UserID = userID

		if err := s.repo.CreateCategory(ctx, &c); err != nil {
			return fmt.Errorf("seeding category %q: %w", d.Name, err)
		}
	}

	return nil
}
