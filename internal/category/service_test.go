package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_SeedDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()

	var seeded []Category
	repo.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *Category) error {
			c.ID = uuid.New()
			seeded = append(seeded, *c)
			return nil
		}).
		Times(len(Defaults))

	require.NoError(t, svc.SeedDefaults(context.Background(), userID))
	require.Len(t, seeded, len(Defaults))

	for i, c := range seeded {
		assert.Equal(t, userID, c.UserID)
		assert.Equal(t, Defaults[i].Name, c.Name)
		assert.Equal(t, Defaults[i].Type, c.Type)
	}
}

func TestService_SeedDefaults_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	gomock.InOrder(
		repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(errors.New("db down")),
	)

	err := svc.SeedDefaults(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestDefaults_CoverBothTypes(t *testing.T) {
	var income, expense int

	names := make(map[string]bool, len(Defaults))
	for _, d := range Defaults {
		assert.False(t, names[d.Name], "duplicate default category %q", d.Name)
		names[d.Name] = true

		switch d.Type {
		case TypeIncome:
			income++
		case TypeExpense:
			expense++
		}
	}

	assert.NotZero(t, income)
	assert.NotZero(t, expense)

	// The fallback buckets the categorizer relies on must exist.
	assert.True(t, names["Other Income"])
	assert.True(t, names["Other Expenses"])
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()

	repo.EXPECT().
		CreateCategory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *Category) error {
			c.ID = uuid.New()
			return nil
		})

	c, err := svc.Create(context.Background(), userID, CreateParams{
		Name:  "Rent",
		Type:  TypeExpense,
		Icon:  "🏠",
		Color: "#795548",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, userID, c.UserID)
	assert.Equal(t, "Rent", c.Name)
}
