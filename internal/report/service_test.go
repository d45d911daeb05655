package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cashkelli/cashkelli/internal/transaction"
)

func TestService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	salaryID := uuid.New()
	foodID := uuid.New()

	repo.EXPECT().CategoryTotals(gomock.Any(), userID, start, end).Return([]CategoryTotal{
		{CategoryID: &salaryID, CategoryName: "Salary", Type: transaction.TypeIncome, Total: 5000000, Count: 1},
		{CategoryID: &foodID, CategoryName: "Food & Dining", Type: transaction.TypeExpense, Total: 120000, Count: 8},
		{CategoryID: nil, Type: transaction.TypeExpense, Total: 45000, Count: 1},
	}, nil)

	summary, err := svc.Summarize(context.Background(), userID, start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(5000000), summary.TotalIncome)
	assert.Equal(t, int64(165000), summary.TotalExpense)
	assert.Equal(t, int64(4835000), summary.Net)
	assert.Len(t, summary.ByCategory, 3)
}

func TestService_Summarize_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().CategoryTotals(gomock.Any(), userID, start, end).Return(nil, nil)

	summary, err := svc.Summarize(context.Background(), userID, start, end)
	require.NoError(t, err)

	assert.Zero(t, summary.TotalIncome)
	assert.Zero(t, summary.TotalExpense)
	assert.Zero(t, summary.Net)
	assert.Empty(t, summary.ByCategory)
}
