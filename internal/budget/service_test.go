package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPeriod_Range(t *testing.T) {
	// Wednesday mid-month.
	now := time.Date(2024, 3, 13, 15, 42, 0, 0, time.UTC)

	tests := []struct {
		period Period
		start  time.Time
		end    time.Time
	}{
		{PeriodDaily, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
		{PeriodWeekly, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		{PeriodMonthly, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodYearly, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			start, end := tt.period.Range(now)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestPeriod_Range_SundayBelongsToPrecedingWeek(t *testing.T) {
	sunday := time.Date(2024, 3, 17, 8, 0, 0, 0, time.UTC)

	start, end := PeriodWeekly.Range(sunday)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), end)
}

func TestService_Create_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewService(NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), CreateParams{
		UserID:     uuid.New(),
		CategoryID: uuid.New(),
		Amount:     0,
		Period:     PeriodMonthly,
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), CreateParams{
		UserID:     uuid.New(),
		CategoryID: uuid.New(),
		Amount:     10000,
		Period:     Period("fortnightly"),
	})
	assert.Error(t, err)
}

func TestService_Statuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()
	catID := uuid.New()
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC)

	repo.EXPECT().ListBudgets(gomock.Any(), userID).Return([]Budget{
		{ID: uuid.New(), UserID: userID, CategoryID: catID, Amount: 50000, Period: PeriodMonthly},
	}, nil)
	repo.EXPECT().
		SpentInRange(gomock.Any(), userID, catID,
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)).
		Return(int64(32500), nil)

	statuses, err := svc.Statuses(context.Background(), userID, now)
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, int64(32500), statuses[0].Spent)
	assert.Equal(t, int64(17500), statuses[0].Remaining)
}

func TestService_Statuses_Overspent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()
	catID := uuid.New()

	repo.EXPECT().ListBudgets(gomock.Any(), userID).Return([]Budget{
		{ID: uuid.New(), UserID: userID, CategoryID: catID, Amount: 10000, Period: PeriodDaily},
	}, nil)
	repo.EXPECT().
		SpentInRange(gomock.Any(), userID, catID, gomock.Any(), gomock.Any()).
		Return(int64(12000), nil)

	statuses, err := svc.Statuses(context.Background(), userID, time.Now())
	require.NoError(t, err)
	require.Len(t, statuses, 1)

	assert.Equal(t, int64(-2000), statuses[0].Remaining)
}
