package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()
	catID := uuid.New()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *Transaction) error {
			tx.ID = uuid.New()
			return nil
		})

	tx, err := svc.Create(context.Background(), CreateParams{
		UserID:          userID,
		CategoryID:      &catID,
		Amount:          150000,
		Type:            TypeIncome,
		Description:     "Received from JOHN DOE",
		RawBody:         "QA12BC3D4E Confirmed. You have received Ksh1,500.00 from JOHN DOE on 1/1/24",
		Date:            date,
		AutoCategorized: true,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Equal(t, userID, tx.UserID)
	assert.Equal(t, int64(150000), tx.Amount)
	assert.Equal(t, date, tx.Date)
	assert.True(t, tx.AutoCategorized)
	assert.False(t, tx.NeedsCategory)
}

func TestService_Categorize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	id := uuid.New()
	catID := uuid.New()

	repo.EXPECT().UpdateCategory(gomock.Any(), id, catID).Return(nil)

	require.NoError(t, svc.Categorize(context.Background(), id, catID))
}

func TestService_Categorize_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	id := uuid.New()
	catID := uuid.New()

	repo.EXPECT().UpdateCategory(gomock.Any(), id, catID).Return(ErrNotFound)

	assert.ErrorIs(t, svc.Categorize(context.Background(), id, catID), ErrNotFound)
}

func TestService_List_PassesFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	userID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	filter := ListFilter{StartDate: &start, Limit: 50}

	repo.EXPECT().
		ListTransactions(gomock.Any(), userID, filter).
		Return([]*Transaction{{ID: uuid.New(), UserID: userID}}, nil)

	txs, err := svc.List(context.Background(), userID, filter)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}
