package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *User) error {
			u.ID = uuid.New()
			return nil
		})

	u, err := svc.Register(context.Background(), RegisterParams{
		Name:           "Amina",
		Email:          "amina@example.com",
		Password:       "s3cret",
		InitialBalance: 500000,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, int64(500000), u.CurrentBalance)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestService_Register_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(ErrEmailTaken)

	_, err := svc.Register(context.Background(), RegisterParams{
		Name:     "Amina",
		Email:    "amina@example.com",
		Password: "s3cret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &User{ID: uuid.New(), Email: "amina@example.com", PasswordHash: string(hash)}
	repo.EXPECT().GetUserByEmail(gomock.Any(), "amina@example.com").Return(stored, nil)

	u, err := svc.Login(context.Background(), "amina@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, u.ID)
}

func TestService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.EXPECT().
		GetUserByEmail(gomock.Any(), "amina@example.com").
		Return(&User{PasswordHash: string(hash)}, nil)

	_, err = svc.Login(context.Background(), "amina@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	svc := NewService(repo)

	repo.EXPECT().GetUserByEmail(gomock.Any(), "ghost@example.com").Return(nil, ErrNotFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	// Do not leak whether the account exists.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
