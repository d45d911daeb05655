package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	mgr := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	token, err := mgr.Generate(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := mgr.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenManager_Expired(t *testing.T) {
	mgr := NewTokenManager("test-secret", -time.Minute)

	token, err := mgr.Generate(uuid.New())
	require.NoError(t, err)

	_, err = mgr.Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", time.Hour).Generate(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager("test-secret", time.Hour).Validate("not.a.token")
	assert.Error(t, err)
}
