package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is an account holder. Balances are kept in cents and maintained by
// the callers that create or delete transactions.
type User struct {
	ID             uuid.UUID
	Name           string
	Email          string
	PasswordHash   string
	InitialBalance int64
	CurrentBalance int64
	CreatedAt      time.Time
}
