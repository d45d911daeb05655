package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

var ErrNotFound = errors.New("transaction not found")

// Transaction represents a financial transaction.
// Transactions created from SMS messages keep the original message text in
// RawBody for auditing; manual entries leave it empty.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	CategoryID      *uuid.UUID
	Amount          int64 // Amount in cents
	Type            Type
	Description     string
	RawBody         string
	Date            time.Time
	AutoCategorized bool
	NeedsCategory   bool
	CreatedAt       time.Time

	// Loaded via JOIN when listing.
	CategoryName  string
	CategoryIcon  string
	CategoryColor string
}
