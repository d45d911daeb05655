package sms

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cashkelli/cashkelli/internal/transaction"
)

// RawMessage is one SMS as read from the device inbox or a backup file.
type RawMessage struct {
	Sender          string
	Body            string
	TimestampMillis int64
}

// ID derives the dedup identifier for the message. The body is deliberately
// left out, so two distinct messages from the same sender in the same
// millisecond collide; real inboxes cannot deliver that, and excluding the
// body keeps re-delivered carrier messages from double-counting.
func (m RawMessage) ID() string {
	return fmt.Sprintf("%s_%d", m.Sender, m.TimestampMillis)
}

// Date returns the message's calendar day in UTC. Transactions carry no
// time of day.
func (m RawMessage) Date() time.Time {
	t := time.UnixMilli(m.TimestampMillis).UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParsedEvent is the parser's structured reading of a financial SMS.
type ParsedEvent struct {
	Kind                transaction.Type
	Amount              int64 // cents
	Description         string
	ProviderRef         string // carrier confirmation code, when the template has one
	SuggestedCategory   string
	NeedsManualCategory bool
}

// Draft is one transaction produced by a sync run, in batch order, ready for
// the caller to display and to fold into the running balance.
type Draft struct {
	TransactionID   uuid.UUID
	Amount          int64
	Type            transaction.Type
	Description     string
	RawBody         string
	Date            time.Time
	CategoryID      *uuid.UUID
	AutoCategorized bool
	NeedsCategory   bool
}
