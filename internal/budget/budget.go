package budget

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("budget not found")

// Period is the window a budget cap applies to.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}

	return false
}

// Range returns the start and end of the period window containing now,
// in UTC. End is exclusive.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	y, m, d := now.Date()

	switch p {
	case PeriodDaily:
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 1)
	case PeriodWeekly:
		// Weeks start on Monday.
		offset := (int(now.Weekday()) + 6) % 7
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case PeriodYearly:
		start := time.Date(y, 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default:
		start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// Budget caps spending for one category over a recurring period. Amount
// is in cents.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     int64
	Period     Period
	CreatedAt  time.Time

	CategoryName string
	CategoryIcon string
}
