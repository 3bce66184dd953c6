package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date format used for expense dates and
// range boundaries.
const DateLayout = "2006-01-02"

// Expense is a single dated spend recorded under exactly one trip.
// Date is the day the money was spent, not the day it was logged.
// Details is empty when the user left it blank.
type Expense struct {
	ID       int64
	TripID   int64
	Category string
	Location string
	Amount   decimal.Decimal
	Date     time.Time
	Details  string
	Currency string
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
