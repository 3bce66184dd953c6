// Package domain contains the core data types for the Travel Expenses backend.
// It is imported by every other internal package (store, repo, summary,
// export, service, handler) and holds no I/O.
package domain

import "time"

// TimestampLayout is the storage format of trip timestamps. Fixed-width UTC
// with millisecond precision keeps the text column lexicographically ordered.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Trip is a named container for expenses.
// LastUsedCurrency is nil until the first expense is recorded under the trip.
type Trip struct {
	ID               int64
	Name             string
	LastUsedCurrency *string
	CreatedAt        time.Time
	LastModified     time.Time
}

// DefaultCurrency returns the currency a new expense on this trip should use
// when the caller does not pick one.
func (t Trip) DefaultCurrency() string {
	if t.LastUsedCurrency != nil && *t.LastUsedCurrency != "" {
		return *t.LastUsedCurrency
	}
	return FallbackCurrency
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored trip timestamp. RFC 3339 values written by
// other tools are accepted too.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
