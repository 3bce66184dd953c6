package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CurrencyTotals maps a currency code to the summed amount in that currency.
// Amounts in different currencies are never combined.
type CurrencyTotals map[string]decimal.Decimal

// Add accumulates amount into the bucket for currency.
func (c CurrencyTotals) Add(currency string, amount decimal.Decimal) {
	c[currency] = c[currency].Add(amount)
}

// Currencies returns the bucket keys in alphabetical order.
func (c CurrencyTotals) Currencies() []string {
	codes := make([]string, 0, len(c))
	for code := range c {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Formatted renders every bucket with two fractional digits.
func (c CurrencyTotals) Formatted() map[string]string {
	out := make(map[string]string, len(c))
	for code, amount := range c {
		out[code] = FormatAmount(amount)
	}
	return out
}

// TripSpending is one trip's share of a dashboard window.
type TripSpending struct {
	Trip   Trip
	Totals CurrencyTotals
}

// Dashboard is the aggregated view of a date window: overall totals per
// currency plus a breakdown for every trip that has at least one expense
// dated inside the window.
type Dashboard struct {
	Range        DateRange
	ExpenseCount int
	Totals       CurrencyTotals
	Trips        []TripSpending
}
