// Package summary groups expenses by currency, optionally per trip, and sums
// their amounts. Functions here are pure: no I/O, no mutation of the input.
// Currencies are never converted; three currencies in a window give three totals.
package summary

import (
	"github.com/pkordes/travel-expenses/internal/domain"
)

// ByCurrency sums amounts per currency across all expenses.
// An expense without a currency is counted under domain.FallbackCurrency.
func ByCurrency(expenses []domain.Expense) domain.CurrencyTotals {
	totals := domain.CurrencyTotals{}
	for _, e := range expenses {
		totals.Add(bucket(e), e.Amount)
	}
	return totals
}

// ByTrip sums amounts per currency for every trip that appears in expenses.
func ByTrip(expenses []domain.Expense) map[int64]domain.CurrencyTotals {
	out := make(map[int64]domain.CurrencyTotals)
	for _, e := range expenses {
		totals, ok := out[e.TripID]
		if !ok {
			totals = domain.CurrencyTotals{}
			out[e.TripID] = totals
		}
		totals.Add(bucket(e), e.Amount)
	}
	return out
}

// TripIDs returns the distinct trip ids referenced by expenses, in order of
// first appearance.
func TripIDs(expenses []domain.Expense) []int64 {
	seen := make(map[int64]struct{}, len(expenses))
	ids := []int64{}
	for _, e := range expenses {
		if _, ok := seen[e.TripID]; ok {
			continue
		}
		seen[e.TripID] = struct{}{}
		ids = append(ids, e.TripID)
	}
	return ids
}

// Dashboard assembles the dashboard view from the expenses dated inside r and
// the trips they reference. Trips are kept in the order given; a trip with no
// expense in the slice is left out, so the result lists exactly the trips
// with spending in the window.
func Dashboard(r domain.DateRange, expenses []domain.Expense, trips []domain.Trip) domain.Dashboard {
	perTrip := ByTrip(expenses)

	d := domain.Dashboard{
		Range:        r,
		ExpenseCount: len(expenses),
		Totals:       ByCurrency(expenses),
		Trips:        []domain.TripSpending{},
	}
	for _, t := range trips {
		totals, ok := perTrip[t.ID]
		if !ok {
			continue
		}
		d.Trips = append(d.Trips, domain.TripSpending{Trip: t, Totals: totals})
	}
	return d
}

func bucket(e domain.Expense) string {
	if e.Currency == "" {
		return domain.FallbackCurrency
	}
	return e.Currency
}
