package handler

import (
	"bytes"
	"encoding/json"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// Trip is the JSON representation of a trip.
type Trip struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	LastUsedCurrency *string   `json:"last_used_currency"`
	DefaultCurrency  string    `json:"default_currency"`
	CreatedAt        time.Time `json:"created_at"`
	LastModified     time.Time `json:"last_modified"`
}

// Expense is the JSON representation of an expense.
// Amount is a string with exactly two fractional digits so clients never see
// binary floating point artefacts.
type Expense struct {
	ID       int64              `json:"id"`
	TripID   int64              `json:"trip_id"`
	Category string             `json:"category"`
	Location string             `json:"location"`
	Amount   string             `json:"amount"`
	Date     openapi_types.Date `json:"date"`
	Details  string             `json:"details"`
	Currency string             `json:"currency"`
}

// Currency is one entry of GET /currencies.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TripSpending is one trip's totals inside a dashboard window.
type TripSpending struct {
	Trip   Trip              `json:"trip"`
	Totals map[string]string `json:"totals"`
}

// Dashboard is the JSON representation of domain.Dashboard.
type Dashboard struct {
	Start        openapi_types.Date `json:"start"`
	End          openapi_types.Date `json:"end"`
	ExpenseCount int                `json:"expense_count"`
	Totals       map[string]string  `json:"totals"`
	Trips        []TripSpending     `json:"trips"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// TripRequest is the body of POST /trips and PATCH /trips/{tripId}.
type TripRequest struct {
	Name string `json:"name"`
}

// CurrencyRequest is the body of PUT /trips/{tripId}/currency.
type CurrencyRequest struct {
	Currency string `json:"currency"`
}

// ExpenseRequest is the body of POST /trips/{tripId}/expenses and
// PUT /expenses/{expenseId}. Amount accepts a JSON number or a numeric string.
// An empty currency means "use the default".
type ExpenseRequest struct {
	Category string             `json:"category"`
	Location string             `json:"location"`
	Amount   AmountInput        `json:"amount"`
	Date     openapi_types.Date `json:"date"`
	Details  string             `json:"details"`
	Currency string             `json:"currency"`
}

// AmountInput holds the raw text of a JSON amount, given either as a number or
// as a string. It never fails to decode, so every malformed amount reaches
// domain.ParseAmount and is reported as a validation error.
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler.
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
	default:
		*a = AmountInput(data)
	}
	return nil
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into its JSON form.
func tripToResponse(t domain.Trip) Trip {
	return Trip{
		ID:               t.ID,
		Name:             t.Name,
		LastUsedCurrency: t.LastUsedCurrency,
		DefaultCurrency:  t.DefaultCurrency(),
		CreatedAt:        t.CreatedAt,
		LastModified:     t.LastModified,
	}
}

func tripsToResponse(trips []domain.Trip) []Trip {
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}

// expenseToResponse converts a domain.Expense into its JSON form.
func expenseToResponse(e domain.Expense) Expense {
	return Expense{
		ID:       e.ID,
		TripID:   e.TripID,
		Category: e.Category,
		Location: e.Location,
		Amount:   domain.FormatAmount(e.Amount),
		Date:     openapi_types.Date{Time: e.Date},
		Details:  e.Details,
		Currency: e.Currency,
	}
}

func expensesToResponse(expenses []domain.Expense) []Expense {
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = expenseToResponse(e)
	}
	return out
}

// requestToExpense converts an ExpenseRequest into a domain.Expense.
// The amount is parsed here because it arrives as text; every other rule is
// enforced by the service.
func requestToExpense(body ExpenseRequest) (domain.Expense, error) {
	amount, err := domain.ParseAmount(string(body.Amount))
	if err != nil {
		return domain.Expense{}, err
	}
	return domain.Expense{
		Category: body.Category,
		Location: body.Location,
		Amount:   amount,
		Date:     body.Date.Time,
		Details:  body.Details,
		Currency: body.Currency,
	}, nil
}

// dashboardToResponse converts a domain.Dashboard into its JSON form.
func dashboardToResponse(d domain.Dashboard) Dashboard {
	trips := make([]TripSpending, len(d.Trips))
	for i, ts := range d.Trips {
		trips[i] = TripSpending{Trip: tripToResponse(ts.Trip), Totals: ts.Totals.Formatted()}
	}
	return Dashboard{
		Start:        openapi_types.Date{Time: d.Range.Start},
		End:          openapi_types.Date{Time: d.Range.End},
		ExpenseCount: d.ExpenseCount,
		Totals:       d.Totals.Formatted(),
		Trips:        trips,
	}
}
