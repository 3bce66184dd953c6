// Package handler implements the HTTP handlers for the Travel Expenses API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies. HandlerFromMux registers them on a chi router.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, name string) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Rename(ctx context.Context, id int64, name string) (domain.Trip, error)
	SetCurrency(ctx context.Context, id int64, code string) (domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// ExpenseServicer defines the business operations the expense handlers depend on.
type ExpenseServicer interface {
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)
	GetByID(ctx context.Context, id int64) (domain.Expense, error)
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error)
	ListInRange(ctx context.Context, r domain.DateRange) ([]domain.Expense, error)
	Update(ctx context.Context, e domain.Expense) (domain.Expense, error)
	Delete(ctx context.Context, id int64) error
}

// DashboardServicer aggregates spending over a date window.
type DashboardServicer interface {
	Summary(ctx context.Context, r domain.DateRange) (domain.Dashboard, error)
}

// ExportServicer discovers exportable trips and assembles export files.
type ExportServicer interface {
	TripsInRange(ctx context.Context, r domain.DateRange) ([]domain.Trip, error)
	Build(ctx context.Context, tripIDs []int64) (domain.ExportFile, error)
}

// HealthChecker reports whether the store is usable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// Server serves every API endpoint.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips     TripServicer
	expenses  ExpenseServicer
	dashboard DashboardServicer
	export    ExportServicer
	health    HealthChecker
	now       func() time.Time
}

// NewServer constructs the Server with all its dependencies.
// A nil health checker reports the service as always healthy.
func NewServer(
	trips TripServicer,
	expenses ExpenseServicer,
	dashboard DashboardServicer,
	export ExportServicer,
	health HealthChecker,
) *Server {
	return &Server{
		trips:     trips,
		expenses:  expenses,
		dashboard: dashboard,
		export:    export,
		health:    health,
		now:       time.Now,
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler(health HealthChecker) *Server {
	return NewServer(nil, nil, nil, nil, health)
}

// Handler registers all routes on a fresh chi router.
func Handler(s *Server) http.Handler {
	return HandlerFromMux(s, chi.NewRouter())
}

// HandlerFromMux registers all routes on r and returns it.
// Patterns are registered flat so chi's RoutePattern stays readable in logs
// and metrics labels.
func HandlerFromMux(s *Server, r chi.Router) http.Handler {
	r.Get("/healthz", s.GetHealth)
	r.Get("/currencies", s.ListCurrencies)

	r.Get("/trips", s.ListTrips)
	r.Post("/trips", s.CreateTrip)
	r.Get("/trips/{tripId}", s.GetTrip)
	r.Patch("/trips/{tripId}", s.RenameTrip)
	r.Delete("/trips/{tripId}", s.DeleteTrip)
	r.Put("/trips/{tripId}/currency", s.SetTripCurrency)
	r.Get("/trips/{tripId}/expenses", s.ListTripExpenses)
	r.Post("/trips/{tripId}/expenses", s.CreateExpense)

	r.Get("/expenses", s.ListExpensesInRange)
	r.Get("/expenses/{expenseId}", s.GetExpense)
	r.Put("/expenses/{expenseId}", s.UpdateExpense)
	r.Delete("/expenses/{expenseId}", s.DeleteExpense)

	r.Get("/dashboard", s.GetDashboard)

	r.Get("/export/trips", s.ListExportTrips)
	r.Get("/export", s.GetExport)

	return r
}
