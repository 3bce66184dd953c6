package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create      func(ctx context.Context, name string) (domain.Trip, error)
	getByID     func(ctx context.Context, id int64) (domain.Trip, error)
	list        func(ctx context.Context) ([]domain.Trip, error)
	rename      func(ctx context.Context, id int64, name string) (domain.Trip, error)
	setCurrency func(ctx context.Context, id int64, code string) (domain.Trip, error)
	delete      func(ctx context.Context, id int64) error
}

func (m *mockTripServicer) Create(ctx context.Context, name string) (domain.Trip, error) {
	return m.create(ctx, name)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Rename(ctx context.Context, id int64, name string) (domain.Trip, error) {
	return m.rename(ctx, id, name)
}
func (m *mockTripServicer) SetCurrency(ctx context.Context, id int64, code string) (domain.Trip, error) {
	return m.setCurrency(ctx, id, code)
}
func (m *mockTripServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// mockExpenseServicer is a test double for handler.ExpenseServicer.
type mockExpenseServicer struct {
	create      func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	getByID     func(ctx context.Context, id int64) (domain.Expense, error)
	listByTrip  func(ctx context.Context, tripID int64) ([]domain.Expense, error)
	listInRange func(ctx context.Context, r domain.DateRange) ([]domain.Expense, error)
	update      func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	delete      func(ctx context.Context, id int64) error
}

func (m *mockExpenseServicer) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseServicer) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseServicer) ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockExpenseServicer) ListInRange(ctx context.Context, r domain.DateRange) ([]domain.Expense, error) {
	return m.listInRange(ctx, r)
}
func (m *mockExpenseServicer) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, e)
}
func (m *mockExpenseServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// mockDashboardServicer is a test double for handler.DashboardServicer.
type mockDashboardServicer struct {
	summary func(ctx context.Context, r domain.DateRange) (domain.Dashboard, error)
}

func (m *mockDashboardServicer) Summary(ctx context.Context, r domain.DateRange) (domain.Dashboard, error) {
	return m.summary(ctx, r)
}

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	tripsInRange func(ctx context.Context, r domain.DateRange) ([]domain.Trip, error)
	build        func(ctx context.Context, tripIDs []int64) (domain.ExportFile, error)
}

func (m *mockExportServicer) TripsInRange(ctx context.Context, r domain.DateRange) ([]domain.Trip, error) {
	return m.tripsInRange(ctx, r)
}
func (m *mockExportServicer) Build(ctx context.Context, tripIDs []int64) (domain.ExportFile, error) {
	return m.build(ctx, tripIDs)
}

// mockHealthChecker is a test double for handler.HealthChecker.
type mockHealthChecker struct {
	err error
}

func (m *mockHealthChecker) Check(context.Context) error { return m.err }

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer      = (*mockTripServicer)(nil)
	_ handler.ExpenseServicer   = (*mockExpenseServicer)(nil)
	_ handler.DashboardServicer = (*mockDashboardServicer)(nil)
	_ handler.ExportServicer    = (*mockExportServicer)(nil)
	_ handler.HealthChecker     = (*mockHealthChecker)(nil)
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into a chi router.
// This mirrors exactly how main.go wires it in production.
func newHTTPHandler(
	trips handler.TripServicer,
	expenses handler.ExpenseServicer,
	dashboard handler.DashboardServicer,
	export handler.ExportServicer,
) http.Handler {
	return handler.Handler(handler.NewServer(trips, expenses, dashboard, export, nil))
}

func tripFixture() domain.Trip {
	eur := "EUR"
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	return domain.Trip{
		ID:               7,
		Name:             "Summer Tour",
		LastUsedCurrency: &eur,
		CreatedAt:        created,
		LastModified:     created,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, body *bytes.Buffer) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}
