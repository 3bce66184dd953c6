package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-expenses/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpenseRepo_Create_RoundTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Portugal")
	require.NoError(t, err)

	input := expenseFixture(trip.ID)
	created, err := r.Expenses.Create(ctx, input)
	require.NoError(t, err)

	got, err := r.Expenses.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Positive(t, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, input.Category, got.Category)
	assert.Equal(t, input.Location, got.Location)
	assert.True(t, input.Amount.Equal(got.Amount), "amount %s != %s", input.Amount, got.Amount)
	assert.Equal(t, "12.50", domain.FormatAmount(got.Amount))
	assert.True(t, input.Date.Equal(got.Date))
	assert.Equal(t, input.Details, got.Details)
	assert.Equal(t, input.Currency, got.Currency)
}

func TestExpenseRepo_Create_EmptyOptionalFields(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Quick trip")
	require.NoError(t, err)

	input := expenseFixture(trip.ID)
	input.Location = ""
	input.Details = ""

	created, err := r.Expenses.Create(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, created.Location)
	assert.Empty(t, created.Details)
}

func TestExpenseRepo_Create_UnknownTrip(t *testing.T) {
	r, _ := newTestRepos(t)

	_, err := r.Expenses.Create(context.Background(), expenseFixture(999))

	assert.ErrorIs(t, err, domain.ErrWriteFailed, "foreign key must reject a missing trip")
}

func TestExpenseRepo_GetByID_NotFound(t *testing.T) {
	r, _ := newTestRepos(t)

	_, err := r.Expenses.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseRepo_ListByTrip_OrderedByDateDesc(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Italy")
	require.NoError(t, err)
	other, err := r.Trips.Create(ctx, "Elsewhere")
	require.NoError(t, err)

	for _, d := range []time.Time{date(2025, 6, 3), date(2025, 6, 1), date(2025, 6, 5)} {
		e := expenseFixture(trip.ID)
		e.Date = d
		_, err := r.Expenses.Create(ctx, e)
		require.NoError(t, err)
	}
	_, err = r.Expenses.Create(ctx, expenseFixture(other.ID))
	require.NoError(t, err)

	got, err := r.Expenses.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 3, "other trips' expenses are excluded")
	assert.Equal(t, "2025-06-05", domain.FormatDate(got[0].Date))
	assert.Equal(t, "2025-06-03", domain.FormatDate(got[1].Date))
	assert.Equal(t, "2025-06-01", domain.FormatDate(got[2].Date))
}

func TestExpenseRepo_ListByTrip_Empty(t *testing.T) {
	r, _ := newTestRepos(t)

	got, err := r.Expenses.ListByTrip(context.Background(), 5)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExpenseRepo_ListInRange(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	a, err := r.Trips.Create(ctx, "A")
	require.NoError(t, err)
	b, err := r.Trips.Create(ctx, "B")
	require.NoError(t, err)

	fixtures := []struct {
		trip int64
		day  time.Time
	}{
		{a.ID, date(2025, 5, 31)},
		{a.ID, date(2025, 6, 1)},
		{b.ID, date(2025, 6, 10)},
		{b.ID, date(2025, 6, 11)},
	}
	for _, f := range fixtures {
		e := expenseFixture(f.trip)
		e.Date = f.day
		_, err := r.Expenses.Create(ctx, e)
		require.NoError(t, err)
	}

	rng, err := domain.NewDateRange(date(2025, 6, 1), date(2025, 6, 10))
	require.NoError(t, err)

	got, err := r.Expenses.ListInRange(ctx, rng)

	require.NoError(t, err)
	require.Len(t, got, 2, "both boundaries are inclusive, both trips are searched")
	assert.Equal(t, b.ID, got[0].TripID)
	assert.Equal(t, a.ID, got[1].TripID)
}

func TestExpenseRepo_Update(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Spain")
	require.NoError(t, err)
	created, err := r.Expenses.Create(ctx, expenseFixture(trip.ID))
	require.NoError(t, err)

	created.Category = "Transport"
	created.Location = "Madrid"
	created.Amount = decimal.RequireFromString("40.05")
	created.Date = date(2025, 7, 4)
	created.Details = ""
	created.Currency = "USD"

	updated, err := r.Expenses.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, trip.ID, updated.TripID)
	assert.Equal(t, "Transport", updated.Category)
	assert.Equal(t, "Madrid", updated.Location)
	assert.Equal(t, "40.05", domain.FormatAmount(updated.Amount))
	assert.Equal(t, "2025-07-04", domain.FormatDate(updated.Date))
	assert.Empty(t, updated.Details)
	assert.Equal(t, "USD", updated.Currency)
}

func TestExpenseRepo_Update_KeepsTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Owner")
	require.NoError(t, err)
	other, err := r.Trips.Create(ctx, "Other")
	require.NoError(t, err)
	created, err := r.Expenses.Create(ctx, expenseFixture(trip.ID))
	require.NoError(t, err)

	created.TripID = other.ID
	updated, err := r.Expenses.Update(ctx, created)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, updated.TripID, "TripID is not a mutable field")
}

func TestExpenseRepo_Update_NotFound(t *testing.T) {
	r, _ := newTestRepos(t)

	ghost := expenseFixture(1)
	ghost.ID = 404

	_, err := r.Expenses.Update(context.Background(), ghost)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpenseRepo_Delete(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Trip")
	require.NoError(t, err)
	created, err := r.Expenses.Create(ctx, expenseFixture(trip.ID))
	require.NoError(t, err)

	require.NoError(t, r.Expenses.Delete(ctx, created.ID))

	_, err = r.Expenses.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, r.Expenses.Delete(ctx, created.ID), domain.ErrNotFound, "second delete")
}

func TestExpenseRepo_DeleteByTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Trip")
	require.NoError(t, err)
	keep, err := r.Trips.Create(ctx, "Keep")
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := r.Expenses.Create(ctx, expenseFixture(trip.ID))
		require.NoError(t, err)
	}
	kept, err := r.Expenses.Create(ctx, expenseFixture(keep.ID))
	require.NoError(t, err)

	n, err := r.Expenses.DeleteByTrip(ctx, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	_, err = r.Expenses.GetByID(ctx, kept.ID)
	assert.NoError(t, err, "other trips' expenses survive")
}

func TestExpenseRepo_Create_LargeAmountsRoundTrip(t *testing.T) {
	r, _ := newTestRepos(t)
	ctx := context.Background()

	trip, err := r.Trips.Create(ctx, "Expensive")
	require.NoError(t, err)

	amounts := []decimal.Decimal{
		domain.MaxAmount,
		decimal.RequireFromString("9999999999999.01"),
		decimal.RequireFromString("8796093022207.99"),
		decimal.RequireFromString("1234567890123.45"),
		decimal.RequireFromString("0.01"),
	}
	for _, amount := range amounts {
		e := expenseFixture(trip.ID)
		e.Amount = amount
		created, err := r.Expenses.Create(ctx, e)
		require.NoError(t, err)

		got, err := r.Expenses.GetByID(ctx, created.ID)

		require.NoError(t, err)
		assert.True(t, amount.Equal(got.Amount), "amount %s came back as %s", amount, got.Amount)
	}
}
