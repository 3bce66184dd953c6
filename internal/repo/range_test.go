package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// The dashboard picks trips through the dates of their expenses; export picks
// trips through their creation date. A trip created inside the window whose
// expenses fall outside it belongs to the second set only.
func TestRanges_DashboardAndExportDiverge(t *testing.T) {
	r, clock := newTestRepos(t)
	ctx := context.Background()

	clock.now = time.Date(2025, 6, 5, 12, 0, 0, 0, time.UTC)
	trip, err := r.Trips.Create(ctx, "June planning")
	require.NoError(t, err)

	e := expenseFixture(trip.ID)
	e.Date = date(2025, 7, 20)
	_, err = r.Expenses.Create(ctx, e)
	require.NoError(t, err)

	june, err := domain.NewDateRange(date(2025, 6, 1), date(2025, 6, 30))
	require.NoError(t, err)

	expenses, err := r.Expenses.ListInRange(ctx, june)
	require.NoError(t, err)
	assert.Empty(t, expenses, "no expense is dated in June")

	created, err := r.Trips.ListCreatedInRange(ctx, june)
	require.NoError(t, err)
	require.Len(t, created, 1, "the trip was created in June")
	assert.Equal(t, trip.ID, created[0].ID)

	july, err := domain.NewDateRange(date(2025, 7, 1), date(2025, 7, 31))
	require.NoError(t, err)

	expenses, err = r.Expenses.ListInRange(ctx, july)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, trip.ID, expenses[0].TripID)

	created, err = r.Trips.ListCreatedInRange(ctx, july)
	require.NoError(t, err)
	assert.Empty(t, created)
}
