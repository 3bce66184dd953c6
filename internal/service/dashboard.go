package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/internal/repo"
	"github.com/pkordes/travel-expenses/internal/summary"
)

// DashboardService aggregates spending over a date window.
type DashboardService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
}

// NewDashboardService constructs a DashboardService backed by the provided repos.
func NewDashboardService(trips repo.TripRepo, expenses repo.ExpenseRepo) *DashboardService {
	return &DashboardService{trips: trips, expenses: expenses}
}

// Summary returns totals per currency for expenses dated inside r, plus a
// per-trip breakdown. A trip appears only when at least one of its expenses
// falls in the window, regardless of when the trip was created.
func (s *DashboardService) Summary(ctx context.Context, r domain.DateRange) (domain.Dashboard, error) {
	expenses, err := s.expenses.ListInRange(ctx, r)
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("service.DashboardService.Summary: %w", err)
	}

	trips, err := s.trips.ListByIDs(ctx, summary.TripIDs(expenses))
	if err != nil {
		return domain.Dashboard{}, fmt.Errorf("service.DashboardService.Summary: %w", err)
	}

	return summary.Dashboard(r, expenses, trips), nil
}
