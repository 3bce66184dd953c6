package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/internal/export"
	"github.com/pkordes/travel-expenses/internal/repo"
)

// exportFetchLimit caps how many per-trip expense queries run at once.
const exportFetchLimit = 4

// ExportService assembles a flat export of the expenses of selected trips.
type ExportService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
	now      func() time.Time
}

// NewExportService constructs an ExportService backed by the provided repos.
// now dates the export file name; nil means time.Now.
func NewExportService(trips repo.TripRepo, expenses repo.ExpenseRepo, now func() time.Time) *ExportService {
	if now == nil {
		now = time.Now
	}
	return &ExportService{trips: trips, expenses: expenses, now: now}
}

// TripsInRange lists the trips a user can pick for export: those created on
// a day inside r. This differs from the dashboard, which selects trips by
// expense date.
func (s *ExportService) TripsInRange(ctx context.Context, r domain.DateRange) ([]domain.Trip, error) {
	trips, err := s.trips.ListCreatedInRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.TripsInRange: %w", err)
	}
	return nonNil(trips), nil
}

// Build returns one ExportRow per expense of the selected trips.
// Rows are grouped by trip in selection order; within a trip they keep the
// repo's newest-first order. The file is named after the first selected trip.
//
// Returns domain.ErrValidation for an empty selection, domain.ErrNotFound if
// a selected trip does not exist, and domain.ErrEmptyExport when the trips
// have no expenses at all.
func (s *ExportService) Build(ctx context.Context, tripIDs []int64) (domain.ExportFile, error) {
	ids := distinct(tripIDs)
	if len(ids) == 0 {
		return domain.ExportFile{}, fmt.Errorf("%w: select at least one trip", domain.ErrValidation)
	}

	trips, err := s.trips.ListByIDs(ctx, ids)
	if err != nil {
		return domain.ExportFile{}, fmt.Errorf("service.ExportService.Build: %w", err)
	}
	byID := make(map[int64]domain.Trip, len(trips))
	for _, t := range trips {
		byID[t.ID] = t
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return domain.ExportFile{}, fmt.Errorf("service.ExportService.Build: trip %d: %w", id, domain.ErrNotFound)
		}
	}

	perTrip := make([][]domain.Expense, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(exportFetchLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			expenses, err := s.expenses.ListByTrip(gctx, id)
			if err != nil {
				return err
			}
			perTrip[i] = expenses
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.ExportFile{}, fmt.Errorf("service.ExportService.Build: %w", err)
	}

	var all []domain.Expense
	for _, expenses := range perTrip {
		all = append(all, expenses...)
	}
	if len(all) == 0 {
		return domain.ExportFile{}, fmt.Errorf("service.ExportService.Build: %w", domain.ErrEmptyExport)
	}

	file := domain.ExportFile{
		ID:       uuid.New(),
		FileName: export.FileName(byID[ids[0]].Name, s.now().UTC()),
		Rows:     export.Rows(all),
	}
	slog.InfoContext(ctx, "export built",
		"export_id", file.ID, "trips", len(ids), "rows", len(file.Rows), "file", file.FileName)
	return file, nil
}

// distinct drops repeated ids, keeping the first occurrence.
func distinct(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
