package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/internal/repo"
)

// ExpenseService implements business logic for Expense operations.
// Writes also refresh the owning trip's last-used currency, inside the same
// transaction as the expense row.
type ExpenseService struct {
	trips    repo.TripRepo
	expenses repo.ExpenseRepo
	tx       repo.Transactor
}

// NewExpenseService constructs an ExpenseService backed by the provided repos.
func NewExpenseService(trips repo.TripRepo, expenses repo.ExpenseRepo, tx repo.Transactor) *ExpenseService {
	return &ExpenseService{trips: trips, expenses: expenses, tx: tx}
}

// Create validates the expense, then inserts it under e.TripID and records its
// currency on the trip. An empty currency defaults to the trip's last-used one.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *ExpenseService) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	e, err := normalizeExpense(e)
	if err != nil {
		return domain.Expense{}, err
	}

	var created domain.Expense
	err = s.tx.InTx(ctx, func(r repo.Repos) error {
		trip, err := r.Trips.GetByID(ctx, e.TripID)
		if err != nil {
			return err
		}
		if e.Currency == "" {
			e.Currency = trip.DefaultCurrency()
		}
		created, err = r.Expenses.Create(ctx, e)
		if err != nil {
			return err
		}
		_, err = r.Trips.UpdateCurrency(ctx, trip.ID, created.Currency)
		return err
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Create: %w", err)
	}
	slog.InfoContext(ctx, "expense created",
		"expense_id", created.ID, "trip_id", created.TripID, "currency", created.Currency)
	return created, nil
}

// GetByID returns a single expense by ID.
func (s *ExpenseService) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.GetByID: %w", err)
	}
	return e, nil
}

// ListByTrip returns a trip's expenses, newest expense date first.
// Returns domain.ErrNotFound for an unknown trip so callers can tell it
// apart from a trip without expenses.
func (s *ExpenseService) ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTrip: %w", err)
	}
	expenses, err := s.expenses.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListByTrip: %w", err)
	}
	return nonNil(expenses), nil
}

// ListInRange returns the expenses of every trip dated inside r.
func (s *ExpenseService) ListInRange(ctx context.Context, r domain.DateRange) ([]domain.Expense, error) {
	expenses, err := s.expenses.ListInRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("service.ExpenseService.ListInRange: %w", err)
	}
	return nonNil(expenses), nil
}

// Update replaces the mutable fields of the expense e.ID. The owning trip is
// never changed; e.TripID is ignored. An empty currency keeps the stored one.
// The trip's last-used currency follows the edited expense.
func (s *ExpenseService) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	e, err := normalizeExpense(e)
	if err != nil {
		return domain.Expense{}, err
	}

	var updated domain.Expense
	err = s.tx.InTx(ctx, func(r repo.Repos) error {
		existing, err := r.Expenses.GetByID(ctx, e.ID)
		if err != nil {
			return err
		}
		e.TripID = existing.TripID
		if e.Currency == "" {
			e.Currency = existing.Currency
		}
		updated, err = r.Expenses.Update(ctx, e)
		if err != nil {
			return err
		}
		_, err = r.Trips.UpdateCurrency(ctx, updated.TripID, updated.Currency)
		return err
	})
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.ExpenseService.Update: %w", err)
	}
	slog.InfoContext(ctx, "expense updated", "expense_id", updated.ID, "trip_id", updated.TripID)
	return updated, nil
}

// Delete removes an expense by ID.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ExpenseService.Delete: %w", err)
	}
	slog.InfoContext(ctx, "expense deleted", "expense_id", id)
	return nil
}

// normalizeExpense trims text fields and enforces the rules shared by Create
// and Update:
//   - Category must be non-empty.
//   - Amount must be non-negative with at most two decimal places.
//   - Date must be set.
//   - Currency, when given, must be a supported code.
func normalizeExpense(e domain.Expense) (domain.Expense, error) {
	e.Category = strings.TrimSpace(e.Category)
	e.Location = strings.TrimSpace(e.Location)
	e.Details = strings.TrimSpace(e.Details)

	if e.Category == "" {
		return domain.Expense{}, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if err := domain.ValidateAmount(e.Amount); err != nil {
		return domain.Expense{}, err
	}
	if e.Date.IsZero() {
		return domain.Expense{}, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if strings.TrimSpace(e.Currency) != "" {
		code, err := domain.NormalizeCurrency(e.Currency)
		if err != nil {
			return domain.Expense{}, err
		}
		e.Currency = code
	} else {
		e.Currency = ""
	}
	return e, nil
}
