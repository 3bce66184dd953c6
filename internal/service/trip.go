// Package service contains the business logic for the Travel Expenses API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/internal/repo"
)

// TripService implements business logic for Trip operations.
// It holds a Transactor because deleting a trip removes its expenses in the
// same unit of work.
type TripService struct {
	trips repo.TripRepo
	tx    repo.Transactor
}

// NewTripService constructs a TripService backed by the provided repo and transactor.
func NewTripService(trips repo.TripRepo, tx repo.Transactor) *TripService {
	return &TripService{trips: trips, tx: tx}
}

// Create validates and persists a new trip.
// Returns domain.ErrValidation if the name is blank after trimming.
func (s *TripService) Create(ctx context.Context, name string) (domain.Trip, error) {
	name, err := validateTripName(name)
	if err != nil {
		return domain.Trip{}, err
	}
	trip, err := s.trips.Create(ctx, name)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	slog.InfoContext(ctx, "trip created", "trip_id", trip.ID)
	return trip, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns all trips, most recently created first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	return nonNil(trips), nil
}

// ListByIDs returns the trips with the given ids, most recently created first.
func (s *TripService) ListByIDs(ctx context.Context, ids []int64) ([]domain.Trip, error) {
	trips, err := s.trips.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByIDs: %w", err)
	}
	return nonNil(trips), nil
}

// ListCreatedInRange returns the trips created on a day inside r.
func (s *TripService) ListCreatedInRange(ctx context.Context, r domain.DateRange) ([]domain.Trip, error) {
	trips, err := s.trips.ListCreatedInRange(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListCreatedInRange: %w", err)
	}
	return nonNil(trips), nil
}

// Rename validates and stores a new trip name.
func (s *TripService) Rename(ctx context.Context, id int64, name string) (domain.Trip, error) {
	name, err := validateTripName(name)
	if err != nil {
		return domain.Trip{}, err
	}
	trip, err := s.trips.UpdateName(ctx, id, name)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Rename: %w", err)
	}
	slog.InfoContext(ctx, "trip renamed", "trip_id", id)
	return trip, nil
}

// SetCurrency records the currency the next expense on the trip defaults to.
// Returns domain.ErrValidation for a code outside domain.Currencies.
func (s *TripService) SetCurrency(ctx context.Context, id int64, code string) (domain.Trip, error) {
	code, err := domain.NormalizeCurrency(code)
	if err != nil {
		return domain.Trip{}, err
	}
	trip, err := s.trips.UpdateCurrency(ctx, id, code)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.SetCurrency: %w", err)
	}
	return trip, nil
}

// Delete removes a trip and all of its expenses atomically.
// Returns domain.ErrNotFound if the trip does not exist; nothing is removed then.
func (s *TripService) Delete(ctx context.Context, id int64) error {
	var removed int64
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		n, err := r.Expenses.DeleteByTrip(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return r.Trips.Delete(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	slog.InfoContext(ctx, "trip deleted", "trip_id", id, "expenses_removed", removed)
	return nil
}

// validateTripName trims name and rejects it when nothing is left.
func validateTripName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return name, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
