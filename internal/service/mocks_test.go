package service_test

import (
	"context"

	"github.com/pkordes/travel-expenses/internal/domain"
	"github.com/pkordes/travel-expenses/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
type mockTripRepo struct {
	create             func(ctx context.Context, name string) (domain.Trip, error)
	getByID            func(ctx context.Context, id int64) (domain.Trip, error)
	list               func(ctx context.Context) ([]domain.Trip, error)
	listByIDs          func(ctx context.Context, ids []int64) ([]domain.Trip, error)
	listCreatedInRange func(ctx context.Context, r domain.DateRange) ([]domain.Trip, error)
	updateName         func(ctx context.Context, id int64, name string) (domain.Trip, error)
	updateCurrency     func(ctx context.Context, id int64, currency string) (domain.Trip, error)
	delete             func(ctx context.Context, id int64) error
}

func (m *mockTripRepo) Create(ctx context.Context, name string) (domain.Trip, error) {
	return m.create(ctx, name)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Trip, error) {
	return m.listByIDs(ctx, ids)
}
func (m *mockTripRepo) ListCreatedInRange(ctx context.Context, r domain.DateRange) ([]domain.Trip, error) {
	return m.listCreatedInRange(ctx, r)
}
func (m *mockTripRepo) UpdateName(ctx context.Context, id int64, name string) (domain.Trip, error) {
	return m.updateName(ctx, id, name)
}
func (m *mockTripRepo) UpdateCurrency(ctx context.Context, id int64, currency string) (domain.Trip, error) {
	return m.updateCurrency(ctx, id, currency)
}
func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// mockExpenseRepo is a hand-written test double for repo.ExpenseRepo.
type mockExpenseRepo struct {
	create       func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	getByID      func(ctx context.Context, id int64) (domain.Expense, error)
	listByTrip   func(ctx context.Context, tripID int64) ([]domain.Expense, error)
	listInRange  func(ctx context.Context, r domain.DateRange) ([]domain.Expense, error)
	update       func(ctx context.Context, e domain.Expense) (domain.Expense, error)
	delete       func(ctx context.Context, id int64) error
	deleteByTrip func(ctx context.Context, tripID int64) (int64, error)
}

func (m *mockExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.create(ctx, e)
}
func (m *mockExpenseRepo) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	return m.getByID(ctx, id)
}
func (m *mockExpenseRepo) ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	return m.listByTrip(ctx, tripID)
}
func (m *mockExpenseRepo) ListInRange(ctx context.Context, r domain.DateRange) ([]domain.Expense, error) {
	return m.listInRange(ctx, r)
}
func (m *mockExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	return m.update(ctx, e)
}
func (m *mockExpenseRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}
func (m *mockExpenseRepo) DeleteByTrip(ctx context.Context, tripID int64) (int64, error) {
	return m.deleteByTrip(ctx, tripID)
}

// mockTransactor runs fn directly against the mock repos and records whether
// the unit of work would have committed.
type mockTransactor struct {
	trips    *mockTripRepo
	expenses *mockExpenseRepo

	calls     int
	committed bool
}

func (m *mockTransactor) InTx(_ context.Context, fn func(r repo.Repos) error) error {
	m.calls++
	if err := fn(repo.Repos{Trips: m.trips, Expenses: m.expenses}); err != nil {
		return err
	}
	m.committed = true
	return nil
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo    = (*mockTripRepo)(nil)
	_ repo.ExpenseRepo = (*mockExpenseRepo)(nil)
	_ repo.Transactor  = (*mockTransactor)(nil)
)

func strPtr(s string) *string { return &s }
