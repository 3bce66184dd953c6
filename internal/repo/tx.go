package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// Repos bundles the repositories bound to one connection or transaction.
type Repos struct {
	Trips    TripRepo
	Expenses ExpenseRepo
}

// New builds a Repos over db.
func New(db DBTX, opts ...Option) Repos {
	return Repos{
		Trips:    NewTripRepo(db, opts...),
		Expenses: NewExpenseRepo(db),
	}
}

// Transactor runs a unit of work atomically.
// Services depend on this interface so multi-statement operations (trip
// delete, expense write plus currency hint) either fully apply or not at all.
type Transactor interface {
	// InTx calls fn with repos bound to a fresh transaction. The transaction
	// commits when fn returns nil and rolls back when it returns an error or panics.
	InTx(ctx context.Context, fn func(r Repos) error) error
}

type sqlTransactor struct {
	db   *sql.DB
	opts []Option
}

// NewTransactor constructs a Transactor over the store's *sql.DB.
// Options are forwarded to the repos created for each transaction.
func NewTransactor(db *sql.DB, opts ...Option) Transactor {
	return &sqlTransactor{db: db, opts: opts}
}

// InTx begins a transaction, runs fn, and commits or rolls back.
func (t *sqlTransactor) InTx(ctx context.Context, fn func(r Repos) error) (err error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repo.Transactor.InTx: begin: %w: %w", domain.ErrWriteFailed, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(New(tx, t.opts...)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("repo.Transactor.InTx: commit: %w: %w", domain.ErrWriteFailed, err)
	}
	return nil
}
