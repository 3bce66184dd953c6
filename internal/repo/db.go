// Package repo contains all database access logic for the Travel Expenses backend.
// Each resource has its own file with an interface and a SQLite implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// DBTX is the minimal interface satisfied by both *sql.DB and *sql.Tx.
// Accepting it instead of *sql.DB lets the Transactor hand the same repo
// implementations a transaction, and lets tests run repos inside one.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Option configures a repository.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used for trip timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// scanner is satisfied by both *sql.Row and *sql.Rows, allowing the scan
// helpers to be reused for QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// readErr wraps a failed read. domain.ErrNotFound passes through untouched so
// callers can tell "no row" from "the query broke".
func readErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if missingSchema(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrQueryFailed, err)
}

// writeErr wraps a failed insert, update, or delete.
func writeErr(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if missingSchema(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrWriteFailed, err)
}

// notFound maps sql.ErrNoRows to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// missingSchema reports whether err comes from querying a table that was never
// created, which happens when EnsureSchema failed at startup.
func missingSchema(err error) bool {
	return strings.Contains(err.Error(), "no such table")
}
