package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete SQLite implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record, with the
	// store-assigned id and CreatedAt == LastModified.
	Create(ctx context.Context, name string) (domain.Trip, error)

	// GetByID retrieves a single trip by primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Trip, error)

	// List returns all trips ordered by creation time descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// ListByIDs returns the trips whose id is in ids, ordered by creation time
	// descending. An empty ids slice returns an empty result without querying.
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Trip, error)

	// ListCreatedInRange returns trips created on a day inside r (inclusive),
	// ordered by creation time descending.
	ListCreatedInRange(ctx context.Context, r domain.DateRange) ([]domain.Trip, error)

	// UpdateName rewrites the trip name and refreshes LastModified.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	UpdateName(ctx context.Context, id int64, name string) (domain.Trip, error)

	// UpdateCurrency rewrites the last-used currency and refreshes LastModified.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	UpdateCurrency(ctx context.Context, id int64, currency string) (domain.Trip, error)

	// Delete removes a trip by ID. The expenses foreign key cascades.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

const tripColumns = `tripId, tripName, tripLastUsedCurrency, tripDateCreated, tripLastModified`

// sqliteTripRepo is the SQLite implementation of TripRepo.
type sqliteTripRepo struct {
	db DBTX
	options
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass the store's *sql.DB; the Transactor passes a *sql.Tx.
func NewTripRepo(db DBTX, opts ...Option) TripRepo {
	return &sqliteTripRepo{db: db, options: newOptions(opts)}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *sqliteTripRepo) Create(ctx context.Context, name string) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (tripName, tripDateCreated, tripLastModified)
		VALUES (@name, @now, @now)
		RETURNING ` + tripColumns

	row := r.db.QueryRowContext(ctx, q,
		sql.Named("name", name),
		sql.Named("now", domain.FormatTimestamp(r.now())),
	)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, writeErr("repo.TripRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *sqliteTripRepo) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE tripId = @id`

	result, err := scanTrip(r.db.QueryRowContext(ctx, q, sql.Named("id", id)))
	if err != nil {
		return domain.Trip{}, readErr("repo.TripRepo.GetByID", err)
	}
	return result, nil
}

// List returns all trips, most recently created first.
func (r *sqliteTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		ORDER BY tripDateCreated DESC, tripId DESC`

	return r.query(ctx, "repo.TripRepo.List", q)
}

// ListByIDs returns the trips matching ids. The IN list is built with one
// placeholder per id; an empty list never reaches the database.
func (r *sqliteTripRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Trip, error) {
	if len(ids) == 0 {
		return []domain.Trip{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")
	q := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE tripId IN (` + placeholders + `)
		ORDER BY tripDateCreated DESC, tripId DESC`

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return r.query(ctx, "repo.TripRepo.ListByIDs", q, args...)
}

// ListCreatedInRange filters on the calendar-day prefix of tripDateCreated so
// a trip created late on the end date is still inside the range.
func (r *sqliteTripRepo) ListCreatedInRange(ctx context.Context, rng domain.DateRange) ([]domain.Trip, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE substr(tripDateCreated, 1, 10) BETWEEN @start AND @end
		ORDER BY tripDateCreated DESC, tripId DESC`

	return r.query(ctx, "repo.TripRepo.ListCreatedInRange", q,
		sql.Named("start", rng.StartString()),
		sql.Named("end", rng.EndString()),
	)
}

// UpdateName rewrites tripName and tripLastModified.
func (r *sqliteTripRepo) UpdateName(ctx context.Context, id int64, name string) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET tripName         = @name,
		    tripLastModified = @now
		WHERE tripId = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRowContext(ctx, q,
		sql.Named("id", id),
		sql.Named("name", name),
		sql.Named("now", domain.FormatTimestamp(r.now())),
	)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, writeErr("repo.TripRepo.UpdateName", err)
	}
	return result, nil
}

// UpdateCurrency rewrites tripLastUsedCurrency and tripLastModified.
func (r *sqliteTripRepo) UpdateCurrency(ctx context.Context, id int64, currency string) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET tripLastUsedCurrency = @currency,
		    tripLastModified     = @now
		WHERE tripId = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRowContext(ctx, q,
		sql.Named("id", id),
		sql.Named("currency", currency),
		sql.Named("now", domain.FormatTimestamp(r.now())),
	)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, writeErr("repo.TripRepo.UpdateCurrency", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *sqliteTripRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM trips WHERE tripId = @id`

	res, err := r.db.ExecContext(ctx, q, sql.Named("id", id))
	if err != nil {
		return writeErr("repo.TripRepo.Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return writeErr("repo.TripRepo.Delete", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// query runs a multi-row trip SELECT. It always returns a non-nil slice on
// success so "no rows" and "failed" stay distinguishable.
func (r *sqliteTripRepo) query(ctx context.Context, op, q string, args ...any) ([]domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, readErr(op, err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, readErr(op+": scan", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(op+": rows", err)
	}
	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
// It handles the nullable currency and the text timestamps.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t                 domain.Trip
		currency          sql.NullString
		created, modified string
	)

	if err := s.Scan(&t.ID, &t.Name, &currency, &created, &modified); err != nil {
		return domain.Trip{}, notFound(err)
	}

	if currency.Valid {
		c := currency.String
		t.LastUsedCurrency = &c
	}

	var err error
	if t.CreatedAt, err = domain.ParseTimestamp(created); err != nil {
		return domain.Trip{}, fmt.Errorf("parse tripDateCreated %q: %w", created, err)
	}
	if t.LastModified, err = domain.ParseTimestamp(modified); err != nil {
		return domain.Trip{}, fmt.Errorf("parse tripLastModified %q: %w", modified, err)
	}
	return t, nil
}
