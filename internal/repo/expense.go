package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// ExpenseRepo defines the persistence operations for Expenses.
type ExpenseRepo interface {
	// Create inserts a new expense and returns the persisted record with its
	// store-assigned id. The referenced trip must exist.
	Create(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// GetByID retrieves a single expense by primary key.
	// Returns domain.ErrNotFound if no expense with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Expense, error)

	// ListByTrip returns all expenses for a trip ordered by expense date descending.
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error)

	// ListInRange returns expenses of every trip dated inside r (inclusive),
	// ordered by expense date descending.
	ListInRange(ctx context.Context, r domain.DateRange) ([]domain.Expense, error)

	// Update overwrites category, location, amount, date, details and currency.
	// ID and TripID are never changed. Returns domain.ErrNotFound if no
	// expense with that ID exists.
	Update(ctx context.Context, e domain.Expense) (domain.Expense, error)

	// Delete removes an expense by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteByTrip removes every expense of a trip and reports how many went.
	DeleteByTrip(ctx context.Context, tripID int64) (int64, error)
}

const expenseColumns = `expenseId, tripId, expenseCategory, expenseLocation, expenseAmount,
	expenseDate, expenseDetails, expenseCurrency`

// sqliteExpenseRepo is the SQLite implementation of ExpenseRepo.
type sqliteExpenseRepo struct {
	db DBTX
}

// NewExpenseRepo constructs an ExpenseRepo backed by the provided db connection.
func NewExpenseRepo(db DBTX) ExpenseRepo {
	return &sqliteExpenseRepo{db: db}
}

// Create inserts a new expense row and returns the full persisted record.
func (r *sqliteExpenseRepo) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		INSERT INTO expenses (tripId, expenseCategory, expenseLocation, expenseAmount,
		                      expenseDate, expenseDetails, expenseCurrency)
		VALUES (@trip_id, @category, @location, @amount, @date, @details, @currency)
		RETURNING ` + expenseColumns

	args := append([]any{sql.Named("trip_id", e.TripID)}, expenseArgs(e)...)
	result, err := scanExpense(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return domain.Expense{}, writeErr("repo.ExpenseRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves an expense by primary key.
func (r *sqliteExpenseRepo) GetByID(ctx context.Context, id int64) (domain.Expense, error) {
	const q = `SELECT ` + expenseColumns + ` FROM expenses WHERE expenseId = @id`

	result, err := scanExpense(r.db.QueryRowContext(ctx, q, sql.Named("id", id)))
	if err != nil {
		return domain.Expense{}, readErr("repo.ExpenseRepo.GetByID", err)
	}
	return result, nil
}

// ListByTrip returns a trip's expenses, latest spend first.
func (r *sqliteExpenseRepo) ListByTrip(ctx context.Context, tripID int64) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE tripId = @trip_id
		ORDER BY expenseDate DESC, expenseId DESC`

	return r.query(ctx, "repo.ExpenseRepo.ListByTrip", q, sql.Named("trip_id", tripID))
}

// ListInRange returns expenses across all trips dated inside the range.
// expenseDate is stored as YYYY-MM-DD, so a text BETWEEN is a date comparison.
func (r *sqliteExpenseRepo) ListInRange(ctx context.Context, rng domain.DateRange) ([]domain.Expense, error) {
	const q = `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expenseDate BETWEEN @start AND @end
		ORDER BY expenseDate DESC, expenseId DESC`

	return r.query(ctx, "repo.ExpenseRepo.ListInRange", q,
		sql.Named("start", rng.StartString()),
		sql.Named("end", rng.EndString()),
	)
}

// Update overwrites the mutable fields of an expense and returns the updated record.
func (r *sqliteExpenseRepo) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	const q = `
		UPDATE expenses
		SET expenseCategory = @category,
		    expenseLocation = @location,
		    expenseAmount   = @amount,
		    expenseDate     = @date,
		    expenseDetails  = @details,
		    expenseCurrency = @currency
		WHERE expenseId = @id
		RETURNING ` + expenseColumns

	args := append([]any{sql.Named("id", e.ID)}, expenseArgs(e)...)
	result, err := scanExpense(r.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return domain.Expense{}, writeErr("repo.ExpenseRepo.Update", err)
	}
	return result, nil
}

// Delete removes an expense by primary key.
func (r *sqliteExpenseRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM expenses WHERE expenseId = @id`

	res, err := r.db.ExecContext(ctx, q, sql.Named("id", id))
	if err != nil {
		return writeErr("repo.ExpenseRepo.Delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return writeErr("repo.ExpenseRepo.Delete", err)
	}
	if n == 0 {
		return fmt.Errorf("repo.ExpenseRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// DeleteByTrip removes all expenses referencing tripID.
func (r *sqliteExpenseRepo) DeleteByTrip(ctx context.Context, tripID int64) (int64, error) {
	const q = `DELETE FROM expenses WHERE tripId = @trip_id`

	res, err := r.db.ExecContext(ctx, q, sql.Named("trip_id", tripID))
	if err != nil {
		return 0, writeErr("repo.ExpenseRepo.DeleteByTrip", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, writeErr("repo.ExpenseRepo.DeleteByTrip", err)
	}
	return n, nil
}

func (r *sqliteExpenseRepo) query(ctx context.Context, op, q string, args ...any) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, readErr(op, err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, readErr(op+": scan", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(op+": rows", err)
	}
	return expenses, nil
}

// expenseArgs binds the mutable columns shared by Create and Update.
// Empty details are stored as NULL.
func expenseArgs(e domain.Expense) []any {
	var details sql.NullString
	if e.Details != "" {
		details = sql.NullString{String: e.Details, Valid: true}
	}
	return []any{
		sql.Named("category", e.Category),
		sql.Named("location", e.Location),
		sql.Named("amount", e.Amount.InexactFloat64()),
		sql.Named("date", domain.FormatDate(e.Date)),
		sql.Named("details", details),
		sql.Named("currency", e.Currency),
	}
}

// scanExpense maps a single database row into a domain.Expense.
// The REAL amount is rounded back to two places so float noise never leaks out.
func scanExpense(s scanner) (domain.Expense, error) {
	var (
		e                 domain.Expense
		location, details sql.NullString
		amount            float64
		date              string
	)

	err := s.Scan(&e.ID, &e.TripID, &e.Category, &location, &amount, &date, &details, &e.Currency)
	if err != nil {
		return domain.Expense{}, notFound(err)
	}

	e.Location = location.String
	e.Details = details.String
	e.Amount = decimal.NewFromFloat(amount).Round(domain.AmountPlaces)
	if e.Date, err = domain.ParseDate(date); err != nil {
		return domain.Expense{}, fmt.Errorf("parse expenseDate %q: %w", date, err)
	}
	return e, nil
}
