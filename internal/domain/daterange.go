package domain

import (
	"fmt"
	"time"
)

// DateRange is an inclusive calendar-day window. Start and End carry no
// time-of-day; NewDateRange truncates them.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds an inclusive range from two dates.
// Returns ErrValidation if end falls before start.
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: day(start), End: day(end)}
	if r.End.Before(r.Start) {
		return DateRange{}, fmt.Errorf("%w: end date %s is before start date %s",
			ErrValidation, FormatDate(r.End), FormatDate(r.Start))
	}
	return r, nil
}

// SingleDay returns the range covering only the calendar day of t.
func SingleDay(t time.Time) DateRange {
	d := day(t)
	return DateRange{Start: d, End: d}
}

// Contains reports whether the calendar day of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// StartString returns Start as YYYY-MM-DD.
func (r DateRange) StartString() string { return FormatDate(r.Start) }

// EndString returns End as YYYY-MM-DD.
func (r DateRange) EndString() string { return FormatDate(r.End) }

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
