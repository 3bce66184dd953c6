// Package export turns expenses into the flat CSV attachment handed to the
// user: row formatting, CSV encoding with a UTF-8 byte order mark, and the
// attachment file name.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// ContentType is the MIME type of the attachment.
const ContentType = "text/csv"

// bom makes spreadsheet tools detect UTF-8 when opening the file.
const bom = "\uFEFF"

// Header defines the column names written as the first row of every export.
var Header = []string{"Date", "Category", "Location", "Amount", "Currency", "Details"}

var whitespace = regexp.MustCompile(`\s+`)

// Rows maps expenses to export rows, preserving input order.
// Amounts are rendered with two fractional digits; missing details become "".
func Rows(expenses []domain.Expense) []domain.ExportRow {
	rows := make([]domain.ExportRow, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, domain.ExportRow{
			Date:     domain.FormatDate(e.Date),
			Category: e.Category,
			Location: e.Location,
			Amount:   domain.FormatAmount(e.Amount),
			Currency: e.Currency,
			Details:  e.Details,
		})
	}
	return rows
}

// WriteCSV encodes rows as CSV: byte order mark, Header, then one record per row.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return fmt.Errorf("export.WriteCSV: bom: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export.WriteCSV: header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("export.WriteCSV: row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV: flush: %w", err)
	}
	return nil
}

// FileName returns TravelExpenses_<TripName>_<YYYY-MM-DD>.csv.
// Whitespace runs in the trip name become a single underscore and a blank
// name falls back to "Trip".
func FileName(tripName string, day time.Time) string {
	name := whitespace.ReplaceAllString(strings.TrimSpace(tripName), "_")
	if name == "" {
		name = "Trip"
	}
	return fmt.Sprintf("TravelExpenses_%s_%s.csv", name, domain.FormatDate(day))
}

// record encodes a domain.ExportRow as a flat string slice in Header order.
func record(r domain.ExportRow) []string {
	return []string{r.Date, r.Category, r.Location, r.Amount, r.Currency, r.Details}
}
