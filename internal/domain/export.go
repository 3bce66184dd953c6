package domain

import "github.com/google/uuid"

// ExportRow is a single row in the expense export.
// It is a flat view of one expense; every field is already rendered as text
// so the CSV writer never sees a nil or a number.
type ExportRow struct {
	Date     string
	Category string
	Location string
	Amount   string
	Currency string
	Details  string
}

// ExportFile is an assembled export ready to be encoded.
// ID correlates the export across log lines and the response header.
type ExportFile struct {
	ID       uuid.UUID
	FileName string
	Rows     []ExportRow
}
