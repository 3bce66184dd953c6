package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank trip name, malformed amount, unsupported currency).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStoreUnavailable is returned when the embedded database cannot be opened
// or reached. Handlers should map this to HTTP 503.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrWriteFailed wraps a rejected insert, update, or delete.
var ErrWriteFailed = errors.New("write failed")

// ErrQueryFailed wraps a rejected read.
var ErrQueryFailed = errors.New("query failed")

// ErrEmptyExport is returned by the export service when the selected trips
// have no expenses, so there is nothing to put in a file.
var ErrEmptyExport = errors.New("no expenses to export")
