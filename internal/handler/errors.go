package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// errBadRequest marks input rejected before it reaches the service layer
// (malformed JSON, unparsable path or query parameters).
var errBadRequest = errors.New("bad request")

// ErrorDetail is the machine code and human message of a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "bad_request", Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Rename: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, errBadRequest} {
		prefix := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, prefix); i >= 0 && len(msg) > i+len(prefix) {
			return msg[i+len(prefix):]
		}
	}
	return msg
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status code and error body. resource names the
// thing that was looked up and is used for 404 messages. Unexpected errors
// are logged with the request context and hidden behind a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge,
			ErrorResponse{Error: ErrorDetail{Code: "body_too_large", Message: "request body too large"}})
	case errors.Is(err, errBadRequest):
		writeJSON(w, http.StatusBadRequest, requestBody(unwrapMessage(err)))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(resource+" not found"))
	case errors.Is(err, domain.ErrEmptyExport):
		writeJSON(w, http.StatusNotFound,
			ErrorResponse{Error: ErrorDetail{Code: "empty_export", Message: "selected trips have no expenses"}})
	case errors.Is(err, domain.ErrStoreUnavailable):
		slog.ErrorContext(r.Context(), "store unavailable", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusServiceUnavailable,
			ErrorResponse{Error: ErrorDetail{Code: "store_unavailable", Message: "storage is unavailable"}})
	default:
		slog.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError,
			ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}
