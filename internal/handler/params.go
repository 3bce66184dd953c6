package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-expenses/internal/domain"
)

// pathID binds the int64 path parameter name, the way generated chi
// wrappers bind styled path parameters.
func pathID(r *http.Request, name string) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("%w: invalid format for parameter %s", errBadRequest, name)
	}
	return id, nil
}

// dateRange binds the optional start and end query parameters (YYYY-MM-DD).
// A missing bound defaults to today, matching the date pickers of the app.
func (s *Server) dateRange(r *http.Request) (domain.DateRange, error) {
	q := r.URL.Query()

	var start, end *openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, false, "start", q, &start); err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: invalid format for parameter start", errBadRequest)
	}
	if err := runtime.BindQueryParameter("form", true, false, "end", q, &end); err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: invalid format for parameter end", errBadRequest)
	}

	today := s.now().UTC()
	return domain.NewDateRange(dateOr(start, today), dateOr(end, today))
}

// tripIDs binds the repeated trip_id query parameter.
func tripIDs(r *http.Request) ([]int64, error) {
	var ids []int64
	if err := runtime.BindQueryParameter("form", true, false, "trip_id", r.URL.Query(), &ids); err != nil {
		return nil, fmt.Errorf("%w: invalid format for parameter trip_id", errBadRequest)
	}
	return ids, nil
}

// decodeBody decodes the JSON request body into dst. Unknown fields are
// rejected so typos surface instead of being silently dropped.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return fmt.Errorf("%w: request body is required", errBadRequest)
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: malformed JSON body: %s", errBadRequest, err.Error())
	}
	return nil
}

func dateOr(d *openapi_types.Date, fallback time.Time) time.Time {
	if d == nil {
		return fallback
	}
	return d.Time
}
