package http

import (
	"errors"
	"net/http"

	"travel-planner/internal/travel"
	"travel-planner/pkg/response"
)

var (
	errWrongBody       = response.NewHTTPError(http.StatusBadRequest, "wrong body")
	errMissingID       = response.NewHTTPError(http.StatusBadRequest, "id is required")
	errEmptyText       = response.NewHTTPError(http.StatusBadRequest, "text is required")
	errPlanConflict    = response.NewHTTPError(http.StatusBadRequest, "plan and plan_text are mutually exclusive")
	errPlanTextTooLong = response.NewHTTPError(http.StatusBadRequest, "plan_text is too long")
	errSessionNotFound = response.NewHTTPError(http.StatusNotFound, "session not found")
)

// mapError translates use-case errors into HTTP errors. It returns nil for
// errors that must surface as 500.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, travel.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, travel.ErrEmptyInput):
		return errEmptyText
	}
	return nil
}
