package http

import (
	"errors"
	"net/http"

	"branchboard/internal/planner"
	pkgErrors "branchboard/pkg/errors"
)

var (
	errInvalidDate     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
	errInvalidDeadline = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid deadline")
	errMissingID       = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
)

// mapError translates planner errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planner.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	case errors.Is(err, planner.ErrNoSchedule):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no schedule yet, run optimize first")
	case errors.Is(err, planner.ErrInvalidTask):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrInvalidCalendar):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
