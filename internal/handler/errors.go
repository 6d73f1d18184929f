// Package handler exposes the HTTP surface: public browsing and
// booking routes plus the authenticated admin API.
package handler

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/repository"
	"github.com/studyspot/seat-booking/internal/service"
)

// writeError maps domain errors onto HTTP statuses. Backing-store
// connection and timeout failures read as 503 so clients retry;
// unrecognized errors become a generic 500 so internals never leak.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidState):
		return c.JSON(http.StatusConflict, echo.Map{"error": "invalid state"})
	case isNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case isUpstream(err):
		c.Logger().Errorf("upstream unavailable: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service unavailable, please retry"})
	default:
		c.Logger().Errorf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// isUpstream reports whether the error is a backing-store or network
// failure rather than a programming error.
func isUpstream(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone)
}

func isNotFound(err error) bool {
	for _, sentinel := range []error{
		repository.ErrBranchNotFound,
		repository.ErrFloorNotFound,
		repository.ErrRoomNotFound,
		repository.ErrSeatNotFound,
		repository.ErrBookingNotFound,
		repository.ErrSlotNotFound,
		repository.ErrSettingNotFound,
		repository.ErrAdminNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
