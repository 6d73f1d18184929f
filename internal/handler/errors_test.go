package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/studyspot/seat-booking/internal/repository"
)

func writeErrorStatus(t *testing.T, err error) int {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	_ = writeError(e.NewContext(req, rec), err)
	return rec.Code
}

func TestWriteErrorMapsUpstreamFailuresToServiceUnavailable(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"query timeout", fmt.Errorf("load bookings: %w", context.DeadlineExceeded)},
		{"closed connection", fmt.Errorf("load bookings: %w", sql.ErrConnDone)},
		{"network failure", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, http.StatusServiceUnavailable, writeErrorStatus(t, tc.err))
		})
	}
}

func TestWriteErrorKeepsDomainMappings(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, writeErrorStatus(t, repository.ErrBookingNotFound))
	assert.Equal(t, http.StatusConflict, writeErrorStatus(t, repository.ErrConflict))
	assert.Equal(t, http.StatusInternalServerError, writeErrorStatus(t, errors.New("broken invariant")))
}
