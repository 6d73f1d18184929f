package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/service"
)

// AdminHolidayHandler manages the holiday calendar.
type AdminHolidayHandler struct {
	Holidays *service.HolidayService
}

type holidayReq struct {
	Date     string  `json:"date"`
	BranchID *uint64 `json:"branch_id"`
	Reason   string  `json:"reason"`
}

// CreateHoliday adds a closure date, branch-specific or global.
func (h *AdminHolidayHandler) CreateHoliday(c echo.Context) error {
	var req holidayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	hd, err := h.Holidays.Create(c.Request().Context(), date, req.BranchID, req.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toPublicHoliday(*hd))
}

// DeleteHoliday removes a closure date.
func (h *AdminHolidayHandler) DeleteHoliday(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Holidays.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
