package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/service"
)

// AdminSeatHandler serves the flattened seat inventory and the
// manual block flag.
type AdminSeatHandler struct {
	Facility *service.FacilityService
}

type adminSeatView struct {
	ID          uint64 `json:"id"`
	SeatNo      string `json:"seat_no"`
	IsBlocked   bool   `json:"is_blocked"`
	RoomNo      string `json:"room_no"`
	RoomName    string `json:"room_name"`
	FloorNumber int    `json:"floor_number"`
	BranchID    uint64 `json:"branch_id"`
	BranchName  string `json:"branch_name"`
}

// ListSeats returns every seat with its room, floor, and branch
// labels for the admin inventory screen.
func (h *AdminSeatHandler) ListSeats(c echo.Context) error {
	seats, err := h.Facility.ListSeats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]adminSeatView, 0, len(seats))
	for _, s := range seats {
		items = append(items, adminSeatView{
			ID:          s.ID,
			SeatNo:      s.SeatNo,
			IsBlocked:   s.IsBlocked,
			RoomNo:      s.RoomNo,
			RoomName:    s.RoomName,
			FloorNumber: s.FloorNumber,
			BranchID:    s.BranchID,
			BranchName:  s.BranchName,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// BlockSeat sets the manual block flag.
func (h *AdminSeatHandler) BlockSeat(c echo.Context) error {
	return h.setBlocked(c, true)
}

// UnblockSeat clears the manual block flag.
func (h *AdminSeatHandler) UnblockSeat(c echo.Context) error {
	return h.setBlocked(c, false)
}

func (h *AdminSeatHandler) setBlocked(c echo.Context, blocked bool) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Facility.SetSeatBlocked(c.Request().Context(), id, blocked); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "is_blocked": blocked})
}
