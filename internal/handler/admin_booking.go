package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/service"
)

// AdminBookingHandler serves the management surface for bookings:
// review queue, lifecycle actions, walk-ins, and the dashboard.
type AdminBookingHandler struct {
	Bookings *service.BookingService
}

// ListBookings returns all bookings, newest first.
func (h *AdminBookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]bookingView, 0, len(bookings))
	for i := range bookings {
		items = append(items, toBookingView(&bookings[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Dashboard returns booking counts, revenue, and the monthly trend.
func (h *AdminBookingHandler) Dashboard(c echo.Context) error {
	stats, err := h.Bookings.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	monthly := make([]echo.Map, 0, len(stats.Monthly))
	for _, m := range stats.Monthly {
		monthly = append(monthly, echo.Map{"month": m.Month, "count": m.Count})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"total_bookings":  stats.TotalBookings,
		"active_bookings": stats.ActiveBookings,
		"pending_count":   stats.PendingCount,
		"revenue":         stats.Revenue,
		"monthly":         monthly,
	})
}

type walkInReq struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       *string `json:"email"`
	BranchID    uint64  `json:"branch_id"`
	FloorNumber int     `json:"floor_number"`
	RoomNo      string  `json:"room_no"`
	SeatNo      string  `json:"seat_no"`
	SlotID      string  `json:"slot_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Amount      int64   `json:"amount"`
}

// CreateWalkIn books a seat for a counter customer: immediately
// confirmed, seat blocked.
func (h *AdminBookingHandler) CreateWalkIn(c echo.Context) error {
	var req walkInReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}

	b, err := h.Bookings.CreateWalkIn(c.Request().Context(), service.WalkInInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Location: service.Location{
			BranchID:    req.BranchID,
			FloorNumber: req.FloorNumber,
			RoomNo:      req.RoomNo,
			SeatNo:      req.SeatNo,
		},
		SlotID:    req.SlotID,
		StartDate: start,
		EndDate:   end,
		Amount:    req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toBookingView(b))
}

// Approve confirms a pending booking and queues the WhatsApp
// confirmation.
func (h *AdminBookingHandler) Approve(c echo.Context) error {
	return h.lifecycle(c, h.Bookings.Approve)
}

// Reject declines a pending booking.
func (h *AdminBookingHandler) Reject(c echo.Context) error {
	return h.lifecycle(c, h.Bookings.Reject)
}

// Revoke cancels a confirmed booking early.
func (h *AdminBookingHandler) Revoke(c echo.Context) error {
	return h.lifecycle(c, h.Bookings.Revoke)
}

// Expire marks a confirmed booking as run out.
func (h *AdminBookingHandler) Expire(c echo.Context) error {
	return h.lifecycle(c, h.Bookings.Expire)
}

func (h *AdminBookingHandler) lifecycle(c echo.Context, fn func(ctx context.Context, id string) (*model.Booking, error)) error {
	b, err := fn(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingView(b))
}
