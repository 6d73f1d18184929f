package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/service"
	"github.com/studyspot/seat-booking/internal/storage"
)

// BookingHandler serves the customer-facing booking routes:
// submission, lookup, receipt upload, and whitelisted settings.
type BookingHandler struct {
	Bookings *service.BookingService
	Settings *service.SettingsService
	Receipts *storage.ReceiptStore
}

type createBookingReq struct {
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email"`
	BranchID      uint64  `json:"branch_id"`
	FloorNumber   int     `json:"floor_number"`
	RoomNo        string  `json:"room_no"`
	SeatNo        string  `json:"seat_no"`
	SlotID        string  `json:"slot_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	ScreenshotURL *string `json:"screenshot_url"`
}

type bookingView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email,omitempty"`
	SlotID        *string `json:"slot_id,omitempty"`
	BranchID      uint64  `json:"branch_id"`
	FloorID       uint64  `json:"floor_id"`
	RoomID        uint64  `json:"room_id"`
	SeatID        uint64  `json:"seat_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Amount        int64   `json:"amount"`
	Status        string  `json:"status"`
	ScreenshotURL *string `json:"screenshot_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func toBookingView(b *model.Booking) bookingView {
	return bookingView{
		ID:            b.ID,
		Name:          b.CustomerName,
		Phone:         b.CustomerPhone,
		Email:         b.CustomerEmail,
		SlotID:        b.SlotID,
		BranchID:      b.BranchID,
		FloorID:       b.FloorID,
		RoomID:        b.RoomID,
		SeatID:        b.SeatID,
		StartDate:     b.StartDate.Format("2006-01-02"),
		EndDate:       b.EndDate.Format("2006-01-02"),
		Amount:        b.Amount,
		Status:        b.Status,
		ScreenshotURL: b.ScreenshotURL,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

// CreateBooking accepts a customer submission and creates a pending
// booking. A 409 means the seat was taken for those dates after the
// customer picked it.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
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

	b, err := h.Bookings.Create(c.Request().Context(), service.CreateInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Location: service.Location{
			BranchID:    req.BranchID,
			FloorNumber: req.FloorNumber,
			RoomNo:      req.RoomNo,
			SeatNo:      req.SeatNo,
		},
		SlotID:        req.SlotID,
		StartDate:     start,
		EndDate:       end,
		ScreenshotURL: req.ScreenshotURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toBookingView(b))
}

// GetBooking looks up one booking for the confirmation page.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	b, err := h.Bookings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingView(b))
}

// UploadReceipt stores a payment screenshot and returns its URL for
// inclusion in a booking submission.
func (h *BookingHandler) UploadReceipt(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	url, err := h.Receipts.Save(fh)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}

// publicSettingKeys are the only settings readable without auth.
var publicSettingKeys = map[string]bool{
	model.SettingMaintenanceMode: true,
	model.SettingUPIID:           true,
	model.SettingUPIMerchantName: true,
	model.SettingUPIPhone:        true,
}

// GetSetting serves whitelisted settings (payment details and the
// maintenance flag) to the booking UI.
func (h *BookingHandler) GetSetting(c echo.Context) error {
	key := c.Param("key")
	if !publicSettingKeys[key] {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown setting"})
	}
	value, err := h.Settings.Get(c.Request().Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"key": key, "value": value})
}
