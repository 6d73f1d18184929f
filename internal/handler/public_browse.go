package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/service"
)

// PublicHandler serves the unauthenticated browsing routes: the
// facility tree with seat availability, slot products, and the
// holiday calendar.
type PublicHandler struct {
	Facility     *service.FacilityService
	Availability *service.AvailabilityService
	Pricing      *service.PricingService
	Holidays     *service.HolidayService
}

type publicSeat struct {
	SeatNo    string `json:"seat_no"`
	Available bool   `json:"available"`
}

type publicRoom struct {
	RoomNo     string       `json:"room_no"`
	Name       string       `json:"name"`
	IsAC       bool         `json:"is_ac"`
	PriceDaily int64        `json:"price_daily"`
	Seats      []publicSeat `json:"seats"`
}

type publicFloor struct {
	FloorNumber int          `json:"floor_number"`
	Rooms       []publicRoom `json:"rooms"`
}

type publicBranch struct {
	ID      uint64        `json:"id"`
	Name    string        `json:"name"`
	Address string        `json:"address"`
	Floors  []publicFloor `json:"floors"`
}

// parseDate accepts YYYY-MM-DD; empty input yields a zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func toPublicBranch(t *service.BranchTree) publicBranch {
	out := publicBranch{ID: t.Branch.ID, Name: t.Branch.Name, Address: t.Branch.Address, Floors: []publicFloor{}}
	for _, f := range t.Floors {
		pf := publicFloor{FloorNumber: f.Floor.FloorNumber, Rooms: []publicRoom{}}
		for _, r := range f.Rooms {
			pf.Rooms = append(pf.Rooms, toPublicRoom(&r))
		}
		out.Floors = append(out.Floors, pf)
	}
	return out
}

func toPublicRoom(rs *service.RoomSeats) publicRoom {
	pr := publicRoom{
		RoomNo:     rs.Room.RoomNo,
		Name:       rs.Room.Name,
		IsAC:       rs.Room.IsAC,
		PriceDaily: rs.Room.PriceDaily,
		Seats:      []publicSeat{},
	}
	for _, sa := range rs.Seats {
		pr.Seats = append(pr.Seats, publicSeat{SeatNo: sa.Seat.SeatNo, Available: sa.Available})
	}
	return pr
}

// GetBranches returns the availability tree of every branch for the
// requested window. Without dates the tree reflects only manual
// seat blocks.
func (h *PublicHandler) GetBranches(c echo.Context) error {
	ctx := c.Request().Context()
	start, err := parseDate(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := parseDate(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}

	branches, err := h.Facility.ListBranches(ctx)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]publicBranch, 0, len(branches))
	for _, b := range branches {
		tree, err := h.Availability.Tree(ctx, b.ID, start, end)
		if err != nil {
			return writeError(c, err)
		}
		items = append(items, toPublicBranch(tree))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBranchAvailability returns availability scoped to one branch,
// optionally narrowed to a floor and room.
func (h *PublicHandler) GetBranchAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	branchID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	start, err := parseDate(c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
	}
	end, err := parseDate(c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
	}

	floorStr := c.QueryParam("floor")
	roomNo := c.QueryParam("room")
	if floorStr != "" && roomNo != "" {
		floorNumber, err := strconv.Atoi(floorStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid floor"})
		}
		loc := service.Location{BranchID: branchID, FloorNumber: floorNumber, RoomNo: roomNo}
		rs, err := h.Availability.RoomSeats(ctx, loc, start, end)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, toPublicRoom(rs))
	}

	tree, err := h.Availability.Tree(ctx, branchID, start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toPublicBranch(tree))
}

type publicSlot struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DurationDays int    `json:"duration_days"`
	Price        int64  `json:"price"`
}

// GetSlots lists active slot products. An optional daily_rate query
// reprices each slot for that rate.
func (h *PublicHandler) GetSlots(c echo.Context) error {
	ctx := c.Request().Context()
	slots, err := h.Pricing.ListActiveSlots(ctx)
	if err != nil {
		return writeError(c, err)
	}
	var rate int64
	if v := c.QueryParam("daily_rate"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid daily_rate"})
		}
		rate = n
	}
	items := make([]publicSlot, 0, len(slots))
	for _, s := range slots {
		price := s.Price
		if rate > 0 {
			price = int64(s.DurationDays) * rate
		}
		items = append(items, publicSlot{ID: s.ID, Name: s.Name, DurationDays: s.DurationDays, Price: price})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type publicHoliday struct {
	ID       uint64  `json:"id"`
	Date     string  `json:"date"`
	BranchID *uint64 `json:"branch_id,omitempty"`
	Reason   string  `json:"reason"`
}

// GetHolidays lists the advisory holiday calendar.
func (h *PublicHandler) GetHolidays(c echo.Context) error {
	holidays, err := h.Holidays.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]publicHoliday, 0, len(holidays))
	for _, hd := range holidays {
		items = append(items, toPublicHoliday(hd))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func toPublicHoliday(h model.Holiday) publicHoliday {
	return publicHoliday{
		ID:       h.ID,
		Date:     h.Date.Format("2006-01-02"),
		BranchID: h.BranchID,
		Reason:   h.Reason,
	}
}
