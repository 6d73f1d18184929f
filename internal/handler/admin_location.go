package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/service"
)

// AdminLocationHandler manages the facility hierarchy. Deletes are
// refused with a 409 while active bookings exist in the subtree.
type AdminLocationHandler struct {
	Facility *service.FacilityService
}

func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// Branches

type branchReq struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type branchView struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	CreatedAt string `json:"created_at"`
}

func toBranchView(b *model.Branch) branchView {
	return branchView{ID: b.ID, Name: b.Name, Address: b.Address, CreatedAt: b.CreatedAt.Format(time.RFC3339)}
}

func (h *AdminLocationHandler) CreateBranch(c echo.Context) error {
	var req branchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Facility.CreateBranch(c.Request().Context(), req.Name, req.Address)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toBranchView(b))
}

func (h *AdminLocationHandler) ListBranches(c echo.Context) error {
	branches, err := h.Facility.ListBranches(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	items := make([]branchView, 0, len(branches))
	for i := range branches {
		items = append(items, toBranchView(&branches[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminLocationHandler) UpdateBranch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req branchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	b, err := h.Facility.UpdateBranch(c.Request().Context(), id, req.Name, req.Address)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toBranchView(b))
}

func (h *AdminLocationHandler) DeleteBranch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Facility.DeleteBranch(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Floors

type floorReq struct {
	BranchID    uint64 `json:"branch_id"`
	FloorNumber int    `json:"floor_number"`
}

type floorView struct {
	ID          uint64 `json:"id"`
	BranchID    uint64 `json:"branch_id"`
	FloorNumber int    `json:"floor_number"`
}

func (h *AdminLocationHandler) CreateFloor(c echo.Context) error {
	var req floorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	f, err := h.Facility.CreateFloor(c.Request().Context(), req.BranchID, req.FloorNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, floorView{ID: f.ID, BranchID: f.BranchID, FloorNumber: f.FloorNumber})
}

func (h *AdminLocationHandler) ListFloors(c echo.Context) error {
	branchID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	floors, err := h.Facility.ListFloors(c.Request().Context(), branchID)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]floorView, 0, len(floors))
	for _, f := range floors {
		items = append(items, floorView{ID: f.ID, BranchID: f.BranchID, FloorNumber: f.FloorNumber})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminLocationHandler) UpdateFloor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req struct {
		FloorNumber int `json:"floor_number"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	f, err := h.Facility.UpdateFloor(c.Request().Context(), id, req.FloorNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, floorView{ID: f.ID, BranchID: f.BranchID, FloorNumber: f.FloorNumber})
}

func (h *AdminLocationHandler) DeleteFloor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Facility.DeleteFloor(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Rooms

type roomReq struct {
	FloorID    uint64 `json:"floor_id"`
	RoomNo     string `json:"room_no"`
	Name       string `json:"name"`
	IsAC       bool   `json:"is_ac"`
	PriceDaily int64  `json:"price_daily"`
	SeatsCount int    `json:"seats_count"`
}

type roomView struct {
	ID         uint64 `json:"id"`
	FloorID    uint64 `json:"floor_id"`
	RoomNo     string `json:"room_no"`
	Name       string `json:"name"`
	IsAC       bool   `json:"is_ac"`
	PriceDaily int64  `json:"price_daily"`
	SeatsCount int    `json:"seats_count"`
}

func toRoomView(r *model.Room) roomView {
	return roomView{
		ID:         r.ID,
		FloorID:    r.FloorID,
		RoomNo:     r.RoomNo,
		Name:       r.Name,
		IsAC:       r.IsAC,
		PriceDaily: r.PriceDaily,
		SeatsCount: r.SeatsCount,
	}
}

func (h *AdminLocationHandler) CreateRoom(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	r, err := h.Facility.CreateRoom(c.Request().Context(), req.FloorID, service.RoomInput{
		RoomNo:     req.RoomNo,
		Name:       req.Name,
		IsAC:       req.IsAC,
		PriceDaily: req.PriceDaily,
		SeatsCount: req.SeatsCount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toRoomView(r))
}

func (h *AdminLocationHandler) ListRooms(c echo.Context) error {
	floorID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rooms, err := h.Facility.ListRooms(c.Request().Context(), floorID)
	if err != nil {
		return writeError(c, err)
	}
	items := make([]roomView, 0, len(rooms))
	for i := range rooms {
		items = append(items, toRoomView(&rooms[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *AdminLocationHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	r, err := h.Facility.UpdateRoom(c.Request().Context(), id, service.RoomInput{
		RoomNo:     req.RoomNo,
		Name:       req.Name,
		IsAC:       req.IsAC,
		PriceDaily: req.PriceDaily,
		SeatsCount: req.SeatsCount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toRoomView(r))
}

func (h *AdminLocationHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Facility.DeleteRoom(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
