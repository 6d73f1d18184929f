package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

// FacilityService manages the branch/floor/room/seat hierarchy.
// Destructive operations are guarded: a node with active bookings
// anywhere beneath it cannot be deleted, and a room cannot shrink
// past a seat that still has an active booking.
type FacilityService struct {
	branches BranchStore
	floors   FloorStore
	rooms    RoomStore
	seats    SeatStore
	bookings BookingStore
	now      func() time.Time
}

func NewFacilityService(branches BranchStore, floors FloorStore, rooms RoomStore, seats SeatStore, bookings BookingStore) *FacilityService {
	if branches == nil || floors == nil || rooms == nil || seats == nil || bookings == nil {
		panic("nil dependency passed to NewFacilityService")
	}
	return &FacilityService{
		branches: branches,
		floors:   floors,
		rooms:    rooms,
		seats:    seats,
		bookings: bookings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// guardScope fails with ErrConflict when active bookings exist in
// the given scope, listing the offenders in the error message.
func (s *FacilityService) guardScope(ctx context.Context, branchID uint64, floorNumber *int, roomNo, seatNo *string) error {
	active, err := s.bookings.ActiveInScope(ctx, branchID, floorNumber, roomNo, seatNo, dateOnly(s.now()))
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return fmt.Errorf("%w: active bookings exist: %s", repository.ErrConflict, strings.Join(active, ", "))
	}
	return nil
}

// Branches

func (s *FacilityService) CreateBranch(ctx context.Context, name, address string) (*model.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: branch name is required", ErrValidation)
	}
	b := &model.Branch{Name: name, Address: strings.TrimSpace(address)}
	if err := s.branches.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *FacilityService) ListBranches(ctx context.Context) ([]model.Branch, error) {
	return s.branches.List(ctx)
}

func (s *FacilityService) UpdateBranch(ctx context.Context, id uint64, name, address string) (*model.Branch, error) {
	b, err := s.branches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(name); v != "" {
		b.Name = v
	}
	if v := strings.TrimSpace(address); v != "" {
		b.Address = v
	}
	if err := s.branches.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *FacilityService) DeleteBranch(ctx context.Context, id uint64) error {
	if _, err := s.branches.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.guardScope(ctx, id, nil, nil, nil); err != nil {
		return err
	}
	return s.branches.Delete(ctx, id)
}

// Floors

func (s *FacilityService) CreateFloor(ctx context.Context, branchID uint64, number int) (*model.Floor, error) {
	if _, err := s.branches.GetByID(ctx, branchID); err != nil {
		return nil, err
	}
	f := &model.Floor{BranchID: branchID, FloorNumber: number}
	if err := s.floors.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FacilityService) ListFloors(ctx context.Context, branchID uint64) ([]model.Floor, error) {
	if _, err := s.branches.GetByID(ctx, branchID); err != nil {
		return nil, err
	}
	return s.floors.ListByBranch(ctx, branchID)
}

func (s *FacilityService) UpdateFloor(ctx context.Context, id uint64, number int) (*model.Floor, error) {
	f, err := s.floors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.floors.UpdateNumber(ctx, id, number); err != nil {
		return nil, err
	}
	f.FloorNumber = number
	return f, nil
}

func (s *FacilityService) DeleteFloor(ctx context.Context, id uint64) error {
	f, err := s.floors.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guardScope(ctx, f.BranchID, &f.FloorNumber, nil, nil); err != nil {
		return err
	}
	return s.floors.Delete(ctx, id)
}

// Rooms

// RoomInput carries the writable room fields.
type RoomInput struct {
	RoomNo     string
	Name       string
	IsAC       bool
	PriceDaily int64
	SeatsCount int
}

// CreateRoom creates a room and its seats, labelled S1 through Sn,
// in one transaction.
func (s *FacilityService) CreateRoom(ctx context.Context, floorID uint64, in RoomInput) (*model.Room, error) {
	if _, err := s.floors.GetByID(ctx, floorID); err != nil {
		return nil, err
	}
	in.RoomNo = strings.TrimSpace(in.RoomNo)
	if in.RoomNo == "" {
		return nil, fmt.Errorf("%w: room number is required", ErrValidation)
	}
	if in.SeatsCount < 0 {
		return nil, fmt.Errorf("%w: seat count cannot be negative", ErrValidation)
	}
	rm := &model.Room{
		FloorID:    floorID,
		RoomNo:     in.RoomNo,
		Name:       strings.TrimSpace(in.Name),
		IsAC:       in.IsAC,
		PriceDaily: in.PriceDaily,
		SeatsCount: in.SeatsCount,
	}
	if err := s.rooms.CreateWithSeats(ctx, rm, in.SeatsCount); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *FacilityService) ListRooms(ctx context.Context, floorID uint64) ([]model.Room, error) {
	if _, err := s.floors.GetByID(ctx, floorID); err != nil {
		return nil, err
	}
	return s.rooms.ListByFloor(ctx, floorID)
}

// UpdateRoom applies field edits and, when the seat count changes,
// grows or shrinks the seat set. Shrinking removes the
// highest-numbered seats and refuses while any of them holds an
// active booking.
func (s *FacilityService) UpdateRoom(ctx context.Context, id uint64, in RoomInput) (*model.Room, error) {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	floor, err := s.floors.GetByID(ctx, rm.FloorID)
	if err != nil {
		return nil, err
	}

	oldCount := rm.SeatsCount
	if in.SeatsCount < 0 {
		return nil, fmt.Errorf("%w: seat count cannot be negative", ErrValidation)
	}
	if in.SeatsCount < oldCount {
		for n := in.SeatsCount + 1; n <= oldCount; n++ {
			seatNo := fmt.Sprintf("S%d", n)
			if err := s.guardScope(ctx, floor.BranchID, &floor.FloorNumber, &rm.RoomNo, &seatNo); err != nil {
				return nil, err
			}
		}
	}

	if v := strings.TrimSpace(in.RoomNo); v != "" {
		rm.RoomNo = v
	}
	if v := strings.TrimSpace(in.Name); v != "" {
		rm.Name = v
	}
	rm.IsAC = in.IsAC
	if in.PriceDaily >= 0 {
		rm.PriceDaily = in.PriceDaily
	}
	rm.SeatsCount = in.SeatsCount
	if err := s.rooms.Update(ctx, rm); err != nil {
		return nil, err
	}
	if in.SeatsCount != oldCount {
		if err := s.rooms.Resize(ctx, rm.ID, oldCount, in.SeatsCount); err != nil {
			return nil, err
		}
	}
	return rm, nil
}

func (s *FacilityService) DeleteRoom(ctx context.Context, id uint64) error {
	rm, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	floor, err := s.floors.GetByID(ctx, rm.FloorID)
	if err != nil {
		return err
	}
	if err := s.guardScope(ctx, floor.BranchID, &floor.FloorNumber, &rm.RoomNo, nil); err != nil {
		return err
	}
	return s.rooms.Delete(ctx, id)
}

// Seats

// SetSeatBlocked flips a seat's manual block flag.
func (s *FacilityService) SetSeatBlocked(ctx context.Context, seatID uint64, blocked bool) error {
	return s.seats.SetBlocked(ctx, seatID, blocked)
}

// ListSeats returns the flattened admin seat view across the whole
// facility.
func (s *FacilityService) ListSeats(ctx context.Context) ([]repository.AdminSeat, error) {
	return s.seats.ListAdmin(ctx)
}
