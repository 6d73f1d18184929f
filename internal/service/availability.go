package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
)

// SeatAvailability is a seat with its availability for a requested
// window. A seat is unavailable when it is blocked or when any
// pending or confirmed booking overlaps the window.
type SeatAvailability struct {
	Seat      model.Seat
	Available bool
}

// RoomSeats is a room and its seats for a window.
type RoomSeats struct {
	Room  model.Room
	Seats []SeatAvailability
}

// FloorRooms is a floor and its rooms for a window.
type FloorRooms struct {
	Floor model.Floor
	Rooms []RoomSeats
}

// BranchTree is the full availability picture of one branch.
type BranchTree struct {
	Branch model.Branch
	Floors []FloorRooms
}

// AvailabilityService answers "which seats are free for these
// dates". The overlap set is fetched once per request and applied
// as an overlay while walking the facility tree, so a branch-wide
// view costs one booking query regardless of seat count.
type AvailabilityService struct {
	branches BranchStore
	floors   FloorStore
	rooms    RoomStore
	seats    SeatStore
	bookings BookingStore
}

func NewAvailabilityService(branches BranchStore, floors FloorStore, rooms RoomStore, seats SeatStore, bookings BookingStore) *AvailabilityService {
	if branches == nil || floors == nil || rooms == nil || seats == nil || bookings == nil {
		panic("nil dependency passed to NewAvailabilityService")
	}
	return &AvailabilityService{branches: branches, floors: floors, rooms: rooms, seats: seats, bookings: bookings}
}

// Tree builds the availability tree for a whole branch.
func (s *AvailabilityService) Tree(ctx context.Context, branchID uint64, start, end time.Time) (*BranchTree, error) {
	branch, err := s.branches.GetByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	busy, err := s.busySet(ctx, start, end)
	if err != nil {
		return nil, err
	}
	floors, err := s.floors.ListByBranch(ctx, branch.ID)
	if err != nil {
		return nil, err
	}
	tree := &BranchTree{Branch: *branch, Floors: make([]FloorRooms, 0, len(floors))}
	for _, f := range floors {
		fr := FloorRooms{Floor: f}
		rooms, err := s.rooms.ListByFloor(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		for _, rm := range rooms {
			rs, err := s.roomSeats(ctx, rm, busy)
			if err != nil {
				return nil, err
			}
			fr.Rooms = append(fr.Rooms, *rs)
		}
		tree.Floors = append(tree.Floors, fr)
	}
	return tree, nil
}

// RoomSeats returns one room's seats with availability, resolving
// the room from customer-facing labels.
func (s *AvailabilityService) RoomSeats(ctx context.Context, loc Location, start, end time.Time) (*RoomSeats, error) {
	branch, err := s.branches.GetByID(ctx, loc.BranchID)
	if err != nil {
		return nil, err
	}
	floor, err := s.floors.GetByBranchAndNumber(ctx, branch.ID, loc.FloorNumber)
	if err != nil {
		return nil, err
	}
	room, err := s.rooms.GetByFloorAndNo(ctx, floor.ID, loc.RoomNo)
	if err != nil {
		return nil, err
	}
	busy, err := s.busySet(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return s.roomSeats(ctx, *room, busy)
}

func (s *AvailabilityService) roomSeats(ctx context.Context, room model.Room, busy map[uint64]struct{}) (*RoomSeats, error) {
	seats, err := s.seats.ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	rs := &RoomSeats{Room: room, Seats: make([]SeatAvailability, 0, len(seats))}
	for _, seat := range seats {
		_, taken := busy[seat.ID]
		rs.Seats = append(rs.Seats, SeatAvailability{
			Seat:      seat,
			Available: !seat.IsBlocked && !taken,
		})
	}
	return rs, nil
}

// busySet returns the IDs of seats with an overlapping active
// booking. A zero start or end disables the overlay so the tree
// degrades to a pure blocked-flag view.
func (s *AvailabilityService) busySet(ctx context.Context, start, end time.Time) (map[uint64]struct{}, error) {
	if start.IsZero() || end.IsZero() {
		return map[uint64]struct{}{}, nil
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}
	return s.bookings.OverlappingSeatIDs(ctx, dateOnly(start), dateOnly(end))
}
