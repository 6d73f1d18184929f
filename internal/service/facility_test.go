package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

type facilityFixture struct {
	branches *mockBranchStore
	floors   *mockFloorStore
	rooms    *mockRoomStore
	seats    *mockSeatStore
	bookings *mockBookingStore
	svc      *FacilityService
}

func newFacilityFixture() *facilityFixture {
	f := &facilityFixture{
		branches: &mockBranchStore{},
		floors:   &mockFloorStore{},
		rooms:    &mockRoomStore{},
		seats:    &mockSeatStore{},
		bookings: &mockBookingStore{},
	}
	f.svc = NewFacilityService(f.branches, f.floors, f.rooms, f.seats, f.bookings)
	return f
}

func TestDeleteBranchRefusedWithActiveBookings(t *testing.T) {
	f := newFacilityFixture()
	f.branches.On("GetByID", mock.Anything, uint64(1)).
		Return(&model.Branch{ID: 1}, nil)
	f.bookings.On("ActiveInScope", mock.Anything, uint64(1), (*int)(nil), (*string)(nil), (*string)(nil), mock.Anything).
		Return([]string{"BK-X1 (Asha - 2026-09-01)"}, nil)

	err := f.svc.DeleteBranch(context.Background(), 1)
	require.ErrorIs(t, err, repository.ErrConflict)
	assert.Contains(t, err.Error(), "BK-X1")
	f.branches.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteBranchSucceedsWhenClear(t *testing.T) {
	f := newFacilityFixture()
	f.branches.On("GetByID", mock.Anything, uint64(1)).
		Return(&model.Branch{ID: 1}, nil)
	f.bookings.On("ActiveInScope", mock.Anything, uint64(1), (*int)(nil), (*string)(nil), (*string)(nil), mock.Anything).
		Return([]string{}, nil)
	f.branches.On("Delete", mock.Anything, uint64(1)).Return(nil)

	require.NoError(t, f.svc.DeleteBranch(context.Background(), 1))
}

func TestCreateRoomGeneratesSeats(t *testing.T) {
	f := newFacilityFixture()
	f.floors.On("GetByID", mock.Anything, uint64(10)).
		Return(&model.Floor{ID: 10, BranchID: 1, FloorNumber: 1}, nil)
	f.rooms.On("CreateWithSeats", mock.Anything, mock.AnythingOfType("*model.Room"), 12).
		Return(nil)

	r, err := f.svc.CreateRoom(context.Background(), 10, RoomInput{RoomNo: "R2", Name: "Quiet", SeatsCount: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, r.SeatsCount)
	f.rooms.AssertCalled(t, "CreateWithSeats", mock.Anything, mock.Anything, 12)
}

func TestShrinkRoomRefusedWhileHighSeatBooked(t *testing.T) {
	f := newFacilityFixture()
	f.rooms.On("GetByID", mock.Anything, uint64(20)).
		Return(&model.Room{ID: 20, FloorID: 10, RoomNo: "R1", SeatsCount: 10}, nil)
	f.floors.On("GetByID", mock.Anything, uint64(10)).
		Return(&model.Floor{ID: 10, BranchID: 1, FloorNumber: 1}, nil)

	// Seat S9 (to be removed in a 10 -> 8 shrink) holds a booking.
	f.bookings.On("ActiveInScope", mock.Anything, uint64(1), mock.Anything, mock.Anything, mock.MatchedBy(func(s *string) bool {
		return s != nil && *s == "S9"
	}), mock.Anything).Return([]string{"BK-Y2 (Ravi - 2026-09-05)"}, nil)
	f.bookings.On("ActiveInScope", mock.Anything, uint64(1), mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]string{}, nil)

	_, err := f.svc.UpdateRoom(context.Background(), 20, RoomInput{RoomNo: "R1", SeatsCount: 8})
	require.ErrorIs(t, err, repository.ErrConflict)
	f.rooms.AssertNotCalled(t, "Resize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGrowRoomResizes(t *testing.T) {
	f := newFacilityFixture()
	f.rooms.On("GetByID", mock.Anything, uint64(20)).
		Return(&model.Room{ID: 20, FloorID: 10, RoomNo: "R1", SeatsCount: 10}, nil)
	f.floors.On("GetByID", mock.Anything, uint64(10)).
		Return(&model.Floor{ID: 10, BranchID: 1, FloorNumber: 1}, nil)
	f.rooms.On("Update", mock.Anything, mock.Anything).Return(nil)
	f.rooms.On("Resize", mock.Anything, uint64(20), 10, 14).Return(nil)

	r, err := f.svc.UpdateRoom(context.Background(), 20, RoomInput{RoomNo: "R1", SeatsCount: 14})
	require.NoError(t, err)
	assert.Equal(t, 14, r.SeatsCount)
	f.rooms.AssertCalled(t, "Resize", mock.Anything, uint64(20), 10, 14)
}
