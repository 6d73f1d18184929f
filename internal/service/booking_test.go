package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

type bookingFixture struct {
	branches *mockBranchStore
	floors   *mockFloorStore
	rooms    *mockRoomStore
	seats    *mockSeatStore
	bookings *mockBookingStore
	slots    *mockSlotStore
	rules    *mockPricingStore
	notifier *mockNotifier
	svc      *BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		branches: &mockBranchStore{},
		floors:   &mockFloorStore{},
		rooms:    &mockRoomStore{},
		seats:    &mockSeatStore{},
		bookings: &mockBookingStore{},
		slots:    &mockSlotStore{},
		rules:    &mockPricingStore{},
		notifier: &mockNotifier{},
	}
	pricing := NewPricingService(f.slots, f.rules)
	f.svc = NewBookingService(f.branches, f.floors, f.rooms, f.seats, f.bookings, pricing, f.notifier)
	return f
}

// expectResolve wires the Branch -> Floor -> Room -> Seat lookups
// for the standard test location.
func (f *bookingFixture) expectResolve(roomRate int64) {
	f.branches.On("GetByID", mock.Anything, uint64(1)).
		Return(&model.Branch{ID: 1, Name: "Main"}, nil)
	f.floors.On("GetByBranchAndNumber", mock.Anything, uint64(1), 2).
		Return(&model.Floor{ID: 10, BranchID: 1, FloorNumber: 2}, nil)
	f.rooms.On("GetByFloorAndNo", mock.Anything, uint64(10), "R1").
		Return(&model.Room{ID: 20, FloorID: 10, RoomNo: "R1", PriceDaily: roomRate}, nil)
	f.seats.On("GetByRoomAndNo", mock.Anything, uint64(20), "S3").
		Return(&model.Seat{ID: 30, RoomID: 20, SeatNo: "S3"}, nil)
}

func testLocation() Location {
	return Location{BranchID: 1, FloorNumber: 2, RoomNo: "R1", SeatNo: "S3"}
}

func TestCreatePendingBooking(t *testing.T) {
	f := newBookingFixture()
	f.expectResolve(100)
	f.slots.On("GetByID", mock.Anything, "monthly").
		Return(&model.Slot{ID: "monthly", Name: "Monthly", DurationDays: 30, Price: 2500, IsActive: true}, nil)

	var stored *model.Booking
	f.bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*model.Booking")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.Booking) }).
		Return(nil)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b, err := f.svc.Create(context.Background(), CreateInput{
		Name:      "Asha",
		Phone:     "9876543210",
		Location:  testLocation(),
		SlotID:    "monthly",
		StartDate: start,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, model.StatusPending, b.Status)
	assert.True(t, strings.HasPrefix(b.ID, "BK-"))
	assert.Equal(t, int64(3000), b.Amount) // 30 days x room rate 100
	assert.Equal(t, start.AddDate(0, 0, 30), b.EndDate)
	assert.Equal(t, uint64(30), b.SeatID)
	require.NotNil(t, b.SlotID)
	assert.Equal(t, "monthly", *b.SlotID)
}

func TestCreateSeatConflict(t *testing.T) {
	f := newBookingFixture()
	f.expectResolve(100)
	f.bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).
		Return(repository.ErrConflict)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.svc.Create(context.Background(), CreateInput{
		Name:      "Asha",
		Phone:     "9876543210",
		Location:  testLocation(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestCreateRequiresContact(t *testing.T) {
	f := newBookingFixture()
	_, err := f.svc.Create(context.Background(), CreateInput{
		Phone:     "9876543210",
		Location:  testLocation(),
		StartDate: time.Now(),
		EndDate:   time.Now(),
	})
	assert.ErrorIs(t, err, ErrValidation)
	f.bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestCreateRequiresSlotOrEndDate(t *testing.T) {
	f := newBookingFixture()
	_, err := f.svc.Create(context.Background(), CreateInput{
		Name:      "Asha",
		Phone:     "9876543210",
		Location:  testLocation(),
		StartDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApproveConfirmsAndNotifies(t *testing.T) {
	f := newBookingFixture()
	pending := &model.Booking{ID: "BK-1", SeatID: 30, Status: model.StatusPending, CustomerPhone: "9876543210"}
	f.bookings.On("GetByID", mock.Anything, "BK-1").Return(pending, nil)
	f.bookings.On("UpdateStatus", mock.Anything, "BK-1", model.StatusPending, model.StatusConfirmed).
		Return(true, nil)
	f.notifier.On("BookingConfirmed", mock.Anything, mock.Anything).Return(nil)

	b, err := f.svc.Approve(context.Background(), "BK-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, b.Status)
	f.notifier.AssertCalled(t, "BookingConfirmed", mock.Anything, mock.Anything)
}

func TestApproveRejectsWrongState(t *testing.T) {
	f := newBookingFixture()
	confirmed := &model.Booking{ID: "BK-1", Status: model.StatusConfirmed}
	f.bookings.On("GetByID", mock.Anything, "BK-1").Return(confirmed, nil)
	f.bookings.On("UpdateStatus", mock.Anything, "BK-1", model.StatusPending, model.StatusConfirmed).
		Return(false, nil)

	_, err := f.svc.Approve(context.Background(), "BK-1")
	assert.ErrorIs(t, err, ErrInvalidState)
	f.notifier.AssertNotCalled(t, "BookingConfirmed", mock.Anything, mock.Anything)
}

func TestApproveUnknownBooking(t *testing.T) {
	f := newBookingFixture()
	f.bookings.On("GetByID", mock.Anything, "BK-missing").
		Return(nil, repository.ErrBookingNotFound)

	_, err := f.svc.Approve(context.Background(), "BK-missing")
	assert.ErrorIs(t, err, repository.ErrBookingNotFound)
}

func TestRejectUnblocksSeat(t *testing.T) {
	f := newBookingFixture()
	pending := &model.Booking{ID: "BK-1", SeatID: 30, Status: model.StatusPending}
	f.bookings.On("GetByID", mock.Anything, "BK-1").Return(pending, nil)
	f.bookings.On("UpdateStatus", mock.Anything, "BK-1", model.StatusPending, model.StatusRejected).
		Return(true, nil)
	f.seats.On("SetBlocked", mock.Anything, uint64(30), false).Return(nil)

	b, err := f.svc.Reject(context.Background(), "BK-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, b.Status)
	f.seats.AssertCalled(t, "SetBlocked", mock.Anything, uint64(30), false)
}

func TestRevokeSurvivesUnblockFailure(t *testing.T) {
	f := newBookingFixture()
	confirmed := &model.Booking{ID: "BK-1", SeatID: 30, Status: model.StatusConfirmed}
	f.bookings.On("GetByID", mock.Anything, "BK-1").Return(confirmed, nil)
	f.bookings.On("UpdateStatus", mock.Anything, "BK-1", model.StatusConfirmed, model.StatusRevoked).
		Return(true, nil)
	f.seats.On("SetBlocked", mock.Anything, uint64(30), false).
		Return(errors.New("db gone"))

	b, err := f.svc.Revoke(context.Background(), "BK-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRevoked, b.Status)
}

func TestWalkInBlocksSeat(t *testing.T) {
	f := newBookingFixture()
	f.expectResolve(100)
	f.bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil)
	f.seats.On("SetBlocked", mock.Anything, uint64(30), true).Return(nil)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	b, err := f.svc.CreateWalkIn(context.Background(), WalkInInput{
		Name:      "Ravi",
		Phone:     "9876501234",
		Location:  testLocation(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Amount:    700,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, b.Status)
	assert.Equal(t, int64(700), b.Amount)
}

func TestWalkInRollsBackWhenBlockFails(t *testing.T) {
	f := newBookingFixture()
	f.expectResolve(100)
	var createdID string
	f.bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { createdID = args.Get(1).(*model.Booking).ID }).
		Return(nil)
	f.seats.On("SetBlocked", mock.Anything, uint64(30), true).
		Return(errors.New("db gone"))
	f.bookings.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.svc.CreateWalkIn(context.Background(), WalkInInput{
		Name:      "Ravi",
		Phone:     "9876501234",
		Location:  testLocation(),
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Amount:    700,
	})
	require.Error(t, err)
	f.bookings.AssertCalled(t, "Delete", mock.Anything, createdID)
}

func TestExpireDueSweepsAllOverdue(t *testing.T) {
	f := newBookingFixture()
	f.svc.now = func() time.Time { return time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC) }
	cutoff := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	due := []model.Booking{
		{ID: "BK-1", SeatID: 30, Status: model.StatusConfirmed},
		{ID: "BK-2", SeatID: 31, Status: model.StatusConfirmed},
	}
	f.bookings.On("ListConfirmedEndedBefore", mock.Anything, cutoff).Return(due, nil)
	for _, b := range due {
		b := b
		f.bookings.On("GetByID", mock.Anything, b.ID).Return(&b, nil)
		f.bookings.On("UpdateStatus", mock.Anything, b.ID, model.StatusConfirmed, model.StatusExpired).
			Return(true, nil)
	}
	f.seats.On("SetBlocked", mock.Anything, mock.Anything, false).Return(nil)

	n, err := f.svc.ExpireDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
