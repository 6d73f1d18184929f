package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

type mockBookingStore struct{ mock.Mock }

func (m *mockBookingStore) CreateIfAvailable(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) List(ctx context.Context) ([]model.Booking, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingStore) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBookingStore) OverlappingSeatIDs(ctx context.Context, start, end time.Time) (map[uint64]struct{}, error) {
	args := m.Called(ctx, start, end)
	if v := args.Get(0); v != nil {
		return v.(map[uint64]struct{}), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) ActiveInScope(ctx context.Context, branchID uint64, floorNumber *int, roomNo, seatNo *string, onOrAfter time.Time) ([]string, error) {
	args := m.Called(ctx, branchID, floorNumber, roomNo, seatNo, onOrAfter)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]model.Booking, error) {
	args := m.Called(ctx, cutoff)
	if v := args.Get(0); v != nil {
		return v.([]model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) DistinctPhones(ctx context.Context, target string, today time.Time) ([]string, error) {
	args := m.Called(ctx, target, today)
	if v := args.Get(0); v != nil {
		return v.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingStore) Stats(ctx context.Context) (int, int, int, int64, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Int(2), args.Get(3).(int64), args.Error(4)
}

func (m *mockBookingStore) MonthlyCounts(ctx context.Context, since time.Time) ([]repository.MonthlyCount, error) {
	args := m.Called(ctx, since)
	if v := args.Get(0); v != nil {
		return v.([]repository.MonthlyCount), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSeatStore struct{ mock.Mock }

func (m *mockSeatStore) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Seat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeatStore) GetByRoomAndNo(ctx context.Context, roomID uint64, seatNo string) (*model.Seat, error) {
	args := m.Called(ctx, roomID, seatNo)
	if v := args.Get(0); v != nil {
		return v.(*model.Seat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeatStore) ListByRoom(ctx context.Context, roomID uint64) ([]model.Seat, error) {
	args := m.Called(ctx, roomID)
	if v := args.Get(0); v != nil {
		return v.([]model.Seat), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeatStore) SetBlocked(ctx context.Context, id uint64, blocked bool) error {
	return m.Called(ctx, id, blocked).Error(0)
}

func (m *mockSeatStore) ListAdmin(ctx context.Context) ([]repository.AdminSeat, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]repository.AdminSeat), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBranchStore struct{ mock.Mock }

func (m *mockBranchStore) Create(ctx context.Context, b *model.Branch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBranchStore) GetByID(ctx context.Context, id uint64) (*model.Branch, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBranchStore) List(ctx context.Context) ([]model.Branch, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Branch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBranchStore) Update(ctx context.Context, b *model.Branch) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBranchStore) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFloorStore struct{ mock.Mock }

func (m *mockFloorStore) Create(ctx context.Context, f *model.Floor) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFloorStore) GetByID(ctx context.Context, id uint64) (*model.Floor, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Floor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorStore) GetByBranchAndNumber(ctx context.Context, branchID uint64, floorNumber int) (*model.Floor, error) {
	args := m.Called(ctx, branchID, floorNumber)
	if v := args.Get(0); v != nil {
		return v.(*model.Floor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorStore) ListByBranch(ctx context.Context, branchID uint64) ([]model.Floor, error) {
	args := m.Called(ctx, branchID)
	if v := args.Get(0); v != nil {
		return v.([]model.Floor), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorStore) UpdateNumber(ctx context.Context, id uint64, floorNumber int) error {
	return m.Called(ctx, id, floorNumber).Error(0)
}

func (m *mockFloorStore) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRoomStore struct{ mock.Mock }

func (m *mockRoomStore) CreateWithSeats(ctx context.Context, room *model.Room, seatCount int) error {
	return m.Called(ctx, room, seatCount).Error(0)
}

func (m *mockRoomStore) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) GetByFloorAndNo(ctx context.Context, floorID uint64, roomNo string) (*model.Room, error) {
	args := m.Called(ctx, floorID, roomNo)
	if v := args.Get(0); v != nil {
		return v.(*model.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) ListByFloor(ctx context.Context, floorID uint64) ([]model.Room, error) {
	args := m.Called(ctx, floorID)
	if v := args.Get(0); v != nil {
		return v.([]model.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomStore) Update(ctx context.Context, r *model.Room) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRoomStore) Resize(ctx context.Context, roomID uint64, oldCount, newCount int) error {
	return m.Called(ctx, roomID, oldCount, newCount).Error(0)
}

func (m *mockRoomStore) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSlotStore struct{ mock.Mock }

func (m *mockSlotStore) ListActive(ctx context.Context) ([]model.Slot, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Slot), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSlotStore) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Slot), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPricingStore struct{ mock.Mock }

func (m *mockPricingStore) List(ctx context.Context) ([]model.PricingRule, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.PricingRule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPricingStore) Get(ctx context.Context, branchID uint64, isAC bool) (*model.PricingRule, error) {
	args := m.Called(ctx, branchID, isAC)
	if v := args.Get(0); v != nil {
		return v.(*model.PricingRule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPricingStore) Upsert(ctx context.Context, p model.PricingRule) error {
	return m.Called(ctx, p).Error(0)
}

type mockSettingStore struct{ mock.Mock }

func (m *mockSettingStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockSettingStore) Upsert(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

type mockAnnouncementStore struct{ mock.Mock }

func (m *mockAnnouncementStore) Create(ctx context.Context, a *model.Announcement) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAnnouncementStore) UpdateRecipientCount(ctx context.Context, id uint64, count int) error {
	return m.Called(ctx, id, count).Error(0)
}

func (m *mockAnnouncementStore) List(ctx context.Context) ([]model.Announcement, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Announcement), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHolidayStore struct{ mock.Mock }

func (m *mockHolidayStore) List(ctx context.Context) ([]model.Holiday, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Holiday), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHolidayStore) Create(ctx context.Context, h *model.Holiday) error {
	return m.Called(ctx, h).Error(0)
}

func (m *mockHolidayStore) Delete(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) BookingConfirmed(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockNotifier) Broadcast(ctx context.Context, phone, message string) error {
	return m.Called(ctx, phone, message).Error(0)
}
