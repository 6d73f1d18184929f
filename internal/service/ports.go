package service

import (
	"context"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

// Store interfaces consumed by the services. The repository types
// satisfy them directly; tests substitute mocks.

// BookingStore is the persistence port for bookings.
type BookingStore interface {
	CreateIfAvailable(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
	Delete(ctx context.Context, id string) error
	OverlappingSeatIDs(ctx context.Context, start, end time.Time) (map[uint64]struct{}, error)
	ActiveInScope(ctx context.Context, branchID uint64, floorNumber *int, roomNo, seatNo *string, onOrAfter time.Time) ([]string, error)
	ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]model.Booking, error)
	DistinctPhones(ctx context.Context, target string, today time.Time) ([]string, error)
	Stats(ctx context.Context) (total, active, pending int, revenue int64, err error)
	MonthlyCounts(ctx context.Context, since time.Time) ([]repository.MonthlyCount, error)
}

// SeatStore is the persistence port for seats.
type SeatStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Seat, error)
	GetByRoomAndNo(ctx context.Context, roomID uint64, seatNo string) (*model.Seat, error)
	ListByRoom(ctx context.Context, roomID uint64) ([]model.Seat, error)
	SetBlocked(ctx context.Context, id uint64, blocked bool) error
	ListAdmin(ctx context.Context) ([]repository.AdminSeat, error)
}

// BranchStore is the persistence port for branches.
type BranchStore interface {
	Create(ctx context.Context, b *model.Branch) error
	GetByID(ctx context.Context, id uint64) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	Update(ctx context.Context, b *model.Branch) error
	Delete(ctx context.Context, id uint64) error
}

// FloorStore is the persistence port for floors.
type FloorStore interface {
	Create(ctx context.Context, f *model.Floor) error
	GetByID(ctx context.Context, id uint64) (*model.Floor, error)
	GetByBranchAndNumber(ctx context.Context, branchID uint64, floorNumber int) (*model.Floor, error)
	ListByBranch(ctx context.Context, branchID uint64) ([]model.Floor, error)
	UpdateNumber(ctx context.Context, id uint64, floorNumber int) error
	Delete(ctx context.Context, id uint64) error
}

// RoomStore is the persistence port for rooms.
type RoomStore interface {
	CreateWithSeats(ctx context.Context, room *model.Room, seatCount int) error
	GetByID(ctx context.Context, id uint64) (*model.Room, error)
	GetByFloorAndNo(ctx context.Context, floorID uint64, roomNo string) (*model.Room, error)
	ListByFloor(ctx context.Context, floorID uint64) ([]model.Room, error)
	Update(ctx context.Context, m *model.Room) error
	Resize(ctx context.Context, roomID uint64, oldCount, newCount int) error
	Delete(ctx context.Context, id uint64) error
}

// SlotStore is the persistence port for slot products.
type SlotStore interface {
	ListActive(ctx context.Context) ([]model.Slot, error)
	GetByID(ctx context.Context, id string) (*model.Slot, error)
}

// PricingStore is the persistence port for branch pricing rules.
type PricingStore interface {
	List(ctx context.Context) ([]model.PricingRule, error)
	Get(ctx context.Context, branchID uint64, isAC bool) (*model.PricingRule, error)
	Upsert(ctx context.Context, p model.PricingRule) error
}

// SettingStore is the persistence port for key/value settings.
type SettingStore interface {
	Get(ctx context.Context, key string) (string, error)
	Upsert(ctx context.Context, key, value string) error
}

// HolidayStore is the persistence port for holiday closures.
type HolidayStore interface {
	List(ctx context.Context) ([]model.Holiday, error)
	Create(ctx context.Context, h *model.Holiday) error
	Delete(ctx context.Context, id uint64) error
}

// AnnouncementStore is the persistence port for broadcast history.
type AnnouncementStore interface {
	Create(ctx context.Context, a *model.Announcement) error
	UpdateRecipientCount(ctx context.Context, id uint64, count int) error
	List(ctx context.Context) ([]model.Announcement, error)
}

// Notifier queues outbound WhatsApp messages. Implementations are
// fire-and-forget from the caller's point of view: the message
// broker owns delivery, the caller only logs publish failures.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b *model.Booking) error
	Broadcast(ctx context.Context, phone, message string) error
}
