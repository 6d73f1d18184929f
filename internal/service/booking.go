package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/utils"
)

// Location identifies a seat by the labels customers see.
type Location struct {
	BranchID    uint64
	FloorNumber int
	RoomNo      string
	SeatNo      string
}

// CreateInput carries a customer booking submission. Either SlotID
// or an explicit EndDate must be present; StartDate is always
// required.
type CreateInput struct {
	Name          string
	Phone         string
	Email         *string
	Location      Location
	SlotID        string
	StartDate     time.Time
	EndDate       time.Time
	ScreenshotURL *string
}

// WalkInInput carries an admin walk-in booking: explicit dates,
// immediate confirmation, optional manual amount.
type WalkInInput struct {
	Name      string
	Phone     string
	Email     *string
	Location  Location
	SlotID    string
	StartDate time.Time
	EndDate   time.Time
	Amount    int64 // 0 means "compute from the room rate"
}

// BookingService owns the booking lifecycle: creation with the
// authoritative overlap check, the pending/confirmed/terminal
// transitions, and their best-effort side effects (seat blocking
// and WhatsApp notification). Each transition is a single
// conditional status update; the backing store's row atomicity
// prevents two concurrent admin actions from both succeeding.
type BookingService struct {
	branches BranchStore
	floors   FloorStore
	rooms    RoomStore
	seats    SeatStore
	bookings BookingStore
	pricing  *PricingService
	notifier Notifier
	now      func() time.Time
}

// NewBookingService constructs a BookingService. notifier may be
// nil, in which case confirmation messages are skipped.
func NewBookingService(branches BranchStore, floors FloorStore, rooms RoomStore, seats SeatStore, bookings BookingStore, pricing *PricingService, notifier Notifier) *BookingService {
	if branches == nil || floors == nil || rooms == nil || seats == nil || bookings == nil || pricing == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{
		branches: branches,
		floors:   floors,
		rooms:    rooms,
		seats:    seats,
		bookings: bookings,
		pricing:  pricing,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// resolved is the outcome of walking Branch -> Floor -> Room -> Seat
// from customer-facing labels to row IDs.
type resolved struct {
	branch *model.Branch
	floor  *model.Floor
	room   *model.Room
	seat   *model.Seat
}

func (s *BookingService) resolveLocation(ctx context.Context, loc Location) (*resolved, error) {
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
	seat, err := s.seats.GetByRoomAndNo(ctx, room.ID, loc.SeatNo)
	if err != nil {
		return nil, err
	}
	return &resolved{branch: branch, floor: floor, room: room, seat: seat}, nil
}

func validateContact(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	return nil
}

// Create validates a customer submission, prices it, and inserts
// the booking in pending state. The overlap check runs at write
// time inside the store's transaction, so a Conflict here means the
// seat was taken between seat selection and submission.
func (s *BookingService) Create(ctx context.Context, in CreateInput) (*model.Booking, error) {
	if err := validateContact(in.Name, in.Phone); err != nil {
		return nil, err
	}
	if in.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrValidation)
	}
	if in.SlotID == "" && in.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: either slot or end date is required", ErrValidation)
	}
	if !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	r, err := s.resolveLocation(ctx, in.Location)
	if err != nil {
		return nil, err
	}
	quote, err := s.pricing.Quote(ctx, r.branch.ID, r.room, in.SlotID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	b := &model.Booking{
		ID:            utils.NewBookingID(),
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerPhone: strings.TrimSpace(in.Phone),
		CustomerEmail: in.Email,
		SlotID:        quote.SlotID,
		BranchID:      r.branch.ID,
		FloorID:       r.floor.ID,
		RoomID:        r.room.ID,
		SeatID:        r.seat.ID,
		StartDate:     quote.StartDate,
		EndDate:       quote.EndDate,
		Amount:        quote.Amount,
		Status:        model.StatusPending,
		ScreenshotURL: in.ScreenshotURL,
	}
	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// CreateWalkIn inserts an immediately-confirmed booking for an
// admin walk-in customer and blocks the seat. If the seat block
// fails the booking is rolled back (deleted) so a confirmed booking
// never exists on an unblocked seat.
func (s *BookingService) CreateWalkIn(ctx context.Context, in WalkInInput) (*model.Booking, error) {
	if err := validateContact(in.Name, in.Phone); err != nil {
		return nil, err
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	r, err := s.resolveLocation(ctx, in.Location)
	if err != nil {
		return nil, err
	}
	amount := in.Amount
	var slotID *string
	if amount == 0 {
		quote, err := s.pricing.Quote(ctx, r.branch.ID, r.room, in.SlotID, in.StartDate, in.EndDate)
		if err != nil {
			return nil, err
		}
		amount = quote.Amount
		slotID = quote.SlotID
	} else if in.SlotID != "" {
		v := in.SlotID
		slotID = &v
	}

	b := &model.Booking{
		ID:            utils.NewBookingID(),
		CustomerName:  strings.TrimSpace(in.Name),
		CustomerPhone: strings.TrimSpace(in.Phone),
		CustomerEmail: in.Email,
		SlotID:        slotID,
		BranchID:      r.branch.ID,
		FloorID:       r.floor.ID,
		RoomID:        r.room.ID,
		SeatID:        r.seat.ID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Amount:        amount,
		Status:        model.StatusConfirmed,
	}
	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		return nil, err
	}
	if err := s.seats.SetBlocked(ctx, r.seat.ID, true); err != nil {
		// Compensate: a confirmed booking must not remain when the
		// seat block could not be applied.
		if delErr := s.bookings.Delete(ctx, b.ID); delErr != nil {
			log.Printf("booking: rollback of %s failed after seat block error: %v", b.ID, delErr)
		}
		return nil, fmt.Errorf("block seat for walk-in: %w", err)
	}
	return b, nil
}

// Get fetches a booking by ID.
func (s *BookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// List returns all bookings, newest first.
func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.List(ctx)
}

// Approve moves a pending booking to confirmed and queues the
// WhatsApp confirmation. Notification failure is logged only; the
// booking stays confirmed.
func (s *BookingService) Approve(ctx context.Context, id string) (*model.Booking, error) {
	b, err := s.transition(ctx, id, model.StatusPending, model.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		if err := s.notifier.BookingConfirmed(ctx, b); err != nil {
			log.Printf("booking: confirmation notify for %s failed: %v", b.ID, err)
		}
	}
	return b, nil
}

// Reject moves a pending booking to rejected and unblocks the seat
// (best effort).
func (s *BookingService) Reject(ctx context.Context, id string) (*model.Booking, error) {
	return s.terminate(ctx, id, model.StatusPending, model.StatusRejected)
}

// Revoke moves a confirmed booking to revoked and unblocks the seat
// (best effort).
func (s *BookingService) Revoke(ctx context.Context, id string) (*model.Booking, error) {
	return s.terminate(ctx, id, model.StatusConfirmed, model.StatusRevoked)
}

// Expire moves a confirmed booking to expired and unblocks the seat
// (best effort).
func (s *BookingService) Expire(ctx context.Context, id string) (*model.Booking, error) {
	return s.terminate(ctx, id, model.StatusConfirmed, model.StatusExpired)
}

// ExpireDue transitions every confirmed booking whose end date has
// passed. Individual failures are logged and skipped; the number of
// bookings expired is returned.
func (s *BookingService) ExpireDue(ctx context.Context) (int, error) {
	today := dateOnly(s.now())
	due, err := s.bookings.ListConfirmedEndedBefore(ctx, today)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range due {
		if _, err := s.Expire(ctx, b.ID); err != nil {
			log.Printf("booking: expire sweep for %s failed: %v", b.ID, err)
			continue
		}
		n++
	}
	return n, nil
}

// transition performs the conditional status update. The prior read
// only serves error reporting; correctness rests on the conditional
// update itself.
func (s *BookingService) transition(ctx context.Context, id, from, to string) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.bookings.UpdateStatus(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: booking %s is %s, want %s", ErrInvalidState, id, b.Status, from)
	}
	b.Status = to
	return b, nil
}

// terminate is a transition followed by a best-effort seat unblock;
// unblock failure never rolls back the status change.
func (s *BookingService) terminate(ctx context.Context, id, from, to string) (*model.Booking, error) {
	b, err := s.transition(ctx, id, from, to)
	if err != nil {
		return nil, err
	}
	if err := s.seats.SetBlocked(ctx, b.SeatID, false); err != nil {
		log.Printf("booking: seat unblock after %s of %s failed: %v", to, b.ID, err)
	}
	return b, nil
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
