package model

import "time"

// Booking statuses. A booking starts as pending and is moved by the
// lifecycle service: pending -> confirmed | rejected, and
// confirmed -> revoked | expired. StatusCancelled is kept for schema
// compatibility but no operation currently produces it.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusRejected  = "rejected"
	StatusRevoked   = "revoked"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Booking records one reservation attempt for a single seat over an
// inclusive calendar date range. The ID is a short human-readable
// string ("BK-..." ) generated at creation time; it doubles as the
// UPI payment reference shown to the customer.
//
// Fields:
//  ID            – primary key, "BK-" + base36 timestamp + random.
//  CustomerName  – full name supplied at submission.
//  CustomerPhone – contact phone, also the notification target.
//  CustomerEmail – optional email.
//  SlotID        – fixed slot product used, if any (nil for custom
//                  date ranges).
//  BranchID/FloorID/RoomID/SeatID – resolved location references.
//  StartDate     – first booked day (inclusive, date only, UTC).
//  EndDate       – last booked day (inclusive, date only, UTC).
//  Amount        – price in whole currency units.
//  Status        – one of the Status* constants above.
//  ScreenshotURL – payment screenshot reference, opaque to the core.
type Booking struct {
	ID            string    // bookings.id
	CustomerName  string    // bookings.customer_name
	CustomerPhone string    // bookings.customer_phone
	CustomerEmail *string   // bookings.customer_email (nullable)
	SlotID        *string   // bookings.slot_id (nullable)
	BranchID      uint64    // bookings.branch_id
	FloorID       uint64    // bookings.floor_id
	RoomID        uint64    // bookings.room_id
	SeatID        uint64    // bookings.seat_id
	StartDate     time.Time // bookings.start_date (DATE)
	EndDate       time.Time // bookings.end_date (DATE)
	Amount        int64     // bookings.amount
	Status        string    // bookings.status
	ScreenshotURL *string   // bookings.payment_screenshot_url (nullable)
	CreatedAt     time.Time // bookings.created_at
	UpdatedAt     time.Time // bookings.updated_at
}

// Active reports whether the booking holds its seat for overlap
// purposes (pending and confirmed rows both count).
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether the booking's inclusive date range
// intersects [start, end].
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
