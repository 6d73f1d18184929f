package model

import "time"

// Seat is the leaf bookable unit. IsBlocked is a manual,
// booking-independent "out of service" marker: availability always
// consults booking rows, never this flag alone.
type Seat struct {
	ID        uint64    // seats.id
	RoomID    uint64    // seats.room_id
	SeatNo    string    // seats.seat_no (e.g. "S12")
	IsBlocked bool      // seats.is_blocked
	CreatedAt time.Time // seats.created_at
	UpdatedAt time.Time // seats.updated_at
}
