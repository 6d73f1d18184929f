// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: a
// missing entity maps to HTTP 404, while ErrConflict signals that an
// operation cannot proceed because of existing active bookings (e.g.
// deleting a room whose seats are still booked, or inserting a
// booking whose date range overlaps another one for the same seat).
package repository

import "errors"

// ErrBranchNotFound is returned when a branch lookup yields no rows.
var ErrBranchNotFound = errors.New("branch not found")

// ErrFloorNotFound is returned when a floor lookup yields no rows.
var ErrFloorNotFound = errors.New("floor not found")

// ErrRoomNotFound is returned when a room lookup yields no rows.
var ErrRoomNotFound = errors.New("room not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrBookingNotFound is returned when no booking exists with the
// requested ID.
var ErrBookingNotFound = errors.New("booking not found")

// ErrSlotNotFound is returned when a slot product lookup yields no
// rows.
var ErrSlotNotFound = errors.New("slot not found")

// ErrSettingNotFound is returned when a settings key has no value.
var ErrSettingNotFound = errors.New("setting not found")

// ErrAdminNotFound is returned when no admin account matches the
// given phone or ID.
var ErrAdminNotFound = errors.New("admin not found")

// ErrConflict is returned when a write cannot be performed because
// of conflicting state: a seat already booked for an overlapping
// date range, or a structural delete that would orphan active
// bookings. Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")
