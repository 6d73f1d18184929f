// Package service implements the booking domain logic: seat
// availability resolution, the booking lifecycle state machine,
// pricing, facility management guards, the settings cache and the
// announcement fan-out. Services depend on small store interfaces
// (ports.go) implemented by the repository layer so the logic can
// be exercised without a database.
package service

import "errors"

// ErrInvalidState is returned when a lifecycle transition is
// attempted from the wrong source status (e.g. approving a booking
// that is not pending). The booking is never mutated in that case.
var ErrInvalidState = errors.New("invalid state")

// ErrValidation is returned for malformed input: a reversed date
// range, a missing required field, an unknown announcement target.
var ErrValidation = errors.New("validation failed")
