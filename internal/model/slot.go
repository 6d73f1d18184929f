package model

// Slot is a named fixed-duration booking product (e.g. "1 Month",
// 30 days). Price is the base price charged when no per-room daily
// rate is available; with a rate the amount is rate * DurationDays.
type Slot struct {
	ID           string // slots.id (e.g. "slot-1m")
	Name         string // slots.name
	DurationDays int    // slots.duration_days
	Price        int64  // slots.price
	IsActive     bool   // slots.is_active
}
