package model

import "time"

// Holiday marks a date on which the booking UI blocks date
// selection. Purely advisory: it does not affect the seat
// availability overlap check. BranchID nil means all branches.
type Holiday struct {
	ID       uint64    // holidays.id
	Date     time.Time // holidays.date (DATE)
	BranchID *uint64   // holidays.branch_id (nullable)
	Reason   string    // holidays.reason
}
