package model

import "time"

// Floor is a numbered level inside a branch. The pair
// (branch_id, floor_number) is unique.
type Floor struct {
	ID          uint64    // floors.id
	BranchID    uint64    // floors.branch_id
	FloorNumber int       // floors.floor_number
	CreatedAt   time.Time // floors.created_at
	UpdatedAt   time.Time // floors.updated_at
}
