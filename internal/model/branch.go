package model

import "time"

// Branch is a top-level physical facility. Branches contain
// numbered floors, which in turn contain rooms and seats.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name (e.g. "Branch 1 — Koramangala").
//  Address   – street address shown to customers.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Branch struct {
	ID        uint64    // branches.id
	Name      string    // branches.name
	Address   string    // branches.address
	CreatedAt time.Time // branches.created_at
	UpdatedAt time.Time // branches.updated_at
}
