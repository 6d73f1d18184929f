package model

import "time"

// Admin is a staff account for the management surface. Admins log
// in with phone + password and receive JWT session tokens.
type Admin struct {
	ID           uint64    // admins.id
	Name         string    // admins.name
	Phone        string    // admins.phone (unique)
	PasswordHash string    // admins.password_hash
	IsActive     bool      // admins.is_active
	CreatedAt    time.Time // admins.created_at
	UpdatedAt    time.Time // admins.updated_at
}
