package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/studyspot/seat-booking/internal/model"
)

// AdminRepo provides access to staff accounts. Admins are looked up
// by phone at login and by ID when resolving a session.
type AdminRepo struct{ DB *sql.DB }

// NewAdminRepo constructs an AdminRepo.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByPhone fetches an admin by normalized phone number.
func (r *AdminRepo) GetByPhone(ctx context.Context, phone string) (model.Admin, error) {
	phone = strings.TrimSpace(phone)
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, phone, password_hash, is_active, created_at, updated_at FROM admins WHERE phone=? LIMIT 1",
		phone).Scan(&a.ID, &a.Name, &a.Phone, &a.PasswordHash, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return a, ErrAdminNotFound
	}
	return a, err
}

// GetByID fetches an admin by id.
func (r *AdminRepo) GetByID(ctx context.Context, id uint64) (model.Admin, error) {
	var a model.Admin
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, phone, password_hash, is_active, created_at, updated_at FROM admins WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Name, &a.Phone, &a.PasswordHash, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return a, ErrAdminNotFound
	}
	return a, err
}
