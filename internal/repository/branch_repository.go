package repository

import (
	"context"
	"database/sql"

	"github.com/studyspot/seat-booking/internal/model"
)

// BranchRepo provides CRUD operations for branches. Structural
// deletes are guarded at the service layer; the repository itself
// performs plain row operations.
type BranchRepo struct {
	db *sql.DB
}

// NewBranchRepo constructs a BranchRepo with the given DB handle.
func NewBranchRepo(db *sql.DB) *BranchRepo { return &BranchRepo{db: db} }

// DB exposes the underlying handle so callers can open transactions
// spanning multiple repositories.
func (r *BranchRepo) DB() *sql.DB { return r.db }

// Create inserts a branch and populates its generated ID.
func (r *BranchRepo) Create(ctx context.Context, b *model.Branch) error {
	const q = `INSERT INTO branches (name, address) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, b.Name, b.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a single branch.
func (r *BranchRepo) GetByID(ctx context.Context, id uint64) (*model.Branch, error) {
	const q = `SELECT id, name, address, created_at, updated_at FROM branches WHERE id = ?`
	var b model.Branch
	err := r.db.QueryRowContext(ctx, q, id).Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrBranchNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns all branches ordered by ID.
func (r *BranchRepo) List(ctx context.Context) ([]model.Branch, error) {
	const q = `SELECT id, name, address, created_at, updated_at FROM branches ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Branch
	for rows.Next() {
		var b model.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Update overwrites name and address of an existing branch.
func (r *BranchRepo) Update(ctx context.Context, b *model.Branch) error {
	const q = `UPDATE branches SET name = ?, address = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, b.Name, b.Address, b.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrBranchNotFound
	}
	return err
}

// Delete removes a branch. Floors, rooms and seats cascade at the
// schema level; the caller must have verified no active bookings
// remain in the subtree.
func (r *BranchRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM branches WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrBranchNotFound
	}
	return err
}
