package repository

import (
	"context"
	"database/sql"

	"github.com/studyspot/seat-booking/internal/model"
)

// FloorRepo provides access to floors. Floors are addressed either
// by primary key or by the natural key (branch_id, floor_number)
// that customers see.
type FloorRepo struct {
	db *sql.DB
}

// NewFloorRepo constructs a FloorRepo with the given DB handle.
func NewFloorRepo(db *sql.DB) *FloorRepo { return &FloorRepo{db: db} }

// Create inserts a floor and populates its generated ID.
func (r *FloorRepo) Create(ctx context.Context, f *model.Floor) error {
	const q = `INSERT INTO floors (branch_id, floor_number) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, f.BranchID, f.FloorNumber)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	f.ID = uint64(id)
	return nil
}

// GetByID fetches a floor by primary key.
func (r *FloorRepo) GetByID(ctx context.Context, id uint64) (*model.Floor, error) {
	const q = `SELECT id, branch_id, floor_number, created_at, updated_at FROM floors WHERE id = ?`
	var f model.Floor
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&f.ID, &f.BranchID, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrFloorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByBranchAndNumber resolves a floor from its natural key.
func (r *FloorRepo) GetByBranchAndNumber(ctx context.Context, branchID uint64, floorNumber int) (*model.Floor, error) {
	const q = `SELECT id, branch_id, floor_number, created_at, updated_at
	           FROM floors WHERE branch_id = ? AND floor_number = ?`
	var f model.Floor
	err := r.db.QueryRowContext(ctx, q, branchID, floorNumber).
		Scan(&f.ID, &f.BranchID, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrFloorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// ListByBranch returns a branch's floors ordered by floor number.
func (r *FloorRepo) ListByBranch(ctx context.Context, branchID uint64) ([]model.Floor, error) {
	const q = `SELECT id, branch_id, floor_number, created_at, updated_at
	           FROM floors WHERE branch_id = ? ORDER BY floor_number`
	rows, err := r.db.QueryContext(ctx, q, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Floor
	for rows.Next() {
		var f model.Floor
		if err := rows.Scan(&f.ID, &f.BranchID, &f.FloorNumber, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpdateNumber renames a floor within its branch.
func (r *FloorRepo) UpdateNumber(ctx context.Context, id uint64, floorNumber int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE floors SET floor_number = ? WHERE id = ?`, floorNumber, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrFloorNotFound
	}
	return err
}

// Delete removes a floor; rooms and seats cascade at the schema
// level. The caller must have run the active-booking guard first.
func (r *FloorRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM floors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrFloorNotFound
	}
	return err
}
