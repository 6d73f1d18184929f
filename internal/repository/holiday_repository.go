package repository

import (
	"context"
	"database/sql"

	"github.com/studyspot/seat-booking/internal/model"
)

// HolidayRepo stores the advisory holiday calendar.
type HolidayRepo struct {
	db *sql.DB
}

// NewHolidayRepo constructs a HolidayRepo with the given DB handle.
func NewHolidayRepo(db *sql.DB) *HolidayRepo { return &HolidayRepo{db: db} }

// List returns all holidays ordered by date.
func (r *HolidayRepo) List(ctx context.Context) ([]model.Holiday, error) {
	const q = `SELECT id, date, branch_id, reason FROM holidays ORDER BY date`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Holiday
	for rows.Next() {
		var (
			h        model.Holiday
			branchID sql.NullInt64
		)
		if err := rows.Scan(&h.ID, &h.Date, &branchID, &h.Reason); err != nil {
			return nil, err
		}
		if branchID.Valid {
			v := uint64(branchID.Int64)
			h.BranchID = &v
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Create inserts a holiday and populates its generated ID.
func (r *HolidayRepo) Create(ctx context.Context, h *model.Holiday) error {
	var branchID interface{}
	if h.BranchID != nil {
		branchID = *h.BranchID
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO holidays (date, branch_id, reason) VALUES (?, ?, ?)`,
		h.Date, branchID, h.Reason)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return nil
}

// Delete removes a holiday by ID.
func (r *HolidayRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM holidays WHERE id = ?`, id)
	return err
}
