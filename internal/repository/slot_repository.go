package repository

import (
	"context"
	"database/sql"

	"github.com/studyspot/seat-booking/internal/model"
)

// SlotRepo provides read access to the fixed slot products.
type SlotRepo struct {
	db *sql.DB
}

// NewSlotRepo constructs a SlotRepo with the given DB handle.
func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

// ListActive returns active slots ordered by duration.
func (r *SlotRepo) ListActive(ctx context.Context) ([]model.Slot, error) {
	const q = `SELECT id, name, duration_days, price, is_active
	           FROM slots WHERE is_active = 1 ORDER BY duration_days`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Slot
	for rows.Next() {
		var s model.Slot
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationDays, &s.Price, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches a slot by its string identifier.
func (r *SlotRepo) GetByID(ctx context.Context, id string) (*model.Slot, error) {
	const q = `SELECT id, name, duration_days, price, is_active FROM slots WHERE id = ?`
	var s model.Slot
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.Name, &s.DurationDays, &s.Price, &s.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
