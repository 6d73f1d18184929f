package repository

import (
	"context"
	"database/sql"

	"github.com/studyspot/seat-booking/internal/model"
)

// PricingRepo stores the branch-level daily rate defaults keyed by
// (branch, AC class).
type PricingRepo struct {
	db *sql.DB
}

// NewPricingRepo constructs a PricingRepo with the given DB handle.
func NewPricingRepo(db *sql.DB) *PricingRepo { return &PricingRepo{db: db} }

// List returns all pricing rules.
func (r *PricingRepo) List(ctx context.Context) ([]model.PricingRule, error) {
	const q = `SELECT branch_id, is_ac, daily_rate FROM pricing_rules ORDER BY branch_id, is_ac`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.PricingRule
	for rows.Next() {
		var p model.PricingRule
		if err := rows.Scan(&p.BranchID, &p.IsAC, &p.DailyRate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get fetches the rule for one (branch, AC class) pair.
func (r *PricingRepo) Get(ctx context.Context, branchID uint64, isAC bool) (*model.PricingRule, error) {
	const q = `SELECT branch_id, is_ac, daily_rate FROM pricing_rules WHERE branch_id = ? AND is_ac = ?`
	var p model.PricingRule
	err := r.db.QueryRowContext(ctx, q, branchID, isAC).Scan(&p.BranchID, &p.IsAC, &p.DailyRate)
	if err == sql.ErrNoRows {
		return nil, nil // absence is not an error; callers fall back
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or overwrites the rule for one (branch, AC class)
// pair.
func (r *PricingRepo) Upsert(ctx context.Context, p model.PricingRule) error {
	const q = `INSERT INTO pricing_rules (branch_id, is_ac, daily_rate) VALUES (?, ?, ?)
	           ON DUPLICATE KEY UPDATE daily_rate = VALUES(daily_rate)`
	_, err := r.db.ExecContext(ctx, q, p.BranchID, p.IsAC, p.DailyRate)
	return err
}
