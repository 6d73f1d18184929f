package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/studyspot/seat-booking/internal/model"
)

// AnnouncementRepo stores the bulk broadcast history. Targets are
// persisted as a comma-separated list; the set is small and closed.
type AnnouncementRepo struct {
	db *sql.DB
}

// NewAnnouncementRepo constructs an AnnouncementRepo.
func NewAnnouncementRepo(db *sql.DB) *AnnouncementRepo { return &AnnouncementRepo{db: db} }

// Create inserts an announcement and populates its generated ID.
func (r *AnnouncementRepo) Create(ctx context.Context, a *model.Announcement) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO announcements (message, targets, recipient_count) VALUES (?, ?, ?)`,
		a.Message, strings.Join(a.Targets, ","), a.RecipientCount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// UpdateRecipientCount writes back the fan-out size after dispatch
// has been queued.
func (r *AnnouncementRepo) UpdateRecipientCount(ctx context.Context, id uint64, count int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE announcements SET recipient_count = ? WHERE id = ?`, count, id)
	return err
}

// List returns the broadcast history, newest first.
func (r *AnnouncementRepo) List(ctx context.Context) ([]model.Announcement, error) {
	const q = `SELECT id, message, targets, recipient_count, created_at
	           FROM announcements ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Announcement
	for rows.Next() {
		var (
			a       model.Announcement
			targets string
		)
		if err := rows.Scan(&a.ID, &a.Message, &targets, &a.RecipientCount, &a.CreatedAt); err != nil {
			return nil, err
		}
		if targets != "" {
			a.Targets = strings.Split(targets, ",")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
