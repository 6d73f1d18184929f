package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studyspot/seat-booking/internal/model"
)

// BookingRepo provides CRUD and overlap queries for bookings. All
// date columns are DATE (no time-of-day) and ranges are inclusive
// on both ends. Status transitions are expressed as conditional
// updates so two concurrent admin actions cannot both succeed.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingCols = `id, customer_name, customer_phone, customer_email, slot_id,
	branch_id, floor_id, room_id, seat_id, start_date, end_date, amount, status,
	payment_screenshot_url, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (*model.Booking, error) {
	var (
		b          model.Booking
		email      sql.NullString
		slotID     sql.NullString
		screenshot sql.NullString
	)
	err := row.Scan(&b.ID, &b.CustomerName, &b.CustomerPhone, &email, &slotID,
		&b.BranchID, &b.FloorID, &b.RoomID, &b.SeatID, &b.StartDate, &b.EndDate,
		&b.Amount, &b.Status, &screenshot, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		v := email.String
		b.CustomerEmail = &v
	}
	if slotID.Valid {
		v := slotID.String
		b.SlotID = &v
	}
	if screenshot.Valid {
		v := screenshot.String
		b.ScreenshotURL = &v
	}
	return &b, nil
}

// CreateIfAvailable runs the overlap check and the insert inside a
// single transaction, locking any conflicting rows with FOR UPDATE
// so two concurrent requests for the same seat and dates cannot
// both insert. Returns ErrConflict when an active booking already
// overlaps the requested range.
func (r *BookingRepo) CreateIfAvailable(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	const overlap = `SELECT id FROM bookings
	                 WHERE seat_id = ? AND status IN ('pending','confirmed')
	                   AND start_date <= ? AND end_date >= ?
	                 LIMIT 1 FOR UPDATE`
	var conflictID string
	err = tx.QueryRowContext(ctx, overlap, b.SeatID, b.EndDate, b.StartDate).Scan(&conflictID)
	if err == nil {
		return ErrConflict
	}
	if err != sql.ErrNoRows {
		return err
	}

	const ins = `INSERT INTO bookings
	             (id, customer_name, customer_phone, customer_email, slot_id,
	              branch_id, floor_id, room_id, seat_id, start_date, end_date,
	              amount, status, payment_screenshot_url)
	             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, ins, b.ID, b.CustomerName, b.CustomerPhone,
		nullStr(b.CustomerEmail), nullStr(b.SlotID), b.BranchID, b.FloorID,
		b.RoomID, b.SeatID, b.StartDate, b.EndDate, b.Amount, b.Status,
		nullStr(b.ScreenshotURL))
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func nullStr(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// GetByID fetches a booking by its short ID.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	q := `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
	b, err := scanBooking(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all bookings, newest first.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	q := `SELECT ` + bookingCols + ` FROM bookings ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// UpdateStatus performs the conditional transition update. It
// reports whether a row actually changed; zero rows for an existing
// booking means the current status did not match `from`.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE bookings SET status = ? WHERE id = ? AND status = ?`, to, id, from)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete physically removes a booking row. Only the walk-in
// compensation path uses this; normal flows never delete.
func (r *BookingRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	return err
}

// OverlappingSeatIDs returns the set of seat IDs held by an active
// (pending or confirmed) booking intersecting [start, end].
func (r *BookingRepo) OverlappingSeatIDs(ctx context.Context, start, end time.Time) (map[uint64]struct{}, error) {
	const q = `SELECT DISTINCT seat_id FROM bookings
	           WHERE status IN ('pending','confirmed')
	             AND start_date <= ? AND end_date >= ?`
	rows, err := r.db.QueryContext(ctx, q, end, start)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	busy := make(map[uint64]struct{})
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		busy[id] = struct{}{}
	}
	return busy, rows.Err()
}

// ActiveInScope lists active bookings within a facility subtree as
// human-readable references ("BK-... (name - 2026-03-01)"). The
// floor/room/seat filters narrow the scope when non-nil; the branch
// is always required. Used by the structural delete guard.
func (r *BookingRepo) ActiveInScope(ctx context.Context, branchID uint64, floorNumber *int, roomNo, seatNo *string, onOrAfter time.Time) ([]string, error) {
	q := `SELECT bk.id, bk.customer_name, bk.start_date
	      FROM bookings bk
	      JOIN floors f ON f.id = bk.floor_id
	      JOIN seats s  ON s.id = bk.seat_id
	      JOIN rooms rm ON rm.id = s.room_id
	      WHERE bk.branch_id = ?
	        AND bk.status IN ('pending','confirmed')
	        AND bk.end_date >= ?`
	args := []interface{}{branchID, onOrAfter}
	if floorNumber != nil {
		q += ` AND f.floor_number = ?`
		args = append(args, *floorNumber)
	}
	if roomNo != nil {
		q += ` AND rm.room_no = ?`
		args = append(args, *roomNo)
	}
	if seatNo != nil {
		q += ` AND s.seat_no = ?`
		args = append(args, *seatNo)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var (
			id, name string
			start    time.Time
		)
		if err := rows.Scan(&id, &name, &start); err != nil {
			return nil, err
		}
		out = append(out, fmt.Sprintf("%s (%s - %s)", id, name, start.Format("2006-01-02")))
	}
	return out, rows.Err()
}

// ListConfirmedEndedBefore returns confirmed bookings whose end
// date has passed, for the expiry sweep.
func (r *BookingRepo) ListConfirmedEndedBefore(ctx context.Context, cutoff time.Time) ([]model.Booking, error) {
	q := `SELECT ` + bookingCols + ` FROM bookings WHERE status = 'confirmed' AND end_date < ?`
	rows, err := r.db.QueryContext(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

// DistinctPhones returns the distinct customer phone numbers for an
// announcement target group, evaluated against `today`.
func (r *BookingRepo) DistinctPhones(ctx context.Context, target string, today time.Time) ([]string, error) {
	var q string
	args := []interface{}{}
	switch target {
	case model.TargetAll:
		q = `SELECT DISTINCT customer_phone FROM bookings`
	case model.TargetActive:
		q = `SELECT DISTINCT customer_phone FROM bookings WHERE status = 'confirmed' AND end_date >= ?`
		args = append(args, today)
	case model.TargetPending:
		q = `SELECT DISTINCT customer_phone FROM bookings WHERE status = 'pending'`
	case model.TargetPast:
		q = `SELECT DISTINCT customer_phone FROM bookings WHERE status = 'confirmed' AND end_date < ?`
		args = append(args, today)
	default:
		return nil, fmt.Errorf("unknown announcement target %q", target)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Stats aggregates the dashboard counters in one round trip.
func (r *BookingRepo) Stats(ctx context.Context) (total, active, pending int, revenue int64, err error) {
	const q = `SELECT COUNT(*),
	                  COALESCE(SUM(status = 'confirmed'), 0),
	                  COALESCE(SUM(status = 'pending'), 0),
	                  COALESCE(SUM(CASE WHEN status = 'confirmed' THEN amount ELSE 0 END), 0)
	           FROM bookings`
	err = r.db.QueryRowContext(ctx, q).Scan(&total, &active, &pending, &revenue)
	return
}

// MonthlyCount is one month's booking count for the dashboard chart.
type MonthlyCount struct {
	Month string // "2026-03"
	Count int
}

// MonthlyCounts returns per-month creation counts for the last n
// months, oldest first. Months with no bookings are filled in by
// the caller.
func (r *BookingRepo) MonthlyCounts(ctx context.Context, since time.Time) ([]MonthlyCount, error) {
	const q = `SELECT DATE_FORMAT(created_at, '%Y-%m') AS ym, COUNT(*)
	           FROM bookings WHERE created_at >= ?
	           GROUP BY ym ORDER BY ym`
	rows, err := r.db.QueryContext(ctx, q, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MonthlyCount
	for rows.Next() {
		var m MonthlyCount
		if err := rows.Scan(&m.Month, &m.Count); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
