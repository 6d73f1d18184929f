package repository

import (
	"context"
	"database/sql"

	"github.com/studyspot/seat-booking/internal/model"
)

// AdminSeat is the flattened seat row shown on the admin seat
// management screen: a seat joined up through its room, floor and
// branch so the UI needs no further lookups.
type AdminSeat struct {
	ID          uint64
	SeatNo      string
	IsBlocked   bool
	RoomID      uint64
	RoomNo      string
	RoomName    string
	IsAC        bool
	PriceDaily  int64
	FloorID     uint64
	FloorNumber int
	BranchID    uint64
	BranchName  string
}

// SeatRepo provides access to seats, including the manual block
// flag used for maintenance and by the booking lifecycle.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo { return &SeatRepo{db: db} }

// GetByID fetches a seat by primary key.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = `SELECT id, room_id, seat_no, is_blocked, created_at, updated_at FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).Scan(&s.ID, &s.RoomID, &s.SeatNo, &s.IsBlocked, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByRoomAndNo resolves a seat from its natural key.
func (r *SeatRepo) GetByRoomAndNo(ctx context.Context, roomID uint64, seatNo string) (*model.Seat, error) {
	const q = `SELECT id, room_id, seat_no, is_blocked, created_at, updated_at
	           FROM seats WHERE room_id = ? AND seat_no = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, roomID, seatNo).Scan(&s.ID, &s.RoomID, &s.SeatNo, &s.IsBlocked, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByRoom returns all seats of a room ordered numerically by
// seat label (seat_no is "S<n>", so order by the numeric suffix).
func (r *SeatRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Seat, error) {
	const q = `SELECT id, room_id, seat_no, is_blocked, created_at, updated_at
	           FROM seats WHERE room_id = ?
	           ORDER BY CAST(SUBSTRING(seat_no, 2) AS UNSIGNED)`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.RoomID, &s.SeatNo, &s.IsBlocked, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SetBlocked toggles the manual block flag. Used both by explicit
// admin block/unblock actions and by the booking lifecycle as a
// best-effort side effect.
func (r *SeatRepo) SetBlocked(ctx context.Context, id uint64, blocked bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE seats SET is_blocked = ? WHERE id = ?`, blocked, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Distinguish "already in that state" from "no such seat".
		var exists uint64
		if scanErr := r.db.QueryRowContext(ctx, `SELECT id FROM seats WHERE id = ?`, id).Scan(&exists); scanErr == sql.ErrNoRows {
			return ErrSeatNotFound
		}
	}
	return nil
}

// ListAdmin returns every seat joined up through room, floor and
// branch, ordered by seat ID.
func (r *SeatRepo) ListAdmin(ctx context.Context) ([]AdminSeat, error) {
	const q = `SELECT s.id, s.seat_no, s.is_blocked,
	                  rm.id, rm.room_no, rm.name, rm.is_ac, rm.price_daily,
	                  f.id, f.floor_number, b.id, b.name
	           FROM seats s
	           JOIN rooms rm  ON rm.id = s.room_id
	           JOIN floors f  ON f.id = rm.floor_id
	           JOIN branches b ON b.id = f.branch_id
	           ORDER BY s.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AdminSeat
	for rows.Next() {
		var a AdminSeat
		if err := rows.Scan(&a.ID, &a.SeatNo, &a.IsBlocked,
			&a.RoomID, &a.RoomNo, &a.RoomName, &a.IsAC, &a.PriceDaily,
			&a.FloorID, &a.FloorNumber, &a.BranchID, &a.BranchName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
