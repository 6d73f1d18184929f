package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studyspot/seat-booking/internal/model"
)

// RoomRepo provides access to rooms and the bulk seat generation
// that accompanies room provisioning. Seat numbering is sequential
// ("S1".."Sn"); growing a room appends seats and shrinking removes
// the highest-numbered ones.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// DB exposes the underlying handle for multi-repository transactions.
func (r *RoomRepo) DB() *sql.DB { return r.db }

// CreateWithSeats inserts the room and bulk-generates its seats
// inside one transaction. The room's ID and SeatsCount are
// populated on success.
func (r *RoomRepo) CreateWithSeats(ctx context.Context, room *model.Room, seatCount int) error {
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

	const q = `INSERT INTO rooms (floor_id, room_no, name, is_ac, price_daily, seats_count)
	           VALUES (?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, room.FloorID, room.RoomNo, room.Name, room.IsAC, room.PriceDaily, seatCount)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)
	room.SeatsCount = seatCount

	if err := createSeatRangeTx(ctx, tx, room.ID, 1, seatCount); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// createSeatRangeTx bulk-inserts seats numbered "S<from>".."S<to>"
// for a room. A no-op when from > to.
func createSeatRangeTx(ctx context.Context, tx *sql.Tx, roomID uint64, from, to int) error {
	if from > to {
		return nil
	}
	query := `INSERT INTO seats (room_id, seat_no) VALUES `
	args := make([]interface{}, 0, (to-from+1)*2)
	for i := from; i <= to; i++ {
		if i > from {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, roomID, fmt.Sprintf("S%d", i))
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetByID fetches a room by primary key.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, floor_id, room_no, name, is_ac, price_daily, seats_count, created_at, updated_at
	           FROM rooms WHERE id = ?`
	var m model.Room
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&m.ID, &m.FloorID, &m.RoomNo, &m.Name, &m.IsAC, &m.PriceDaily, &m.SeatsCount, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByFloorAndNo resolves a room from its natural key.
func (r *RoomRepo) GetByFloorAndNo(ctx context.Context, floorID uint64, roomNo string) (*model.Room, error) {
	const q = `SELECT id, floor_id, room_no, name, is_ac, price_daily, seats_count, created_at, updated_at
	           FROM rooms WHERE floor_id = ? AND room_no = ?`
	var m model.Room
	err := r.db.QueryRowContext(ctx, q, floorID, roomNo).
		Scan(&m.ID, &m.FloorID, &m.RoomNo, &m.Name, &m.IsAC, &m.PriceDaily, &m.SeatsCount, &m.CreatedAt, &m.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByFloor returns a floor's rooms ordered by room_no.
func (r *RoomRepo) ListByFloor(ctx context.Context, floorID uint64) ([]model.Room, error) {
	const q = `SELECT id, floor_id, room_no, name, is_ac, price_daily, seats_count, created_at, updated_at
	           FROM rooms WHERE floor_id = ? ORDER BY room_no`
	rows, err := r.db.QueryContext(ctx, q, floorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []model.Room
	for rows.Next() {
		var m model.Room
		if err := rows.Scan(&m.ID, &m.FloorID, &m.RoomNo, &m.Name, &m.IsAC, &m.PriceDaily, &m.SeatsCount, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update overwrites the mutable room attributes (not the seat count;
// use Resize for that).
func (r *RoomRepo) Update(ctx context.Context, m *model.Room) error {
	const q = `UPDATE rooms SET room_no = ?, name = ?, is_ac = ?, price_daily = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, m.RoomNo, m.Name, m.IsAC, m.PriceDaily, m.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrRoomNotFound
	}
	return err
}

// Resize changes the seat count: growing appends seats after the
// current count, shrinking deletes the highest-numbered seats. The
// seats_count column and the seat rows are updated in one
// transaction. The caller must have verified that removed seats
// carry no active bookings.
func (r *RoomRepo) Resize(ctx context.Context, roomID uint64, oldCount, newCount int) error {
	if newCount == oldCount {
		return nil
	}
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

	if newCount > oldCount {
		if err := createSeatRangeTx(ctx, tx, roomID, oldCount+1, newCount); err != nil {
			return err
		}
	} else {
		// Seat numbers are "S<n>" so a string range compare is wrong;
		// delete by explicit label list.
		query := `DELETE FROM seats WHERE room_id = ? AND seat_no IN (`
		args := []interface{}{roomID}
		for i := newCount + 1; i <= oldCount; i++ {
			if i > newCount+1 {
				query += ","
			}
			query += "?"
			args = append(args, fmt.Sprintf("S%d", i))
		}
		query += ")"
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx, `UPDATE rooms SET seats_count = ? WHERE id = ?`, newCount, roomID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// Delete removes a room; its seats cascade at the schema level.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrRoomNotFound
	}
	return err
}
