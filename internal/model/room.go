package model

import "time"

// Room is a bookable area inside a floor. Rooms carry their own
// air-conditioning flag and daily price; seats are generated when
// the room is provisioned and numbered "S1".."Sn".
//
// Fields:
//  ID         – primary key identifier.
//  FloorID    – floor to which this room belongs.
//  RoomNo     – short label unique within the floor (e.g. "R1").
//  Name       – display name (e.g. "Main Deck A").
//  IsAC       – whether the room is air conditioned.
//  PriceDaily – per-day rate in whole currency units; 0 means
//               "fall back to the branch pricing rule".
//  SeatsCount – number of seats provisioned for the room.
type Room struct {
	ID         uint64    // rooms.id
	FloorID    uint64    // rooms.floor_id
	RoomNo     string    // rooms.room_no
	Name       string    // rooms.name
	IsAC       bool      // rooms.is_ac
	PriceDaily int64     // rooms.price_daily
	SeatsCount int       // rooms.seats_count
	CreatedAt  time.Time // rooms.created_at
	UpdatedAt  time.Time // rooms.updated_at
}
