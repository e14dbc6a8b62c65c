package models

import "fmt"

// RoomStatus is the occupancy state of a room.
type RoomStatus int

const (
	StatusAvailable RoomStatus = iota
	StatusOccupied
)

func (s RoomStatus) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusOccupied:
		return "Occupied"
	default:
		return fmt.Sprintf("RoomStatus(%d)", int(s))
	}
}

// Room represents one room record in the register.
type Room struct {
	Number   string     `json:"number"`
	Type     string     `json:"type"`
	Features string     `json:"features"`
	Status   RoomStatus `json:"status"`
	Customer string     `json:"customer,omitempty"`
	Bill     int        `json:"bill"`
}

// NewRoom returns an available room with no guest and an empty bill.
func NewRoom(number, roomType, features string) Room {
	return Room{
		Number:   number,
		Type:     roomType,
		Features: features,
		Status:   StatusAvailable,
	}
}

// IsOccupied returns true if a guest is allocated to the room
func (r *Room) IsOccupied() bool {
	return r.Status == StatusOccupied
}

// CustomerOrNone renders the customer the way the snapshot file expects.
func (r *Room) CustomerOrNone() string {
	if r.Customer == "" {
		return "None"
	}
	return r.Customer
}

// Bill is the outcome of checking a guest out. It is reported, never stored.
type Bill struct {
	RoomNumber string `json:"room_number"`
	Customer   string `json:"customer"`
	Days       int    `json:"days"`
	DailyRate  int    `json:"daily_rate"`
	Total      int    `json:"total"`
}
