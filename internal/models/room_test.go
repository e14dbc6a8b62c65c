package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomStatus_String(t *testing.T) {
	tests := []struct {
		name   string
		status RoomStatus
		want   string
	}{
		{"available", StatusAvailable, "Available"},
		{"occupied", StatusOccupied, "Occupied"},
		{"unknown", RoomStatus(7), "RoomStatus(7)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestNewRoom(t *testing.T) {
	room := NewRoom("101", "Single", "TV,AC")
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, "Single", room.Type)
	assert.Equal(t, "TV,AC", room.Features)
	assert.Equal(t, StatusAvailable, room.Status)
	assert.Empty(t, room.Customer)
	assert.Zero(t, room.Bill)
	assert.False(t, room.IsOccupied())
}

func TestRoom_IsOccupied(t *testing.T) {
	room := Room{Status: StatusOccupied, Customer: "Alice"}
	assert.True(t, room.IsOccupied())
}

func TestRoom_CustomerOrNone(t *testing.T) {
	room := NewRoom("101", "Single", "")
	assert.Equal(t, "None", room.CustomerOrNone())

	room.Customer = "Alice"
	assert.Equal(t, "Alice", room.CustomerOrNone())
}
