// Package service holds the room register and its snapshot file. Failures
// are reported through the sentinel errors below; callers match them with
// errors.Is and decide what to tell the operator.
package service

import "errors"

var (
	// ErrDuplicateRoom is returned when adding a room number that is
	// already registered.
	ErrDuplicateRoom = errors.New("room already exists")

	// ErrRoomNotFound is returned when the room number is not registered.
	// Billing also returns it for rooms that exist but are not occupied.
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomOccupied is returned when allocating a room that already has
	// a guest.
	ErrRoomOccupied = errors.New("room is already occupied")

	// ErrInvalidDuration is returned when days stayed is not an integer.
	ErrInvalidDuration = errors.New("days stayed must be a number")

	// ErrIOFailure wraps any file system error raised by the snapshot file.
	ErrIOFailure = errors.New("snapshot file i/o failure")

	// ErrNoDataFile reports that the snapshot file has not been written yet.
	ErrNoDataFile = errors.New("data file does not exist")
)
