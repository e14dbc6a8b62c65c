package store

import (
	"errors"

	"github.com/EpicMandM/lhms/internal/models"
)

// ErrNotFound is returned when no room is stored under the requested number.
var ErrNotFound = errors.New("room not found in store")

// Store defines the interface for room record storage.
type Store interface {
	GetRoom(number string) (*models.Room, error)
	SaveRoom(room *models.Room) error
	DeleteRoom(number string) error
	ListRooms() ([]*models.Room, error)
	Count() int
}
