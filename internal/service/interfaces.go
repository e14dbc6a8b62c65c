package service

import "github.com/EpicMandM/lhms/internal/models"

// RoomRegister abstracts the register operations for testability.
type RoomRegister interface {
	CheckNew(number string) error
	Add(number, roomType, features string) (*models.Room, error)
	Delete(number string) error
	ListRooms() ([]*models.Room, error)
	CheckAllocatable(number string) error
	Allocate(number, customer string) error
	ListAllocations() ([]*models.Room, error)
	CheckOccupied(number string) error
	BillAndDeallocate(number, daysText string) (*models.Bill, error)
}

// SnapshotStore abstracts the snapshot file for testability.
type SnapshotStore interface {
	Path() string
	SaveSnapshot(rooms []*models.Room) error
	ReadSnapshot() (string, error)
	BackupAndClear() (*BackupResult, error)
}

var (
	_ RoomRegister  = (*Register)(nil)
	_ SnapshotStore = (*SnapshotFile)(nil)
)
