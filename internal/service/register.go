package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/EpicMandM/lhms/internal/logger"
	"github.com/EpicMandM/lhms/internal/models"
	"github.com/EpicMandM/lhms/internal/store"
)

// DailyRate is charged per night regardless of room type.
const DailyRate = 200

// Register tracks room inventory and occupancy for the running session.
type Register struct {
	store  store.Store
	logger *logger.Logger
}

func NewRegister(s store.Store, log *logger.Logger) *Register {
	if log == nil {
		log = logger.Discard()
	}
	return &Register{
		store:  s,
		logger: log,
	}
}

func (r *Register) room(number string) (*models.Room, error) {
	room, err := r.store.GetRoom(number)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("room %s: %w", number, ErrRoomNotFound)
	}
	if err != nil {
		return nil, err
	}
	return room, nil
}

// CheckNew fails with ErrDuplicateRoom if number is already registered.
func (r *Register) CheckNew(number string) error {
	_, err := r.store.GetRoom(number)
	switch {
	case err == nil:
		return fmt.Errorf("room %s: %w", number, ErrDuplicateRoom)
	case errors.Is(err, store.ErrNotFound):
		return nil
	default:
		return err
	}
}

// Add registers an available room with no guest.
func (r *Register) Add(number, roomType, features string) (*models.Room, error) {
	if err := r.CheckNew(number); err != nil {
		r.logger.Warn("Room not added", logger.Action("add_room"), logger.Room(number), logger.Error(err))
		return nil, err
	}
	room := models.NewRoom(number, roomType, features)
	if err := r.store.SaveRoom(&room); err != nil {
		return nil, err
	}
	r.logger.Info("Room added", logger.Action("add_room"), logger.Room(number), logger.F("TYPE", roomType), logger.Count(r.store.Count()))
	return &room, nil
}

// Delete removes the room even when a guest is allocated to it.
func (r *Register) Delete(number string) error {
	room, err := r.room(number)
	if err != nil {
		r.logger.Warn("Room not deleted", logger.Action("delete_room"), logger.Room(number), logger.Error(err))
		return err
	}
	if err := r.store.DeleteRoom(number); err != nil {
		return err
	}
	if room.IsOccupied() {
		r.logger.Warn("Occupied room deleted", logger.Action("delete_room"), logger.Room(number), logger.Customer(room.Customer))
		return nil
	}
	r.logger.Info("Room deleted", logger.Action("delete_room"), logger.Room(number), logger.Count(r.store.Count()))
	return nil
}

// ListRooms returns every room in the order it was added.
func (r *Register) ListRooms() ([]*models.Room, error) {
	return r.store.ListRooms()
}

// CheckAllocatable fails unless the room exists and is available.
func (r *Register) CheckAllocatable(number string) error {
	room, err := r.room(number)
	if err != nil {
		return err
	}
	if room.IsOccupied() {
		return fmt.Errorf("room %s: %w", number, ErrRoomOccupied)
	}
	return nil
}

// Allocate checks a guest into an available room.
func (r *Register) Allocate(number, customer string) error {
	room, err := r.room(number)
	if err != nil {
		r.logger.Warn("Room not allocated", logger.Action("allocate_room"), logger.Room(number), logger.Error(err))
		return err
	}
	if room.IsOccupied() {
		err := fmt.Errorf("room %s: %w", number, ErrRoomOccupied)
		r.logger.Warn("Room not allocated", logger.Action("allocate_room"), logger.Room(number), logger.Error(err))
		return err
	}

	room.Customer = customer
	room.Status = models.StatusOccupied
	if err := r.store.SaveRoom(room); err != nil {
		return err
	}
	r.logger.Info("Room allocated", logger.Action("allocate_room"), logger.Room(number), logger.Customer(customer))
	return nil
}

// ListAllocations returns the occupied rooms.
func (r *Register) ListAllocations() ([]*models.Room, error) {
	rooms, err := r.store.ListRooms()
	if err != nil {
		return nil, err
	}
	var allocated []*models.Room
	for _, room := range rooms {
		if room.IsOccupied() {
			allocated = append(allocated, room)
		}
	}
	return allocated, nil
}

// CheckOccupied fails with ErrRoomNotFound unless the room exists and has a
// guest. Missing and vacant rooms are not told apart.
func (r *Register) CheckOccupied(number string) error {
	room, err := r.store.GetRoom(number)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if room == nil || !room.IsOccupied() {
		return fmt.Errorf("room %s not occupied: %w", number, ErrRoomNotFound)
	}
	return nil
}

// ParseDays parses the number of nights stayed. Zero and negative values are
// accepted.
func ParseDays(text string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}
	return days, nil
}

// BillAndDeallocate charges DailyRate per night and frees the room. The room
// is left untouched when daysText does not parse.
func (r *Register) BillAndDeallocate(number, daysText string) (*models.Bill, error) {
	if err := r.CheckOccupied(number); err != nil {
		r.logger.Warn("Room not billed", logger.Action("billing"), logger.Room(number), logger.Error(err))
		return nil, err
	}
	days, err := ParseDays(daysText)
	if err != nil {
		r.logger.Warn("Room not billed", logger.Action("billing"), logger.Room(number), logger.Error(err))
		return nil, err
	}

	room, err := r.room(number)
	if err != nil {
		return nil, err
	}
	bill := &models.Bill{
		RoomNumber: number,
		Customer:   room.Customer,
		Days:       days,
		DailyRate:  DailyRate,
		Total:      days * DailyRate,
	}

	room.Customer = ""
	room.Status = models.StatusAvailable
	room.Bill = 0
	if err := r.store.SaveRoom(room); err != nil {
		return nil, err
	}

	r.logger.Info("Room billed and deallocated",
		logger.Action("billing"),
		logger.Room(number),
		logger.Customer(bill.Customer),
		logger.Days(days),
		logger.Total(bill.Total))
	return bill, nil
}
