package store

import (
	"github.com/EpicMandM/lhms/internal/models"
)

// MemoryStore keeps room records in process memory. Rooms are listed in the
// order they were first saved.
type MemoryStore struct {
	rooms map[string]*models.Room
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rooms: make(map[string]*models.Room),
	}
}

// GetRoom returns a copy of the stored room, so callers must SaveRoom to
// persist changes.
func (s *MemoryStore) GetRoom(number string) (*models.Room, error) {
	room, ok := s.rooms[number]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *room
	return &cp, nil
}

// SaveRoom inserts or replaces the room stored under room.Number.
func (s *MemoryStore) SaveRoom(room *models.Room) error {
	if _, ok := s.rooms[room.Number]; !ok {
		s.order = append(s.order, room.Number)
	}
	cp := *room
	s.rooms[room.Number] = &cp
	return nil
}

func (s *MemoryStore) DeleteRoom(number string) error {
	if _, ok := s.rooms[number]; !ok {
		return ErrNotFound
	}
	delete(s.rooms, number)
	for i, n := range s.order {
		if n == number {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) ListRooms() ([]*models.Room, error) {
	rooms := make([]*models.Room, 0, len(s.order))
	for _, number := range s.order {
		cp := *s.rooms[number]
		rooms = append(rooms, &cp)
	}
	return rooms, nil
}

func (s *MemoryStore) Count() int {
	return len(s.rooms)
}
