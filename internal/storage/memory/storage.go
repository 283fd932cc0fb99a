package memory

import (
	"context"
	"sync"

	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu    sync.RWMutex
	rooms map[model.RoomCode]*model.Room
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		rooms: make(map[model.RoomCode]*model.Room),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[room.Code] = room
	return nil
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[code]
	if !ok {
		return nil, model.ErrRoomNotFound
	}
	return room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	return nil
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.rooms[code]
	return ok, nil
}

func (s *Storage) CountRooms(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms), nil
}
