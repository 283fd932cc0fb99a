package room

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/lukemay/blankparty/internal/dependencies/random"
	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/storage"
)

const (
	// CodeLength is the length of generated room codes
	CodeLength = 6
	// CodeAlphabet is the characters used in room codes; 0/O, 1/I/L
	// are excluded to keep codes unambiguous when read aloud
	CodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// Registry owns room identity and the per-room locks that serialize
// access to each room's state. Every handler and scheduled callback
// touching a room must hold that room's lock.
type Registry struct {
	storage storage.Storage
	random  random.Random

	mu    sync.Mutex
	locks map[model.RoomCode]*sync.Mutex
}

// NewRegistry creates a new Registry
func NewRegistry(storage storage.Storage, random random.Random) *Registry {
	return &Registry{
		storage: storage,
		random:  random,
		locks:   make(map[model.RoomCode]*sync.Mutex),
	}
}

// NewCode allocates a room code not used by any live room
func (r *Registry) NewCode(ctx context.Context) (model.RoomCode, error) {
	for {
		code := model.RoomCode(r.random.String(CodeLength, CodeAlphabet))
		exists, err := r.storage.RoomExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// NewPlayerID allocates an identity for a player or bot
func (r *Registry) NewPlayerID() model.PlayerID {
	return model.PlayerID(uuid.NewString())
}

// Lock acquires the exclusive lock for a room and returns its release.
// The release stays bound to the mutex that was acquired, so it remains
// valid even when the room is destroyed and its entry released while
// the lock is held.
func (r *Registry) Lock(code model.RoomCode) func() {
	lock := r.lockFor(code)
	lock.Lock()
	return lock.Unlock
}

func (r *Registry) lockFor(code model.RoomCode) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[code]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[code] = lock
	}
	return lock
}

// Release drops the lock entry for a destroyed room. Waiters already
// queued on the old mutex proceed, find the room gone, and fail with
// ErrRoomNotFound.
func (r *Registry) Release(code model.RoomCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, code)
}

// CountRooms returns the number of live rooms
func (r *Registry) CountRooms(ctx context.Context) (int, error) {
	return r.storage.CountRooms(ctx)
}
