package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	// Pipeline the save with the live-code index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, roomKey(room.Code), data, s.cfg.RoomTTL)
	pipe.SAdd(ctx, roomIndexKey(), string(room.Code))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrRoomNotFound
		}
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, roomKey(code))
	pipe.SRem(ctx, roomIndexKey(), string(code))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	exists, err := s.client.Exists(ctx, roomKey(code)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *Storage) CountRooms(ctx context.Context) (int, error) {
	// Prune index entries whose room key has expired
	codes, err := s.client.SMembers(ctx, roomIndexKey()).Result()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, code := range codes {
		exists, err := s.client.Exists(ctx, roomKey(model.RoomCode(code))).Result()
		if err != nil {
			return 0, err
		}
		if exists > 0 {
			count++
		} else {
			s.client.SRem(ctx, roomIndexKey(), code)
		}
	}
	return count, nil
}
