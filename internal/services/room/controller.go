package room

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lukemay/blankparty/internal/broadcast"
	"github.com/lukemay/blankparty/internal/dependencies/clock"
	"github.com/lukemay/blankparty/internal/dependencies/scheduler"
	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/services/bot"
	"github.com/lukemay/blankparty/internal/services/prompt"
	"github.com/lukemay/blankparty/internal/storage"
)

// Controller owns the room lifecycle state machine. Every public
// method serializes on the target room's lock, so room state is only
// ever mutated by one handler at a time.
type Controller struct {
	storage     storage.Storage
	registry    *Registry
	prompts     *prompt.Service
	bots        *bot.Service
	broadcaster broadcast.Broadcaster
	clock       clock.Clock
	scheduler   scheduler.Scheduler
	logger      *slog.Logger
}

// NewController creates a new room Controller
func NewController(
	storage storage.Storage,
	registry *Registry,
	prompts *prompt.Service,
	bots *bot.Service,
	broadcaster broadcast.Broadcaster,
	clock clock.Clock,
	scheduler scheduler.Scheduler,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		registry:    registry,
		prompts:     prompts,
		bots:        bots,
		broadcaster: broadcaster,
		clock:       clock,
		scheduler:   scheduler,
		logger:      logger.With(slog.String("component", "room")),
	}
}

// CreateRoom creates a room with the given player as host
func (c *Controller) CreateRoom(ctx context.Context, hostName string) (*model.Room, model.PlayerID, error) {
	hostName = strings.TrimSpace(hostName)
	if hostName == "" {
		return nil, "", model.ErrNameRequired
	}

	code, err := c.registry.NewCode(ctx)
	if err != nil {
		return nil, "", err
	}

	now := c.clock.Now()
	hostID := c.registry.NewPlayerID()
	room := &model.Room{
		Code: code,
		Players: []model.Player{
			{
				ID:          hostID,
				Name:        hostName,
				IsHost:      true,
				IsConnected: true,
			},
		},
		Phase:     model.PhaseLobby,
		Settings:  model.DefaultSettings(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, "", err
	}

	c.logger.Info("room created",
		slog.String("room", string(code)),
		slog.String("host", hostName))
	return room.Sanitized(), hostID, nil
}

// GetRoom retrieves a client-safe view of a room
func (c *Controller) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}
	return room.Sanitized(), nil
}

// JoinRoom adds a player to a room. Joining mid-game makes the player
// a spectator until the next game.
func (c *Controller) JoinRoom(ctx context.Context, code model.RoomCode, name string) (*model.Room, model.PlayerID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", model.ErrNameRequired
	}

	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, "", err
	}

	if room.IsBlocked(name) {
		return nil, "", model.ErrPlayerBlocked
	}
	if len(room.Players) >= room.Settings.MaxPlayers {
		return nil, "", model.ErrRoomFull
	}

	player := model.Player{
		ID:          c.registry.NewPlayerID(),
		Name:        name,
		IsConnected: true,
		IsSpectator: room.Phase != model.PhaseLobby,
	}
	room.Players = append(room.Players, player)
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, "", err
	}

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventPlayerJoined,
		Payload: model.PlayerRefPayload{PlayerID: player.ID},
	})
	c.broadcastState(room)
	return room.Sanitized(), player.ID, nil
}

// LeaveRoom removes a player deliberately, with no grace period
func (c *Controller) LeaveRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}
	if room.GetPlayer(playerID) == nil {
		return model.ErrNotInRoom
	}

	return c.removePlayer(ctx, room, playerID)
}

// Disconnect marks a player's connection as lost and starts the
// grace-period clock. The seat is held until it expires.
func (c *Controller) Disconnect(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		// Connection teardown races room destruction; nothing to do
		if errors.Is(err, model.ErrRoomNotFound) {
			return nil
		}
		return err
	}

	player := room.GetPlayer(playerID)
	if player == nil || !player.IsConnected {
		return nil
	}

	now := c.clock.Now()
	player.IsConnected = false
	player.DisconnectedAt = &now
	room.UpdatedAt = now

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventPlayerDisconnected,
		Payload: model.PlayerRefPayload{PlayerID: playerID},
	})

	// A departing active player may have been the last hold-out
	if room.Phase == model.PhaseAnswering && room.AllSubmitted() {
		c.endAnswering(room)
	}
	c.broadcastState(room)

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return err
	}

	c.scheduler.AfterFunc(disconnectGrace, func() {
		c.onGraceExpired(code, playerID, now)
	})

	c.logger.Info("player disconnected",
		slog.String("room", string(code)),
		slog.String("player_id", string(playerID)))
	return nil
}

// Reconnect restores a disconnected player's seat
func (c *Controller) Reconnect(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error) {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return nil, err
	}

	player := room.GetPlayer(playerID)
	if player == nil {
		return nil, model.ErrNotInRoom
	}

	player.IsConnected = true
	player.DisconnectedAt = nil
	room.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		return nil, err
	}

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventPlayerReconnected,
		Payload: model.PlayerRefPayload{PlayerID: playerID},
	})
	c.broadcastState(room)

	c.logger.Info("player reconnected",
		slog.String("room", string(code)),
		slog.String("player_id", string(playerID)))
	return room.Sanitized(), nil
}

// onGraceExpired fires when a disconnected player's grace period runs
// out. A reconnect in the meantime makes it a no-op, even when the
// player has since disconnected again and restarted the clock.
func (c *Controller) onGraceExpired(code model.RoomCode, playerID model.PlayerID, since time.Time) {
	ctx := context.Background()

	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return
	}

	player := room.GetPlayer(playerID)
	if player == nil || player.IsConnected {
		return
	}
	if player.DisconnectedAt == nil || !player.DisconnectedAt.Equal(since) {
		return
	}

	if err := c.removePlayer(ctx, room, playerID); err != nil {
		c.logger.Error("failed to remove player after grace period",
			slog.String("room", string(code)),
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()))
	}
}

// removePlayer takes a player out of the room and handles the
// consequences: host transfer, round completion, room destruction.
// The caller must hold the room lock.
func (c *Controller) removePlayer(ctx context.Context, room *model.Room, playerID model.PlayerID) error {
	removed := room.RemovePlayer(playerID)
	if removed == nil {
		return model.ErrNotInRoom
	}

	c.broadcaster.BroadcastEvent(room.Code, model.Event{
		Type:    model.EventPlayerLeft,
		Payload: model.PlayerRefPayload{PlayerID: playerID},
	})

	if !hasHumans(room) {
		return c.destroyRoom(ctx, room)
	}

	if removed.IsHost {
		c.transferHost(room)
	}
	if room.Phase == model.PhaseAnswering && room.AllSubmitted() {
		c.endAnswering(room)
	}

	room.UpdatedAt = c.clock.Now()
	c.broadcastState(room)

	c.logger.Info("player left",
		slog.String("room", string(room.Code)),
		slog.String("player_id", string(playerID)))
	return c.storage.SaveRoom(ctx, room)
}

// transferHost promotes the first connected, non-spectator human. If
// nobody qualifies the room is left hostless until someone does.
func (c *Controller) transferHost(room *model.Room) {
	for i := range room.Players {
		p := &room.Players[i]
		if p.IsHost {
			p.IsHost = false
		}
	}
	for i := range room.Players {
		p := &room.Players[i]
		if p.IsActive() && !p.IsBot {
			p.IsHost = true
			c.broadcaster.BroadcastEvent(room.Code, model.Event{
				Type:    model.EventHostTransferred,
				Payload: model.PlayerRefPayload{PlayerID: p.ID},
			})
			return
		}
	}
}

// destroyRoom deletes a room and tears down its event hub. The caller
// must hold the room lock.
func (c *Controller) destroyRoom(ctx context.Context, room *model.Room) error {
	if err := c.storage.DeleteRoom(ctx, room.Code); err != nil {
		return err
	}
	c.broadcaster.CloseRoom(room.Code)
	c.registry.Release(room.Code)
	c.logger.Info("room destroyed", slog.String("room", string(room.Code)))
	return nil
}

func (c *Controller) broadcastState(room *model.Room) {
	c.broadcaster.BroadcastEvent(room.Code, model.Event{
		Type:    model.EventRoomState,
		Payload: room.Sanitized(),
	})
}

// hasHumans reports whether any non-bot player remains. A room with
// only bots left has nobody to play for, so it is destroyed.
func hasHumans(room *model.Room) bool {
	for _, p := range room.Players {
		if !p.IsBot {
			return true
		}
	}
	return false
}
