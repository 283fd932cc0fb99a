package room

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/services/bot"
)

// Host-configurable bounds
const (
	minSettablePlayers = 2
	maxSettablePlayers = 16
)

var (
	allowedTimerDurations = map[int]bool{30: true, 60: true, 90: true}
	allowedTotalRounds    = map[int]bool{5: true, 10: true, 15: true}
)

// UpdateSettings applies a partial settings change. Host only, lobby
// only; an invalid combination leaves the settings untouched.
func (c *Controller) UpdateSettings(ctx context.Context, code model.RoomCode, requesterID model.PlayerID, patch model.SettingsPatch) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	host := room.GetHost()
	if host == nil || host.ID != requesterID {
		return model.ErrNotHost
	}
	if room.Phase != model.PhaseLobby {
		return model.ErrWrongPhase
	}

	settings := room.Settings
	if patch.TimerDuration != nil {
		settings.TimerDuration = *patch.TimerDuration
	}
	if patch.TotalRounds != nil {
		settings.TotalRounds = *patch.TotalRounds
	}
	if patch.MinPlayers != nil {
		settings.MinPlayers = *patch.MinPlayers
	}
	if patch.MaxPlayers != nil {
		settings.MaxPlayers = *patch.MaxPlayers
	}

	if err := validateSettings(settings, len(room.Players)); err != nil {
		return err
	}

	room.Settings = settings
	room.UpdatedAt = c.clock.Now()

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventSettingsUpdated,
		Payload: settings,
	})
	c.broadcastState(room)

	return c.storage.SaveRoom(ctx, room)
}

func validateSettings(s model.RoomSettings, playerCount int) error {
	if !allowedTimerDurations[s.TimerDuration] {
		return model.ErrInvalidSettings
	}
	if !allowedTotalRounds[s.TotalRounds] {
		return model.ErrInvalidSettings
	}
	if s.MinPlayers < minSettablePlayers || s.MinPlayers > s.MaxPlayers {
		return model.ErrInvalidSettings
	}
	if s.MaxPlayers > maxSettablePlayers || s.MaxPlayers < playerCount {
		return model.ErrInvalidSettings
	}
	return nil
}

// ToggleSpectator flips a player between active and spectator. Lobby
// only; players may toggle themselves, the host may toggle anyone.
func (c *Controller) ToggleSpectator(ctx context.Context, code model.RoomCode, requesterID, targetID model.PlayerID) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	if requesterID != targetID {
		host := room.GetHost()
		if host == nil || host.ID != requesterID {
			return model.ErrNotHost
		}
	}
	if room.Phase != model.PhaseLobby {
		return model.ErrWrongPhase
	}

	target := room.GetPlayer(targetID)
	if target == nil {
		return model.ErrNotInRoom
	}

	target.IsSpectator = !target.IsSpectator
	if target.IsSpectator && target.IsHost {
		target.IsHost = false
		c.transferHost(room)
	}
	room.UpdatedAt = c.clock.Now()

	c.broadcastState(room)
	return c.storage.SaveRoom(ctx, room)
}

// AddBot seats a computer-controlled player. Host only, lobby only.
func (c *Controller) AddBot(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	host := room.GetHost()
	if host == nil || host.ID != requesterID {
		return model.ErrNotHost
	}
	if room.Phase != model.PhaseLobby {
		return model.ErrWrongPhase
	}
	if len(room.Players) >= room.Settings.MaxPlayers {
		return model.ErrRoomFull
	}

	name := nextBotName(room)
	if name == "" {
		return model.ErrMaxBots
	}

	b := model.Player{
		ID:          c.registry.NewPlayerID(),
		Name:        name,
		IsConnected: true,
		IsBot:       true,
	}
	room.Players = append(room.Players, b)
	room.UpdatedAt = c.clock.Now()

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventPlayerJoined,
		Payload: model.PlayerRefPayload{PlayerID: b.ID},
	})
	c.broadcastState(room)

	c.logger.Info("bot added",
		slog.String("room", string(code)),
		slog.String("bot", name))
	return c.storage.SaveRoom(ctx, room)
}

// nextBotName returns the first unused bot name, or "" at the cap
func nextBotName(room *model.Room) string {
	inUse := make(map[string]bool)
	for _, p := range room.Players {
		if p.IsBot {
			inUse[p.Name] = true
		}
	}
	for _, name := range bot.Names {
		if !inUse[name] {
			return name
		}
	}
	return ""
}

// RemoveBot takes a bot out of the room. Host only.
func (c *Controller) RemoveBot(ctx context.Context, code model.RoomCode, requesterID, botID model.PlayerID) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	host := room.GetHost()
	if host == nil || host.ID != requesterID {
		return model.ErrNotHost
	}

	target := room.GetPlayer(botID)
	if target == nil || !target.IsBot {
		return model.ErrNotInRoom
	}

	return c.removePlayer(ctx, room, botID)
}

// KickPlayer ejects a player, optionally blocking their name from
// rejoining. Host only; the host cannot kick themself, and bots
// cannot be blocked (remove them instead).
func (c *Controller) KickPlayer(ctx context.Context, code model.RoomCode, requesterID, targetID model.PlayerID, block bool) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	host := room.GetHost()
	if host == nil || host.ID != requesterID {
		return model.ErrNotHost
	}
	if targetID == requesterID {
		return model.ErrCannotTargetSelf
	}

	target := room.GetPlayer(targetID)
	if target == nil {
		// A kick can race a leave or grace expiry; the target being
		// gone already is the desired outcome
		return nil
	}
	if block && target.IsBot {
		return model.ErrCannotBlockBot
	}

	if block {
		room.BlockedPlayers = append(room.BlockedPlayers, model.BlockedPlayer{
			Name:      target.Name,
			BlockedAt: c.clock.Now(),
		})
	}

	// The target gets told why, then their connection is cut loose
	// from the room
	c.broadcaster.EvictPlayer(code, targetID, model.Event{
		Type:    model.EventKicked,
		Payload: model.KickedPayload{WasBlocked: block},
	})

	c.logger.Info("player kicked",
		slog.String("room", string(code)),
		slog.String("player_id", string(targetID)),
		slog.Bool("blocked", block))
	return c.removePlayer(ctx, room, targetID)
}

// UnblockPlayer removes a name from the room's block list. Host only.
func (c *Controller) UnblockPlayer(ctx context.Context, code model.RoomCode, requesterID model.PlayerID, name string) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	host := room.GetHost()
	if host == nil || host.ID != requesterID {
		return model.ErrNotHost
	}

	kept := room.BlockedPlayers[:0]
	for _, bp := range room.BlockedPlayers {
		if !strings.EqualFold(bp.Name, name) {
			kept = append(kept, bp)
		}
	}
	room.BlockedPlayers = kept
	room.UpdatedAt = c.clock.Now()

	c.broadcastState(room)
	return c.storage.SaveRoom(ctx, room)
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateRoom(ctx context.Context, hostName string) (*model.Room, model.PlayerID, error)
	GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error)
	JoinRoom(ctx context.Context, code model.RoomCode, name string) (*model.Room, model.PlayerID, error)
	LeaveRoom(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error
	Disconnect(ctx context.Context, code model.RoomCode, playerID model.PlayerID) error
	Reconnect(ctx context.Context, code model.RoomCode, playerID model.PlayerID) (*model.Room, error)
	StartGame(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error
	SubmitAnswer(ctx context.Context, code model.RoomCode, playerID model.PlayerID, answer string) error
	NextRound(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error
	PlayAgain(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error
	UpdateSettings(ctx context.Context, code model.RoomCode, requesterID model.PlayerID, patch model.SettingsPatch) error
	ToggleSpectator(ctx context.Context, code model.RoomCode, requesterID, targetID model.PlayerID) error
	AddBot(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error
	RemoveBot(ctx context.Context, code model.RoomCode, requesterID, botID model.PlayerID) error
	KickPlayer(ctx context.Context, code model.RoomCode, requesterID, targetID model.PlayerID, block bool) error
	UnblockPlayer(ctx context.Context, code model.RoomCode, requesterID model.PlayerID, name string) error
}

var _ ControllerInterface = (*Controller)(nil)
