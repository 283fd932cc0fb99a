package broadcast

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/lukemay/blankparty/internal/model"
)

// Broadcaster is the event fan-out the game logic talks to. It hides
// hub lifecycle management from callers.
type Broadcaster interface {
	// BroadcastEvent sends an event to everyone subscribed to a room
	BroadcastEvent(roomCode model.RoomCode, event model.Event)
	// SendEvent sends an event to one player in a room
	SendEvent(roomCode model.RoomCode, playerID model.PlayerID, event model.Event)
	// EvictPlayer sends a final event to one player and detaches their
	// connections from the room
	EvictPlayer(roomCode model.RoomCode, playerID model.PlayerID, event model.Event)
	// CloseRoom disconnects all of a room's clients
	CloseRoom(roomCode model.RoomCode)
}

// HubManager manages hubs for all rooms
type HubManager struct {
	hubs   map[model.RoomCode]*Hub
	mu     sync.RWMutex
	logger *slog.Logger
}

var _ Broadcaster = (*HubManager)(nil)

// NewHubManager creates a new HubManager
func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		hubs:   make(map[model.RoomCode]*Hub),
		logger: logger.With(slog.String("component", "broadcast")),
	}
}

// GetOrCreateHub returns the hub for a room, creating one if it doesn't exist
func (m *HubManager) GetOrCreateHub(roomCode model.RoomCode) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roomCode]; ok {
		return hub
	}

	hub := NewHub(roomCode, m.logger)
	m.hubs[roomCode] = hub
	go hub.Run()
	return hub
}

// GetHub returns the hub for a room, or nil if it doesn't exist
func (m *HubManager) GetHub(roomCode model.RoomCode) *Hub {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hubs[roomCode]
}

func (m *HubManager) BroadcastEvent(roomCode model.RoomCode, event model.Event) {
	hub := m.GetHub(roomCode)
	if hub == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		m.logger.Error("failed to marshal event",
			slog.String("event_type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}
	hub.Broadcast(data)
}

func (m *HubManager) SendEvent(roomCode model.RoomCode, playerID model.PlayerID, event model.Event) {
	hub := m.GetHub(roomCode)
	if hub == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		m.logger.Error("failed to marshal event",
			slog.String("event_type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}
	hub.Send(playerID, data)
}

func (m *HubManager) EvictPlayer(roomCode model.RoomCode, playerID model.PlayerID, event model.Event) {
	hub := m.GetHub(roomCode)
	if hub == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		m.logger.Error("failed to marshal event",
			slog.String("event_type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}
	hub.Evict(playerID, data)
}

// CloseRoom removes and closes a room's hub
func (m *HubManager) CloseRoom(roomCode model.RoomCode) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[roomCode]; ok {
		hub.Close()
		delete(m.hubs, roomCode)
		m.logger.Info("hub removed", slog.String("room", string(roomCode)))
	}
}

// CleanupEmptyHubs removes hubs with no clients
func (m *HubManager) CleanupEmptyHubs() {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for code, hub := range m.hubs {
		if hub.ClientCount() == 0 {
			hub.Close()
			delete(m.hubs, code)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("empty hubs cleaned up", slog.Int("removed", removed))
	}
}
