package broadcast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lukemay/blankparty/internal/model"
)

type directMessage struct {
	playerID model.PlayerID
	message  []byte
	// evict unsubscribes the player's clients after delivery
	evict bool
}

// Hub fans out messages to every client subscribed to one room
type Hub struct {
	roomCode model.RoomCode
	clients  map[*Client]bool
	mu       sync.RWMutex
	logger   *slog.Logger

	// Channels for managing clients
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	direct     chan directMessage
	done       chan struct{}
}

// NewHub creates a new Hub for a room
func NewHub(roomCode model.RoomCode, logger *slog.Logger) *Hub {
	return &Hub{
		roomCode:   roomCode,
		clients:    make(map[*Client]bool),
		logger:     logger.With(slog.String("room", string(roomCode))),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		direct:     make(chan directMessage, 256),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	h.logger.Debug("hub started")
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			clientCount := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("client registered",
				slog.String("player_id", string(client.playerID)),
				slog.Int("total_clients", clientCount))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				clientCount := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("client unregistered",
					slog.String("player_id", string(client.playerID)),
					slog.Duration("connection_duration", time.Since(client.connectedAt)),
					slog.Int("total_clients", clientCount))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					dropped++
				}
			}
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("broadcast dropped for slow clients",
					slog.Int("dropped", dropped))
			}

		case dm := <-h.direct:
			h.mu.Lock()
			for client := range h.clients {
				if client.playerID != dm.playerID {
					continue
				}
				select {
				case client.send <- dm.message:
				default:
					h.logger.Warn("direct message dropped - client buffer full",
						slog.String("player_id", string(dm.playerID)))
				}
				if dm.evict {
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
			if dm.evict {
				h.logger.Info("client evicted",
					slog.String("player_id", string(dm.playerID)))
			}

		case <-h.done:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			h.logger.Debug("hub stopped")
			return
		}
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues a message for every subscribed client
func (h *Hub) Broadcast(message []byte) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast dropped - hub buffer full")
	}
}

// Send queues a message for one player's clients only
func (h *Hub) Send(playerID model.PlayerID, message []byte) {
	select {
	case h.direct <- directMessage{playerID: playerID, message: message}:
	default:
		h.logger.Warn("direct message dropped - hub buffer full",
			slog.String("player_id", string(playerID)))
	}
}

// Evict delivers a final message to one player's clients and then
// unsubscribes them from the hub
func (h *Hub) Evict(playerID model.PlayerID, message []byte) {
	select {
	case h.direct <- directMessage{playerID: playerID, message: message, evict: true}:
	default:
		h.logger.Warn("eviction dropped - hub buffer full",
			slog.String("player_id", string(playerID)))
	}
}

// Close shuts down the hub and disconnects all clients
func (h *Hub) Close() {
	close(h.done)
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
