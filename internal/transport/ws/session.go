package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lukemay/blankparty/internal/broadcast"
	"github.com/lukemay/blankparty/internal/model"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second
	// Time allowed to read the next pong before the connection is dead
	pongWait = 60 * time.Second
	// Ping cadence; must be shorter than pongWait
	pingPeriod = (pongWait * 9) / 10
	// Largest inbound frame accepted
	maxMessageSize = 4096
	// Buffer for session-local outbound messages
	outBufferSize = 64
)

// session is one websocket connection's state: which player it speaks
// for, which room it is subscribed to, and its outbound queue. All
// wire writes go through the out channel so the write pump is the
// only writer.
type session struct {
	conn   *websocket.Conn
	logger *slog.Logger

	out  chan []byte
	done chan struct{}

	mu       sync.Mutex
	roomCode model.RoomCode
	playerID model.PlayerID
	client   *broadcast.Client
}

func newSession(conn *websocket.Conn, logger *slog.Logger) *session {
	return &session{
		conn:   conn,
		logger: logger,
		out:    make(chan []byte, outBufferSize),
		done:   make(chan struct{}),
	}
}

// identity returns the room and player this session is bound to
func (s *session) identity() (model.RoomCode, model.PlayerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.roomCode, s.playerID
}

// bind ties the session to a player seat and pipes the room's hub
// traffic into the session's outbound queue
func (s *session) bind(roomCode model.RoomCode, playerID model.PlayerID, client *broadcast.Client) {
	s.mu.Lock()
	s.roomCode = roomCode
	s.playerID = playerID
	s.client = client
	s.mu.Unlock()

	go func() {
		for msg := range client.Send() {
			select {
			case s.out <- msg:
			case <-s.done:
				return
			default:
				s.logger.Warn("dropping message for slow connection",
					slog.String("player_id", string(playerID)))
			}
		}
		// Channel closed: the hub evicted this client or the room shut
		// down, so the seat binding is gone too
		s.unbind(client)
	}()
}

// unbind clears the seat binding if it still belongs to the given hub
// client, so a stale forwarder cannot wipe a newer binding. A nil
// client clears unconditionally.
func (s *session) unbind(client *broadcast.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if client != nil && s.client != client {
		return
	}
	s.roomCode = ""
	s.playerID = ""
	s.client = nil
}

// boundClient returns the hub client, or nil before any join
func (s *session) boundClient() *broadcast.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// sendEvent queues an event for this connection only
func (s *session) sendEvent(event model.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("failed to marshal event",
			slog.String("event_type", string(event.Type)),
			slog.String("error", err.Error()))
		return
	}
	select {
	case s.out <- data:
	case <-s.done:
	default:
		s.logger.Warn("dropping event for slow connection")
	}
}

// sendError reports a failed action to this connection
func (s *session) sendError(err error) {
	s.sendEvent(model.Event{
		Type:    model.EventError,
		Payload: model.ErrorPayload{Message: err.Error()},
	})
}

// writePump is the single writer to the websocket. It drains the
// outbound queue and keeps the connection alive with pings.
func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case message := <-s.out:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-s.done:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = s.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// close stops the write pump and the hub forwarder
func (s *session) close() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}
