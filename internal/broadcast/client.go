package broadcast

import (
	"time"

	"github.com/lukemay/blankparty/internal/model"
)

// Buffer size for outgoing messages
const sendBufferSize = 256

// Client is one subscribed connection's outbound message queue. The
// transport layer drains Send and writes to the wire.
type Client struct {
	playerID    model.PlayerID
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a client for a player's connection
func NewClient(playerID model.PlayerID) *Client {
	return &Client{
		playerID:    playerID,
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// PlayerID returns the player this client belongs to
func (c *Client) PlayerID() model.PlayerID {
	return c.playerID
}

// Send returns the channel of outbound messages. The channel is
// closed when the client is unregistered.
func (c *Client) Send() <-chan []byte {
	return c.send
}
