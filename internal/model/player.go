package model

import "time"

// PlayerID uniquely identifies a player within the registry's lifetime
type PlayerID string

// Player represents a participant in a room. A fresh ID is minted on every
// join; bots are players with IsBot set.
type Player struct {
	ID          PlayerID `json:"id"`
	Name        string   `json:"name"`
	IsHost      bool     `json:"isHost"`
	IsConnected bool     `json:"isConnected"`
	IsSpectator bool     `json:"isSpectator"`
	IsBot       bool     `json:"isBot"`
	Score       int      `json:"score"`

	// DisconnectedAt marks the most recent connection loss; nil while
	// connected. Grace callbacks compare against it so a timer from an
	// earlier disconnect cannot take the seat.
	DisconnectedAt *time.Time `json:"disconnectedAt,omitempty"`

	// Per-round state, cleared when a new prompt is dealt
	CurrentAnswer string `json:"currentAnswer,omitempty"`
	HasSubmitted  bool   `json:"hasSubmitted"`
}

// IsActive reports whether the player counts toward round participation
func (p *Player) IsActive() bool {
	return p.IsConnected && !p.IsSpectator
}
