package model

import (
	"strings"
	"time"
)

// RoomCode is a human-shareable identifier for joining rooms
type RoomCode string

// Phase represents the room's position in its lifecycle state machine
type Phase string

const (
	PhaseLobby     Phase = "lobby"     // Waiting for the host to start
	PhasePrompt    Phase = "prompt"    // Round intro, answering begins shortly
	PhaseAnswering Phase = "answering" // Players submitting answers
	PhaseReveal    Phase = "reveal"    // Answer groups shown
	PhaseScoring   Phase = "scoring"   // Round scores shown, host advances
	PhaseGameOver  Phase = "gameOver"  // Final standings shown
)

// phaseEdges is the set of legal phase transitions
var phaseEdges = map[Phase][]Phase{
	PhaseLobby:     {PhasePrompt},
	PhasePrompt:    {PhaseAnswering},
	PhaseAnswering: {PhaseReveal},
	PhaseReveal:    {PhaseScoring},
	PhaseScoring:   {PhasePrompt, PhaseGameOver},
	PhaseGameOver:  {PhaseLobby},
}

// CanTransition reports whether moving from one phase to another is legal
func CanTransition(from, to Phase) bool {
	for _, next := range phaseEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RoomSettings holds the host-configurable game parameters
type RoomSettings struct {
	TimerDuration int `json:"timerDuration"` // seconds: 30, 60, or 90
	TotalRounds   int `json:"totalRounds"`   // 5, 10, or 15
	MinPlayers    int `json:"minPlayers"`
	MaxPlayers    int `json:"maxPlayers"`
}

// DefaultSettings returns the default room settings
func DefaultSettings() RoomSettings {
	return RoomSettings{
		TimerDuration: 60,
		TotalRounds:   10,
		MinPlayers:    3,
		MaxPlayers:    8,
	}
}

// SettingsPatch is a partial settings update; nil fields are left unchanged
type SettingsPatch struct {
	TimerDuration *int `json:"timerDuration,omitempty"`
	TotalRounds   *int `json:"totalRounds,omitempty"`
	MinPlayers    *int `json:"minPlayers,omitempty"`
	MaxPlayers    *int `json:"maxPlayers,omitempty"`
}

// BlockedPlayer records a name banned from rejoining a room
type BlockedPlayer struct {
	Name      string    `json:"name"`
	BlockedAt time.Time `json:"blockedAt"`
}

// Room is the aggregate root for one game session
type Room struct {
	Code           RoomCode        `json:"code"`
	Players        []Player        `json:"players"` // insertion order, user-visible
	BlockedPlayers []BlockedPlayer `json:"blockedPlayers"`
	Phase          Phase           `json:"phase"`
	Settings       RoomSettings    `json:"settings"`
	CurrentRound   int             `json:"currentRound"` // 0 in lobby, 1..TotalRounds in play
	CurrentPrompt  string          `json:"currentPrompt,omitempty"`
	TimerEndTime   *time.Time      `json:"timerEndTime,omitempty"`
	RoundResults   []RoundResult   `json:"roundResults"`

	// Prompts is the shuffled prompt sequence for the current game.
	// Never included in client-facing views.
	Prompts []string `json:"-"`

	// Version increments on every phase transition. Scheduled callbacks
	// capture it and no-op when it no longer matches.
	Version int64 `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetPlayer returns the player with the given id, or nil if not present
func (r *Room) GetPlayer(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// GetHost returns the current host, or nil if the room is hostless
func (r *Room) GetHost() *Player {
	for i := range r.Players {
		if r.Players[i].IsHost {
			return &r.Players[i]
		}
	}
	return nil
}

// ActivePlayers returns connected, non-spectator players in room order
func (r *Room) ActivePlayers() []Player {
	var active []Player
	for _, p := range r.Players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// AllSubmitted reports whether every active player has submitted this round
func (r *Room) AllSubmitted() bool {
	for _, p := range r.Players {
		if p.IsActive() && !p.HasSubmitted {
			return false
		}
	}
	return true
}

// RemovePlayer deletes the player with the given id, preserving order.
// Returns the removed player, or nil if not found.
func (r *Room) RemovePlayer(id PlayerID) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			removed := r.Players[i]
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return &removed
		}
	}
	return nil
}

// IsBlocked reports whether a name is on the block list, case-insensitively
func (r *Room) IsBlocked(name string) bool {
	for _, bp := range r.BlockedPlayers {
		if strings.EqualFold(bp.Name, name) {
			return true
		}
	}
	return false
}

// answersVisible reports whether answer text may be shown in this phase
func (r *Room) answersVisible() bool {
	return r.Phase == PhaseReveal || r.Phase == PhaseScoring || r.Phase == PhaseGameOver
}

// Sanitized returns a copy of the room safe to broadcast: answer text is
// withheld outside reveal/scoring/gameOver, and the prompt sequence is
// never included.
func (r *Room) Sanitized() *Room {
	out := *r
	out.Prompts = nil
	out.Players = make([]Player, len(r.Players))
	copy(out.Players, r.Players)
	if !r.answersVisible() {
		for i := range out.Players {
			out.Players[i].CurrentAnswer = ""
		}
	}
	return &out
}
