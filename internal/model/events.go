package model

import "time"

// EventType identifies a server-emitted event
type EventType string

const (
	EventJoined             EventType = "joined"
	EventRoomState          EventType = "roomState"
	EventPlayerJoined       EventType = "playerJoined"
	EventPlayerLeft         EventType = "playerLeft"
	EventPlayerDisconnected EventType = "playerDisconnected"
	EventPlayerReconnected  EventType = "playerReconnected"
	EventGameStarted        EventType = "gameStarted"
	EventNewPrompt          EventType = "newPrompt"
	EventPlayerSubmitted    EventType = "playerSubmitted"
	EventRevealAnswers      EventType = "revealAnswers"
	EventRoundScores        EventType = "roundScores"
	EventGameOver           EventType = "gameOver"
	EventError              EventType = "error"
	EventTimerUpdate        EventType = "timerUpdate"
	EventSettingsUpdated    EventType = "settingsUpdated"
	EventHostTransferred    EventType = "hostTransferred"
	EventKicked             EventType = "kicked"
)

// Event is the envelope broadcast to room members
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// NewPromptPayload announces a round's prompt and answering deadline.
// The deadline is zero until the answering phase opens.
type NewPromptPayload struct {
	Round    int       `json:"round"`
	Prompt   string    `json:"prompt"`
	Deadline time.Time `json:"deadline,omitempty"`
}

// GameOverPayload carries the final standings
type GameOverPayload struct {
	Standings []FinalStanding `json:"standings"`
}

// JoinedPayload acknowledges a create, join or reconnect, telling the
// connection its own identity
type JoinedPayload struct {
	RoomCode RoomCode `json:"roomCode"`
	PlayerID PlayerID `json:"playerId"`
	Room     *Room    `json:"room"`
}

// PlayerRefPayload carries just a player identity
type PlayerRefPayload struct {
	PlayerID PlayerID `json:"playerId"`
}

// TimerUpdatePayload carries the remaining answering time
type TimerUpdatePayload struct {
	SecondsRemaining int `json:"secondsRemaining"`
}

// KickedPayload tells a kicked player whether they were also blocked
type KickedPayload struct {
	WasBlocked bool `json:"wasBlocked"`
}

// ErrorPayload carries a user-visible error message
type ErrorPayload struct {
	Message string `json:"message"`
}
