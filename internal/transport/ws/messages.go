package ws

import "encoding/json"

// Action names accepted over the socket
const (
	ActionCreateRoom      = "createRoom"
	ActionJoinRoom        = "joinRoom"
	ActionReconnect       = "reconnect"
	ActionLeaveRoom       = "leaveRoom"
	ActionStartGame       = "startGame"
	ActionSubmitAnswer    = "submitAnswer"
	ActionNextRound       = "nextRound"
	ActionPlayAgain       = "playAgain"
	ActionUpdateSettings  = "updateSettings"
	ActionToggleSpectator = "toggleSpectator"
	ActionAddBot          = "addBot"
	ActionRemoveBot       = "removeBot"
	ActionKickPlayer      = "kickPlayer"
	ActionUnblockPlayer   = "unblockPlayer"
	ActionGetRoomState    = "getRoomState"
)

// actionEnvelope is the inbound client message frame
type actionEnvelope struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type createRoomPayload struct {
	Name string `json:"name"`
}

type joinRoomPayload struct {
	RoomCode string `json:"roomCode"`
	Name     string `json:"name"`
}

type reconnectPayload struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

type submitAnswerPayload struct {
	Answer string `json:"answer"`
}

type targetPayload struct {
	TargetID string `json:"targetId"`
}

type kickPayload struct {
	TargetID string `json:"targetId"`
	Block    bool   `json:"block"`
}

type unblockPayload struct {
	Name string `json:"name"`
}
