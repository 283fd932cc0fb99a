package model

import "errors"

// Common errors used across the application
var (
	// Room errors
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomFull            = errors.New("room is full")
	ErrNameRequired        = errors.New("a display name is required")
	ErrPlayerBlocked       = errors.New("you have been blocked from this room")
	ErrNotInRoom           = errors.New("player is not in room")
	ErrNotHost             = errors.New("only the host can do that")
	ErrWrongPhase          = errors.New("action not allowed in the current phase")
	ErrInsufficientPlayers = errors.New("not enough players to start")

	// Round errors
	ErrAlreadySubmitted = errors.New("answer already submitted")
	ErrSpectator        = errors.New("spectators cannot submit answers")
	ErrNotConnected     = errors.New("player is not connected")
	ErrEmptyAnswer      = errors.New("answer cannot be empty")

	// Moderation errors
	ErrCannotTargetSelf = errors.New("host cannot target themself")
	ErrCannotBlockBot   = errors.New("bots cannot be blocked")
	ErrMaxBots          = errors.New("maximum number of bots reached")

	// Settings errors
	ErrInvalidSettings = errors.New("invalid settings value")
)
