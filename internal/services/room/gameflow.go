package room

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/lukemay/blankparty/internal/model"
	"github.com/lukemay/blankparty/internal/services/scoring"
)

const (
	// promptIntroDelay is how long the prompt is shown before answering opens
	promptIntroDelay = 1500 * time.Millisecond
	// revealHoldDelay is how long answer groups are shown before scores
	revealHoldDelay = 3 * time.Second
	// disconnectGrace is how long a disconnected player's seat is held
	disconnectGrace = 60 * time.Second
	// tickInterval is the countdown broadcast cadence
	tickInterval = time.Second
)

// transition moves the room to a new phase and bumps its version so
// callbacks scheduled against the old phase become no-ops.
func (c *Controller) transition(room *model.Room, to model.Phase) {
	if !model.CanTransition(room.Phase, to) {
		// Transitions are driven by the controller itself; an illegal
		// one is a programming error worth surfacing loudly in logs
		c.logger.Error("illegal phase transition",
			slog.String("room", string(room.Code)),
			slog.String("from", string(room.Phase)),
			slog.String("to", string(to)))
		return
	}
	room.Phase = to
	room.Version++
	room.UpdatedAt = c.clock.Now()
}

// StartGame begins the game. Host only, lobby only, and the room must
// have enough connected non-spectator players.
func (c *Controller) StartGame(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error {
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
	if len(room.ActivePlayers()) < room.Settings.MinPlayers {
		return model.ErrInsufficientPlayers
	}

	room.Prompts = c.prompts.ForGame(room.Settings.TotalRounds)
	room.CurrentRound = 0
	room.RoundResults = nil
	for i := range room.Players {
		room.Players[i].Score = 0
	}

	c.broadcaster.BroadcastEvent(code, model.Event{Type: model.EventGameStarted})
	c.beginRound(room)

	c.logger.Info("game started",
		slog.String("room", string(code)),
		slog.Int("rounds", room.Settings.TotalRounds),
		slog.Int("players", len(room.ActivePlayers())))
	return c.storage.SaveRoom(ctx, room)
}

// beginRound enters the prompt phase for the next round. The caller
// must hold the room lock and save afterwards.
func (c *Controller) beginRound(room *model.Room) {
	c.transition(room, model.PhasePrompt)
	room.CurrentRound++
	room.CurrentPrompt = room.Prompts[room.CurrentRound-1]
	room.TimerEndTime = nil
	for i := range room.Players {
		room.Players[i].CurrentAnswer = ""
		room.Players[i].HasSubmitted = false
	}

	c.broadcaster.BroadcastEvent(room.Code, model.Event{
		Type: model.EventNewPrompt,
		Payload: model.NewPromptPayload{
			Round:  room.CurrentRound,
			Prompt: room.CurrentPrompt,
		},
	})
	c.broadcastState(room)

	code, version := room.Code, room.Version
	c.scheduler.AfterFunc(promptIntroDelay, func() {
		c.onPromptIntroDone(code, version)
	})
}

func (c *Controller) onPromptIntroDone(code model.RoomCode, version int64) {
	ctx := context.Background()

	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil || room.Version != version || room.Phase != model.PhasePrompt {
		return
	}

	c.startAnswering(room)

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		c.logger.Error("failed to save room entering answering phase",
			slog.String("room", string(code)),
			slog.String("error", err.Error()))
	}
}

// startAnswering opens the answering window: the round timer starts,
// the countdown begins ticking, and bot submissions get scheduled.
func (c *Controller) startAnswering(room *model.Room) {
	c.transition(room, model.PhaseAnswering)
	deadline := c.clock.Now().Add(time.Duration(room.Settings.TimerDuration) * time.Second)
	room.TimerEndTime = &deadline

	c.broadcaster.BroadcastEvent(room.Code, model.Event{
		Type: model.EventNewPrompt,
		Payload: model.NewPromptPayload{
			Round:    room.CurrentRound,
			Prompt:   room.CurrentPrompt,
			Deadline: deadline,
		},
	})
	c.broadcastState(room)

	code, version := room.Code, room.Version
	c.scheduler.AfterFunc(tickInterval, func() {
		c.onTimerTick(code, version)
	})

	for _, p := range room.Players {
		if !p.IsBot {
			continue
		}
		botID := p.ID
		c.scheduler.AfterFunc(c.bots.DelayFor(), func() {
			c.onBotSubmit(code, botID, version)
		})
	}
}

// onTimerTick broadcasts the remaining time each second and closes the
// answering window when it reaches zero.
func (c *Controller) onTimerTick(code model.RoomCode, version int64) {
	ctx := context.Background()

	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil || room.Version != version ||
		room.Phase != model.PhaseAnswering || room.TimerEndTime == nil {
		return
	}

	remaining := int(math.Ceil(room.TimerEndTime.Sub(c.clock.Now()).Seconds()))
	if remaining <= 0 {
		// Clients see the countdown reach zero before the reveal
		c.broadcaster.BroadcastEvent(code, model.Event{
			Type:    model.EventTimerUpdate,
			Payload: model.TimerUpdatePayload{SecondsRemaining: 0},
		})
		c.endAnswering(room)
		if err := c.storage.SaveRoom(ctx, room); err != nil {
			c.logger.Error("failed to save room after timer expiry",
				slog.String("room", string(code)),
				slog.String("error", err.Error()))
		}
		return
	}

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventTimerUpdate,
		Payload: model.TimerUpdatePayload{SecondsRemaining: remaining},
	})
	c.scheduler.AfterFunc(tickInterval, func() {
		c.onTimerTick(code, version)
	})
}

// onBotSubmit fires a scheduled bot submission. It degrades to a no-op
// once the round has moved on or the bot is gone.
func (c *Controller) onBotSubmit(code model.RoomCode, botID model.PlayerID, version int64) {
	ctx := context.Background()

	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil || room.Version != version || room.Phase != model.PhaseAnswering {
		return
	}

	b := room.GetPlayer(botID)
	if b == nil || !b.IsBot || b.HasSubmitted {
		return
	}

	b.CurrentAnswer = c.bots.AnswerFor(room.CurrentPrompt)
	b.HasSubmitted = true
	room.UpdatedAt = c.clock.Now()

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventPlayerSubmitted,
		Payload: model.PlayerRefPayload{PlayerID: botID},
	})

	if room.AllSubmitted() {
		c.endAnswering(room)
	}
	c.broadcastState(room)

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		c.logger.Error("failed to save bot submission",
			slog.String("room", string(code)),
			slog.String("error", err.Error()))
	}
}

// SubmitAnswer records a player's answer for the current round. The
// round ends early once every active player has submitted.
func (c *Controller) SubmitAnswer(ctx context.Context, code model.RoomCode, playerID model.PlayerID, answer string) error {
	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil {
		return err
	}

	player := room.GetPlayer(playerID)
	if player == nil {
		return model.ErrNotInRoom
	}
	if room.Phase != model.PhaseAnswering {
		return model.ErrWrongPhase
	}
	if player.IsSpectator {
		return model.ErrSpectator
	}
	if !player.IsConnected {
		return model.ErrNotConnected
	}
	if player.HasSubmitted {
		return model.ErrAlreadySubmitted
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return model.ErrEmptyAnswer
	}

	player.CurrentAnswer = answer
	player.HasSubmitted = true
	room.UpdatedAt = c.clock.Now()

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventPlayerSubmitted,
		Payload: model.PlayerRefPayload{PlayerID: playerID},
	})

	if room.AllSubmitted() {
		c.endAnswering(room)
	}
	c.broadcastState(room)

	return c.storage.SaveRoom(ctx, room)
}

// endAnswering closes the round: answers are grouped and scored, the
// room enters the reveal phase, and the move to the scoring phase is
// scheduled. Safe to call from any completion path; only the first
// call in a round does anything.
func (c *Controller) endAnswering(room *model.Room) {
	if room.Phase != model.PhaseAnswering {
		return
	}

	c.transition(room, model.PhaseReveal)
	room.TimerEndTime = nil

	result := scoring.BuildRoundResult(room.CurrentRound, room.CurrentPrompt, room.Players)
	room.RoundResults = append(room.RoundResults, result)

	points := make(map[model.PlayerID]int, len(result.PlayerScores))
	for _, ps := range result.PlayerScores {
		points[ps.PlayerID] = ps.Points
	}
	for i := range room.Players {
		room.Players[i].Score += points[room.Players[i].ID]
	}

	c.broadcaster.BroadcastEvent(room.Code, model.Event{
		Type:    model.EventRevealAnswers,
		Payload: result,
	})
	c.broadcastState(room)

	code, version := room.Code, room.Version
	c.scheduler.AfterFunc(revealHoldDelay, func() {
		c.onRevealDone(code, version)
	})
}

func (c *Controller) onRevealDone(code model.RoomCode, version int64) {
	ctx := context.Background()

	unlock := c.registry.Lock(code)
	defer unlock()

	room, err := c.storage.GetRoom(ctx, code)
	if err != nil || room.Version != version || room.Phase != model.PhaseReveal {
		return
	}

	c.transition(room, model.PhaseScoring)

	c.broadcaster.BroadcastEvent(code, model.Event{
		Type:    model.EventRoundScores,
		Payload: room.RoundResults[len(room.RoundResults)-1],
	})
	c.broadcastState(room)

	if err := c.storage.SaveRoom(ctx, room); err != nil {
		c.logger.Error("failed to save room entering scoring phase",
			slog.String("room", string(code)),
			slog.String("error", err.Error()))
	}
}

// NextRound advances past the scoring phase: into the next round, or
// to game over after the final round. Host only.
func (c *Controller) NextRound(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error {
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
	if room.Phase != model.PhaseScoring {
		return model.ErrWrongPhase
	}

	if room.CurrentRound >= room.Settings.TotalRounds {
		c.transition(room, model.PhaseGameOver)
		c.broadcaster.BroadcastEvent(code, model.Event{
			Type:    model.EventGameOver,
			Payload: model.GameOverPayload{Standings: scoring.Standings(room.Players)},
		})
		c.broadcastState(room)
		c.logger.Info("game over", slog.String("room", string(code)))
	} else {
		c.beginRound(room)
	}

	return c.storage.SaveRoom(ctx, room)
}

// PlayAgain resets a finished game back to the lobby, keeping the
// membership and settings but wiping all game progress. Host only.
func (c *Controller) PlayAgain(ctx context.Context, code model.RoomCode, requesterID model.PlayerID) error {
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
	if room.Phase != model.PhaseGameOver {
		return model.ErrWrongPhase
	}

	c.transition(room, model.PhaseLobby)
	room.CurrentRound = 0
	room.CurrentPrompt = ""
	room.TimerEndTime = nil
	room.RoundResults = nil
	room.Prompts = nil
	for i := range room.Players {
		room.Players[i].Score = 0
		room.Players[i].CurrentAnswer = ""
		room.Players[i].HasSubmitted = false
	}

	c.broadcastState(room)
	return c.storage.SaveRoom(ctx, room)
}
