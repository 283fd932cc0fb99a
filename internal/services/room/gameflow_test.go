package room

import (
	"time"

	"github.com/lukemay/blankparty/internal/model"
)

// StartGame tests

func (s *ControllerSuite) TestStartGameRequiresHost() {
	code, _, p2, _ := s.threePlayerRoom()
	s.ErrorIs(s.controller.StartGame(s.ctx, code, p2), model.ErrNotHost)
}

func (s *ControllerSuite) TestStartGameRequiresLobbyPhase() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)
	s.ErrorIs(s.controller.StartGame(s.ctx, code, host), model.ErrWrongPhase)
}

func (s *ControllerSuite) TestStartGameRequiresMinPlayers() {
	code, host := s.createRoom("Ana")
	s.join(code, "Ben")

	s.ErrorIs(s.controller.StartGame(s.ctx, code, host), model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestStartGameDisconnectedPlayersDoNotCount() {
	code, host, _, p3 := s.threePlayerRoom()
	s.Require().NoError(s.controller.Disconnect(s.ctx, code, p3))

	s.ErrorIs(s.controller.StartGame(s.ctx, code, host), model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestStartGameEntersPromptThenAnswering() {
	code, host, _, _ := s.threePlayerRoom()

	s.Require().NoError(s.controller.StartGame(s.ctx, code, host))

	room := s.room(code)
	s.Equal(model.PhasePrompt, room.Phase)
	s.Equal(1, room.CurrentRound)
	s.Equal(testDeck[0], room.CurrentPrompt)
	s.Len(room.Prompts, room.Settings.TotalRounds)
	s.Nil(room.TimerEndTime)

	_, ok := s.broadcaster.lastOfType(model.EventGameStarted)
	s.True(ok)
	promptEvent, ok := s.broadcaster.lastOfType(model.EventNewPrompt)
	s.Require().True(ok)
	s.Equal(1, promptEvent.event.Payload.(model.NewPromptPayload).Round)

	// Prompt intro delay elapses, answering opens with the timer set
	delay, ok := s.scheduler.NextDelay()
	s.Require().True(ok)
	s.Equal(promptIntroDelay, delay)
	s.Require().True(s.scheduler.FireNext())

	room = s.room(code)
	s.Equal(model.PhaseAnswering, room.Phase)
	s.Require().NotNil(room.TimerEndTime)
	wantDeadline := s.clock.Now().Add(time.Duration(room.Settings.TimerDuration) * time.Second)
	s.Equal(wantDeadline, *room.TimerEndTime)
}

// SubmitAnswer tests

func (s *ControllerSuite) TestSubmitAnswerOutsideAnsweringRejected() {
	code, host, _, _ := s.threePlayerRoom()
	err := s.controller.SubmitAnswer(s.ctx, code, host, "cake")
	s.ErrorIs(err, model.ErrWrongPhase)
	s.Empty(s.room(code).GetPlayer(host).CurrentAnswer)
}

func (s *ControllerSuite) TestSubmitAnswerUnknownPlayerRejected() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)
	err := s.controller.SubmitAnswer(s.ctx, code, "ghost", "cake")
	s.ErrorIs(err, model.ErrNotInRoom)
}

func (s *ControllerSuite) TestSubmitAnswerSpectatorRejected() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)
	spec := s.join(code, "Dee") // joined mid-game, spectator

	err := s.controller.SubmitAnswer(s.ctx, code, spec, "cake")
	s.ErrorIs(err, model.ErrSpectator)
}

func (s *ControllerSuite) TestSubmitAnswerTwiceRejected() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)

	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, host, "cake"))
	err := s.controller.SubmitAnswer(s.ctx, code, host, "party")
	s.ErrorIs(err, model.ErrAlreadySubmitted)
	s.Equal("cake", s.room(code).GetPlayer(host).CurrentAnswer)
}

func (s *ControllerSuite) TestSubmitAnswerWhileDisconnectedRejected() {
	code, host, _, p3 := s.threePlayerRoom()
	s.startGame(code, host)
	s.Require().NoError(s.controller.Disconnect(s.ctx, code, p3))

	err := s.controller.SubmitAnswer(s.ctx, code, p3, "cake")
	s.ErrorIs(err, model.ErrNotConnected)
	s.False(s.room(code).GetPlayer(p3).HasSubmitted)
}

func (s *ControllerSuite) TestSubmitAnswerEmptyRejected() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)

	err := s.controller.SubmitAnswer(s.ctx, code, host, "   ")
	s.ErrorIs(err, model.ErrEmptyAnswer)
}

func (s *ControllerSuite) TestSubmitAnswerRecordsAndAnnounces() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)

	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, host, " cake "))

	player := s.room(code).GetPlayer(host)
	s.Equal("cake", player.CurrentAnswer)
	s.True(player.HasSubmitted)

	submitted, ok := s.broadcaster.lastOfType(model.EventPlayerSubmitted)
	s.Require().True(ok)
	s.Equal(model.PlayerRefPayload{PlayerID: host}, submitted.event.Payload)
}

// Round completion and scoring

func (s *ControllerSuite) TestRoundScoresCatCatsDog() {
	code, host, p2, p3 := s.threePlayerRoom()
	s.startGame(code, host)

	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, host, "cat"))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, p2, "cats"))
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, p3, "dog"))

	room := s.room(code)
	s.Equal(model.PhaseReveal, room.Phase)
	s.Nil(room.TimerEndTime)
	s.Require().Len(room.RoundResults, 1)

	result := room.RoundResults[0]
	s.Require().Len(result.AnswerGroups, 2)
	s.Equal("cat", result.AnswerGroups[0].NormalizedAnswer)
	s.Len(result.AnswerGroups[0].PlayerIDs, 2)
	s.Equal(3, result.AnswerGroups[0].Points)
	s.Equal(0, result.AnswerGroups[1].Points)

	s.Equal(3, room.GetPlayer(host).Score)
	s.Equal(3, room.GetPlayer(p2).Score)
	s.Equal(0, room.GetPlayer(p3).Score)

	_, ok := s.broadcaster.lastOfType(model.EventRevealAnswers)
	s.True(ok)

	// Reveal holds, then the room moves to the scoring phase
	s.scheduler.FireAll()
	s.Equal(model.PhaseScoring, s.room(code).Phase)
	_, ok = s.broadcaster.lastOfType(model.EventRoundScores)
	s.True(ok)
}

// Timer tests

func (s *ControllerSuite) TestTimerTickBroadcastsCountdown() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)

	s.clock.Advance(time.Second)
	s.Require().True(s.scheduler.FireNext())

	tick, ok := s.broadcaster.lastOfType(model.EventTimerUpdate)
	s.Require().True(ok)
	s.Equal(model.TimerUpdatePayload{SecondsRemaining: 59}, tick.event.Payload)

	// Partial seconds round up
	s.clock.Advance(500 * time.Millisecond)
	s.Require().True(s.scheduler.FireNext())
	tick, _ = s.broadcaster.lastOfType(model.EventTimerUpdate)
	s.Equal(model.TimerUpdatePayload{SecondsRemaining: 59}, tick.event.Payload)
}

func (s *ControllerSuite) TestTimerExpiryEndsRound() {
	code, host, p2, p3 := s.threePlayerRoom()
	s.startGame(code, host)

	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, host, "cake"))

	s.clock.Advance(61 * time.Second)
	s.Require().True(s.scheduler.FireNext())

	room := s.room(code)
	s.Equal(model.PhaseReveal, room.Phase)

	// Non-submitters get zero-point entries
	result := room.RoundResults[0]
	s.Len(result.PlayerScores, 3)
	s.Equal(0, room.GetPlayer(p2).Score)
	s.Equal(0, room.GetPlayer(p3).Score)

	// The countdown is seen reaching zero before the reveal
	tick, ok := s.broadcaster.lastOfType(model.EventTimerUpdate)
	s.Require().True(ok)
	s.Equal(model.TimerUpdatePayload{SecondsRemaining: 0}, tick.event.Payload)
}

func (s *ControllerSuite) TestStaleTimerTickIsNoop() {
	code, host, p2, p3 := s.threePlayerRoom()
	s.startGame(code, host)

	s.finishRound(code, map[model.PlayerID]string{host: "cake", p2: "party", p3: "wish"})
	s.broadcaster.reset()

	// The countdown callback from the finished round fires late
	s.clock.Advance(61 * time.Second)
	s.scheduler.FireAll()

	s.Equal(model.PhaseScoring, s.room(code).Phase)
	s.Empty(s.broadcaster.ofType(model.EventTimerUpdate))
}

// NextRound / game over

func (s *ControllerSuite) TestNextRoundRequiresHostAndScoringPhase() {
	code, host, p2, p3 := s.threePlayerRoom()
	s.startGame(code, host)

	s.ErrorIs(s.controller.NextRound(s.ctx, code, host), model.ErrWrongPhase)

	s.finishRound(code, map[model.PlayerID]string{host: "a1", p2: "b2", p3: "c3"})
	s.ErrorIs(s.controller.NextRound(s.ctx, code, p2), model.ErrNotHost)
}

func (s *ControllerSuite) TestNextRoundBeginsFollowingRound() {
	code, host, p2, p3 := s.threePlayerRoom()
	s.startGame(code, host)
	s.finishRound(code, map[model.PlayerID]string{host: "cake", p2: "cake", p3: "wish"})

	s.Require().NoError(s.controller.NextRound(s.ctx, code, host))

	room := s.room(code)
	s.Equal(model.PhasePrompt, room.Phase)
	s.Equal(2, room.CurrentRound)
	s.Equal(testDeck[1], room.CurrentPrompt)
	// Submission state resets, totals carry over
	s.False(room.GetPlayer(host).HasSubmitted)
	s.Empty(room.GetPlayer(host).CurrentAnswer)
	s.Equal(3, room.GetPlayer(host).Score)
}

func (s *ControllerSuite) TestGameOverAfterFinalRound() {
	code, host, p2, p3 := s.threePlayerRoom()

	five := 5
	s.Require().NoError(s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{TotalRounds: &five}))
	s.startGame(code, host)

	for round := 1; round <= 5; round++ {
		s.Equal(round, s.room(code).CurrentRound)
		s.finishRound(code, map[model.PlayerID]string{host: "cake", p2: "cake", p3: "wish"})
		s.Require().NoError(s.controller.NextRound(s.ctx, code, host))
		if round < 5 {
			s.Require().True(s.scheduler.FireNext())
		}
	}

	room := s.room(code)
	s.Equal(model.PhaseGameOver, room.Phase)
	s.Equal(5, room.CurrentRound)

	over, ok := s.broadcaster.lastOfType(model.EventGameOver)
	s.Require().True(ok)
	standings := over.event.Payload.(model.GameOverPayload).Standings
	s.Require().Len(standings, 3)
	s.Equal(15, standings[0].Score)
	s.Equal(15, standings[1].Score)
	s.Equal(0, standings[2].Score)
	s.Equal(p3, standings[2].PlayerID)
}

func (s *ControllerSuite) TestPlayAgainResetsToLobby() {
	code, host, p2, p3 := s.threePlayerRoom()
	five := 5
	s.Require().NoError(s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{TotalRounds: &five}))
	s.startGame(code, host)
	for round := 1; round <= 5; round++ {
		s.finishRound(code, map[model.PlayerID]string{host: "cake", p2: "cake", p3: "wish"})
		s.Require().NoError(s.controller.NextRound(s.ctx, code, host))
		if round < 5 {
			s.Require().True(s.scheduler.FireNext())
		}
	}
	s.Require().Equal(model.PhaseGameOver, s.room(code).Phase)

	s.ErrorIs(s.controller.PlayAgain(s.ctx, code, p2), model.ErrNotHost)
	s.Require().NoError(s.controller.PlayAgain(s.ctx, code, host))

	room := s.room(code)
	s.Equal(model.PhaseLobby, room.Phase)
	s.Zero(room.CurrentRound)
	s.Empty(room.CurrentPrompt)
	s.Empty(room.RoundResults)
	s.Nil(room.Prompts)
	s.Len(room.Players, 3)
	for _, p := range room.Players {
		s.Zero(p.Score)
		s.False(p.HasSubmitted)
	}
	// Settings survive the reset
	s.Equal(5, room.Settings.TotalRounds)
}

// Bot play

func (s *ControllerSuite) TestBotsSubmitDuringAnswering() {
	code, host := s.createRoom("Ana")
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))

	s.startGame(code, host)
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, host, "cake"))

	// Pending: countdown tick plus the two bot submissions
	s.Require().Equal(3, s.scheduler.Pending())
	s.Require().True(s.scheduler.FireNext()) // tick
	s.Require().True(s.scheduler.FireNext()) // first bot
	s.Require().True(s.scheduler.FireNext()) // second bot ends the round

	room := s.room(code)
	s.Equal(model.PhaseReveal, room.Phase)
	for _, p := range room.Players {
		if p.IsBot {
			// First prompt is "Birthday ___"; bots draw from its themed pool
			s.Equal("cake", p.CurrentAnswer)
			s.True(p.HasSubmitted)
		}
	}

	// Host and both bots said "cake": a three-way group scores 1 each
	s.Equal(1, room.GetPlayer(host).Score)
}

func (s *ControllerSuite) TestStaleBotSubmissionIsNoop() {
	code, host := s.createRoom("Ana")
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))

	s.startGame(code, host)
	s.Require().NoError(s.controller.SubmitAnswer(s.ctx, code, host, "cake"))

	// Timer expires before the bots get around to answering
	s.clock.Advance(61 * time.Second)
	s.Require().True(s.scheduler.FireNext())
	s.Require().Equal(model.PhaseReveal, s.room(code).Phase)
	resultCount := len(s.room(code).RoundResults)

	s.scheduler.FireAll()

	room := s.room(code)
	s.Len(room.RoundResults, resultCount)
	for _, p := range room.Players {
		if p.IsBot {
			s.Empty(p.CurrentAnswer)
		}
	}
}
