package room

import (
	"github.com/lukemay/blankparty/internal/model"
)

// UpdateSettings tests

func (s *ControllerSuite) TestUpdateSettingsRequiresHost() {
	code, _, p2, _ := s.threePlayerRoom()
	thirty := 30
	err := s.controller.UpdateSettings(s.ctx, code, p2, model.SettingsPatch{TimerDuration: &thirty})
	s.ErrorIs(err, model.ErrNotHost)
}

func (s *ControllerSuite) TestUpdateSettingsRequiresLobby() {
	code, host, _, _ := s.threePlayerRoom()
	s.startGame(code, host)
	thirty := 30
	err := s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{TimerDuration: &thirty})
	s.ErrorIs(err, model.ErrWrongPhase)
}

func (s *ControllerSuite) TestUpdateSettingsAppliesPatch() {
	code, host, _, _ := s.threePlayerRoom()
	thirty, fifteen := 30, 15

	err := s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{
		TimerDuration: &thirty,
		TotalRounds:   &fifteen,
	})
	s.Require().NoError(err)

	settings := s.room(code).Settings
	s.Equal(30, settings.TimerDuration)
	s.Equal(15, settings.TotalRounds)
	// Untouched fields keep their values
	s.Equal(3, settings.MinPlayers)
	s.Equal(8, settings.MaxPlayers)

	updated, ok := s.broadcaster.lastOfType(model.EventSettingsUpdated)
	s.Require().True(ok)
	s.Equal(settings, updated.event.Payload)
}

func (s *ControllerSuite) TestUpdateSettingsRejectsInvalidValues() {
	code, host, _, _ := s.threePlayerRoom()

	fortyFive := 45
	err := s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{TimerDuration: &fortyFive})
	s.ErrorIs(err, model.ErrInvalidSettings)

	seven := 7
	err = s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{TotalRounds: &seven})
	s.ErrorIs(err, model.ErrInvalidSettings)

	// Cannot shrink the room below its current population
	two := 2
	err = s.controller.UpdateSettings(s.ctx, code, host, model.SettingsPatch{MaxPlayers: &two})
	s.ErrorIs(err, model.ErrInvalidSettings)

	// Nothing changed
	s.Equal(model.DefaultSettings(), s.room(code).Settings)
}

// ToggleSpectator tests

func (s *ControllerSuite) TestToggleSpectatorSelf() {
	code, _, p2, _ := s.threePlayerRoom()

	s.Require().NoError(s.controller.ToggleSpectator(s.ctx, code, p2, p2))
	s.True(s.room(code).GetPlayer(p2).IsSpectator)

	s.Require().NoError(s.controller.ToggleSpectator(s.ctx, code, p2, p2))
	s.False(s.room(code).GetPlayer(p2).IsSpectator)
}

func (s *ControllerSuite) TestToggleSpectatorOthersRequiresHost() {
	code, host, p2, p3 := s.threePlayerRoom()

	s.ErrorIs(s.controller.ToggleSpectator(s.ctx, code, p2, p3), model.ErrNotHost)
	s.NoError(s.controller.ToggleSpectator(s.ctx, code, host, p3))
	s.True(s.room(code).GetPlayer(p3).IsSpectator)
}

func (s *ControllerSuite) TestHostBecomingSpectatorTransfersHost() {
	code, host, p2, _ := s.threePlayerRoom()

	s.Require().NoError(s.controller.ToggleSpectator(s.ctx, code, host, host))

	room := s.room(code)
	s.False(room.GetPlayer(host).IsHost)
	s.Require().NotNil(room.GetHost())
	s.Equal(p2, room.GetHost().ID)
}

func (s *ControllerSuite) TestToggleSpectatorOnlyInLobby() {
	code, host, _, p3 := s.threePlayerRoom()
	s.startGame(code, host)

	s.ErrorIs(s.controller.ToggleSpectator(s.ctx, code, p3, p3), model.ErrWrongPhase)
	s.ErrorIs(s.controller.ToggleSpectator(s.ctx, code, host, p3), model.ErrWrongPhase)
	s.False(s.room(code).GetPlayer(p3).IsSpectator)
}

// Bot management tests

func (s *ControllerSuite) TestAddBotAssignsNamesInOrder() {
	code, host := s.createRoom("Ana")

	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))

	room := s.room(code)
	s.Require().Len(room.Players, 3)
	s.Equal("CPU Alpha", room.Players[1].Name)
	s.Equal("CPU Beta", room.Players[2].Name)
	s.True(room.Players[1].IsBot)
	s.True(room.Players[1].IsConnected)
	s.False(room.Players[1].IsHost)
}

func (s *ControllerSuite) TestAddBotChecks() {
	code, host, p2, _ := s.threePlayerRoom()

	s.ErrorIs(s.controller.AddBot(s.ctx, code, p2), model.ErrNotHost)

	s.startGame(code, host)
	s.ErrorIs(s.controller.AddBot(s.ctx, code, host), model.ErrWrongPhase)
}

func (s *ControllerSuite) TestAddBotCapped() {
	code, host := s.createRoom("Ana")

	for i := 0; i < 5; i++ {
		s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	}
	s.ErrorIs(s.controller.AddBot(s.ctx, code, host), model.ErrMaxBots)
}

func (s *ControllerSuite) TestRemoveBotFreesName() {
	code, host := s.createRoom("Ana")
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))

	alpha := s.room(code).Players[1].ID
	s.Require().NoError(s.controller.RemoveBot(s.ctx, code, host, alpha))

	// The freed name is reused before a new one
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	room := s.room(code)
	s.Equal("CPU Alpha", room.Players[2].Name)
}

func (s *ControllerSuite) TestRemoveBotRejectsHumanTarget() {
	code, host, p2, _ := s.threePlayerRoom()
	s.ErrorIs(s.controller.RemoveBot(s.ctx, code, host, p2), model.ErrNotInRoom)
}

// Kick and block tests

func (s *ControllerSuite) TestKickRequiresHost() {
	code, _, p2, p3 := s.threePlayerRoom()
	s.ErrorIs(s.controller.KickPlayer(s.ctx, code, p2, p3, false), model.ErrNotHost)
}

func (s *ControllerSuite) TestKickSelfRejected() {
	code, host, _, _ := s.threePlayerRoom()
	s.ErrorIs(s.controller.KickPlayer(s.ctx, code, host, host, false), model.ErrCannotTargetSelf)
}

func (s *ControllerSuite) TestKickRemovesAndNotifiesTarget() {
	code, host, p2, _ := s.threePlayerRoom()

	s.Require().NoError(s.controller.KickPlayer(s.ctx, code, host, p2, false))

	s.Nil(s.room(code).GetPlayer(p2))
	kicked, ok := s.broadcaster.lastOfType(model.EventKicked)
	s.Require().True(ok)
	s.Equal(p2, kicked.target)
	s.Equal(model.KickedPayload{WasBlocked: false}, kicked.event.Payload)
	// The kicked player's connections are detached from the room
	s.Contains(s.broadcaster.evicted, p2)
}

func (s *ControllerSuite) TestKickDepartedPlayerIsNoop() {
	code, host, p2, _ := s.threePlayerRoom()
	s.Require().NoError(s.controller.LeaveRoom(s.ctx, code, p2))
	s.broadcaster.reset()

	s.NoError(s.controller.KickPlayer(s.ctx, code, host, p2, false))

	s.Empty(s.broadcaster.ofType(model.EventKicked))
	s.Len(s.room(code).Players, 2)
}

func (s *ControllerSuite) TestKickAndBlockRejectsRejoinCaseInsensitive() {
	code, host := s.createRoom("Ana")
	alex := s.join(code, "Alex")

	s.Require().NoError(s.controller.KickPlayer(s.ctx, code, host, alex, true))

	_, _, err := s.controller.JoinRoom(s.ctx, code, "alex")
	s.ErrorIs(err, model.ErrPlayerBlocked)

	kicked, _ := s.broadcaster.lastOfType(model.EventKicked)
	s.Equal(model.KickedPayload{WasBlocked: true}, kicked.event.Payload)
}

func (s *ControllerSuite) TestBlockBotRejected() {
	code, host := s.createRoom("Ana")
	s.Require().NoError(s.controller.AddBot(s.ctx, code, host))
	botID := s.room(code).Players[1].ID

	s.ErrorIs(s.controller.KickPlayer(s.ctx, code, host, botID, true), model.ErrCannotBlockBot)
	// Plain kick still works on bots
	s.NoError(s.controller.KickPlayer(s.ctx, code, host, botID, false))
}

func (s *ControllerSuite) TestUnblockAllowsRejoin() {
	code, host := s.createRoom("Ana")
	alex := s.join(code, "Alex")
	s.Require().NoError(s.controller.KickPlayer(s.ctx, code, host, alex, true))

	s.ErrorIs(s.controller.UnblockPlayer(s.ctx, code, "ghost", "Alex"), model.ErrNotHost)
	s.Require().NoError(s.controller.UnblockPlayer(s.ctx, code, host, "ALEX"))

	_, _, err := s.controller.JoinRoom(s.ctx, code, "Alex")
	s.NoError(err)
	s.Empty(s.room(code).BlockedPlayers)
}
