package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lukemay/blankparty/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) testRoom(code model.RoomCode) *model.Room {
	return &model.Room{
		Code:     code,
		Phase:    model.PhaseLobby,
		Settings: model.DefaultSettings(),
	}
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.testRoom("ABC234")
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	retrieved, err := s.storage.GetRoom(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(room.Code, retrieved.Code)
}

func (s *StorageSuite) TestGetRoomNotFound() {
	_, err := s.storage.GetRoom(s.ctx, "NOSUCH")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoom() {
	_ = s.storage.SaveRoom(s.ctx, s.testRoom("ABC234"))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABC234"))

	_, err := s.storage.GetRoom(s.ctx, "ABC234")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveRoom(s.ctx, s.testRoom("ABC234"))

	exists, err = s.storage.RoomExists(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestCountRooms() {
	count, err := s.storage.CountRooms(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)

	_ = s.storage.SaveRoom(s.ctx, s.testRoom("AAAAAA"))
	_ = s.storage.SaveRoom(s.ctx, s.testRoom("BBBBBB"))

	count, err = s.storage.CountRooms(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, count)
}
