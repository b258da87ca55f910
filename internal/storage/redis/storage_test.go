package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/gungle/gungle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func intPtr(v int) *int {
	return &v
}

// Firearm tests

func (s *StorageSuite) TestSaveAndGetFirearm() {
	firearm := &model.Firearm{
		ID:              "ak47",
		Name:            "AK-47",
		Manufacturer:    "Kalashnikov Concern",
		Type:            model.FirearmTypeRifle,
		Caliber:         "7.62x39mm",
		CountryOfOrigin: "Soviet Union",
		ModelType:       model.ModelTypeMilitary,
		YearIntroduced:  intPtr(1947),
		ActionType:      model.ActionLongStrokeGasPiston,
	}
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, firearm))

	got, err := s.storage.GetFirearm(s.ctx, "ak47")
	s.Require().NoError(err)
	s.Equal("AK-47", got.Name)
	s.Equal(model.FirearmTypeRifle, got.Type)
	s.Require().NotNil(got.YearIntroduced)
	s.Equal(1947, *got.YearIntroduced)
}

func (s *StorageSuite) TestGetMissingFirearmFails() {
	_, err := s.storage.GetFirearm(s.ctx, "missing")
	s.Require().ErrorIs(err, model.ErrFirearmNotFound)
}

func (s *StorageSuite) TestListFirearmsInsertionOrder() {
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "c"}))
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "a"}))
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "b"}))

	firearms, err := s.storage.ListFirearms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(firearms, 3)
	s.Equal(model.FirearmID("c"), firearms[0].ID)
	s.Equal(model.FirearmID("a"), firearms[1].ID)
	s.Equal(model.FirearmID("b"), firearms[2].ID)
}

func (s *StorageSuite) TestSaveFirearmOverwriteKeepsOrder() {
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "a", Name: "First"}))
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "b", Name: "Second"}))
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "a", Name: "Updated"}))

	firearms, err := s.storage.ListFirearms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(firearms, 2)
	s.Equal("Updated", firearms[0].Name)
	s.Equal("Second", firearms[1].Name)
}

func (s *StorageSuite) TestDeleteFirearm() {
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "a"}))
	s.Require().NoError(s.storage.SaveFirearm(s.ctx, &model.Firearm{ID: "b"}))

	s.Require().NoError(s.storage.DeleteFirearm(s.ctx, "a"))

	_, err := s.storage.GetFirearm(s.ctx, "a")
	s.Require().ErrorIs(err, model.ErrFirearmNotFound)

	firearms, err := s.storage.ListFirearms(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(firearms, 1)
	s.Equal(model.FirearmID("b"), firearms[0].ID)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := &model.GameSession{
		ID:         "session-1",
		Target:     model.Firearm{ID: "ak47", Name: "AK-47"},
		Guesses:    []string{"MP 40"},
		State:      model.SessionStateOpen,
		CreatedAt:  time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		MaxGuesses: 5,
	}
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.FirearmID("ak47"), got.Target.ID)
	s.Equal([]string{"MP 40"}, got.Guesses)
	s.Equal(model.SessionStateOpen, got.State)
	s.Equal(5, got.MaxGuesses)
}

func (s *StorageSuite) TestGetMissingSessionFails() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.Require().ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExpiresAfterTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "session-1"}))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestListSessionsSkipsExpired() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "old"}))

	s.mini.FastForward(2 * time.Hour)

	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "fresh"}))

	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 1)
	s.Equal(model.SessionID("fresh"), sessions[0].ID)
}

func (s *StorageSuite) TestSaveSessionOverwriteRefreshesTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "s1", State: model.SessionStateOpen}))

	s.mini.FastForward(30 * time.Minute)

	s.Require().NoError(s.storage.SaveSession(s.ctx, &model.GameSession{ID: "s1", State: model.SessionStateWon}))

	s.mini.FastForward(45 * time.Minute)

	got, err := s.storage.GetSession(s.ctx, "s1")
	s.Require().NoError(err)
	s.Equal(model.SessionStateWon, got.State)

	// The index holds a single entry despite the double save
	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Len(sessions, 1)
}

func (s *StorageSuite) TestListSessionsEmpty() {
	sessions, err := s.storage.ListSessions(s.ctx)
	s.Require().NoError(err)
	s.Empty(sessions)
}
