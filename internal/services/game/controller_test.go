package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/gungle/gungle/internal/dependencies/mocks"
	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/services/catalog"
	"github.com/gungle/gungle/internal/services/daily"
	"github.com/gungle/gungle/internal/storage/memory"
	"github.com/gungle/gungle/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	catalog    *catalog.Service
	selector   *daily.Selector
	clock      *mocks.MockClock
	idgen      *mocks.MockIDGenerator
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func intPtr(v int) *int {
	return &v
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	logger := testutil.NopLogger()
	s.catalog = catalog.New(s.storage, logger)
	// 2024-01-15 picks index 0 of a two-record catalog, the AK-47
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	s.idgen = mocks.NewMockIDGenerator()
	s.selector = daily.New(s.catalog, s.clock, logger)
	s.controller = NewController(s.storage, s.catalog, s.selector, s.clock, s.idgen, 5, logger)
	s.ctx = context.Background()

	s.Require().NoError(s.catalog.LoadFirearms(s.ctx, []*model.Firearm{
		{
			ID:              "ak47",
			Name:            "AK-47",
			Manufacturer:    "Kalashnikov Concern",
			Type:            model.FirearmTypeRifle,
			Caliber:         "7.62x39mm",
			CountryOfOrigin: "Soviet Union",
			ModelType:       model.ModelTypeMilitary,
			YearIntroduced:  intPtr(1947),
			ActionType:      model.ActionLongStrokeGasPiston,
		},
		{
			ID:              "m1_garand",
			Name:            "M1 Garand",
			Manufacturer:    "Springfield Armory",
			Type:            model.FirearmTypeRifle,
			Caliber:         ".30-06 Springfield",
			CountryOfOrigin: "United States",
			ModelType:       model.ModelTypeMilitary,
			YearIntroduced:  intPtr(1936),
			ActionType:      model.ActionGasTrap,
		},
	}))
}

// StartGame tests

func (s *ControllerSuite) TestStartGameSucceeds() {
	s.idgen.QueueIDs("session-1")

	session, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.SessionID("session-1"), session.ID)
	s.Equal(model.FirearmID("ak47"), session.Target.ID)
	s.Equal(model.SessionStateOpen, session.State)
	s.Equal(5, session.MaxGuesses)
	s.Empty(session.Guesses)
	s.Equal(s.clock.Now(), session.CreatedAt)
}

func (s *ControllerSuite) TestStartGamePersistsSession() {
	s.idgen.QueueIDs("session-1")

	_, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	stored, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.FirearmID("ak47"), stored.Target.ID)
}

func (s *ControllerSuite) TestStartGameEmptyCatalogFails() {
	s.Require().NoError(s.catalog.DeleteFirearm(s.ctx, "ak47"))
	s.Require().NoError(s.catalog.DeleteFirearm(s.ctx, "m1_garand"))

	_, err := s.controller.StartGame(s.ctx)
	s.Require().ErrorIs(err, model.ErrEmptyCatalog)
}

func (s *ControllerSuite) TestSessionsShareDailyTarget() {
	first, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)

	s.NotEqual(first.ID, second.ID)
	s.Equal(first.Target.ID, second.Target.ID)
}

// Guess tests

func (s *ControllerSuite) TestCorrectGuessWins() {
	session := s.startGame()

	outcome, err := s.controller.Guess(s.ctx, session.ID, "AK-47")
	s.Require().NoError(err)

	s.True(outcome.Correct)
	s.True(outcome.GameCompleted)
	s.Equal(4, outcome.RemainingGuesses)

	stored, err := s.storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStateWon, stored.State)
}

func (s *ControllerSuite) TestGuessNameMatchIgnoresCase() {
	session := s.startGame()

	outcome, err := s.controller.Guess(s.ctx, session.ID, "ak-47")
	s.Require().NoError(err)

	s.True(outcome.Correct)
	s.Equal("AK-47", outcome.Guess.Name)
}

func (s *ControllerSuite) TestWrongGuessReturnsComparisons() {
	session := s.startGame()

	outcome, err := s.controller.Guess(s.ctx, session.ID, "M1 Garand")
	s.Require().NoError(err)

	s.False(outcome.Correct)
	s.False(outcome.GameCompleted)
	s.Equal(4, outcome.RemainingGuesses)
	s.Require().Len(outcome.Comparisons, 7)

	// Both are rifles; everything else differs
	s.Equal("type", outcome.Comparisons[1].Attribute)
	s.Equal(model.ComparisonCorrect, outcome.Comparisons[1].Result)
	s.Equal(model.ComparisonIncorrect, outcome.Comparisons[0].Result)
	s.Equal(model.ComparisonIncorrect, outcome.Comparisons[6].Result)
}

func (s *ControllerSuite) TestUnknownGuessNameFails() {
	session := s.startGame()

	_, err := s.controller.Guess(s.ctx, session.ID, "Luger P08")
	s.Require().ErrorIs(err, model.ErrFirearmNotFound)

	// A rejected guess does not consume an attempt
	stored, err := s.storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Empty(stored.Guesses)
}

func (s *ControllerSuite) TestGuessOnMissingSessionFails() {
	_, err := s.controller.Guess(s.ctx, "missing", "AK-47")
	s.Require().ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestExhaustingGuessesLosesGame() {
	session := s.startGame()

	var outcome *model.GuessOutcome
	var err error
	for i := 0; i < 5; i++ {
		outcome, err = s.controller.Guess(s.ctx, session.ID, "M1 Garand")
		s.Require().NoError(err)
	}

	s.False(outcome.Correct)
	s.True(outcome.GameCompleted)
	s.Equal(0, outcome.RemainingGuesses)

	stored, err := s.storage.GetSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStateLost, stored.State)
	s.Len(stored.Guesses, 5)
	s.Len(stored.History, 5)
}

func (s *ControllerSuite) TestGuessAfterCompletionFails() {
	session := s.startGame()

	_, err := s.controller.Guess(s.ctx, session.ID, "AK-47")
	s.Require().NoError(err)

	_, err = s.controller.Guess(s.ctx, session.ID, "M1 Garand")
	s.Require().ErrorIs(err, model.ErrGameAlreadyCompleted)
}

func (s *ControllerSuite) TestGuessAfterLossFails() {
	session := s.startGame()

	for i := 0; i < 5; i++ {
		_, err := s.controller.Guess(s.ctx, session.ID, "M1 Garand")
		s.Require().NoError(err)
	}

	_, err := s.controller.Guess(s.ctx, session.ID, "AK-47")
	s.Require().ErrorIs(err, model.ErrGameAlreadyCompleted)
}

func (s *ControllerSuite) TestRemainingGuessesCountsDown() {
	session := s.startGame()

	for i := 1; i <= 4; i++ {
		outcome, err := s.controller.Guess(s.ctx, session.ID, "M1 Garand")
		s.Require().NoError(err)
		s.Equal(5-i, outcome.RemainingGuesses)
		s.False(outcome.GameCompleted)
	}
}

// Status and Reveal tests

func (s *ControllerSuite) TestStatusReturnsSession() {
	session := s.startGame()

	_, err := s.controller.Guess(s.ctx, session.ID, "M1 Garand")
	s.Require().NoError(err)

	status, err := s.controller.Status(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, status.ID)
	s.Len(status.Guesses, 1)
	s.Len(status.History, 1)
	s.False(status.IsCompleted())
}

func (s *ControllerSuite) TestStatusMissingSessionFails() {
	_, err := s.controller.Status(s.ctx, "missing")
	s.Require().ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestRevealBeforeCompletionFails() {
	session := s.startGame()

	_, err := s.controller.Reveal(s.ctx, session.ID)
	s.Require().ErrorIs(err, model.ErrGameNotCompleted)
}

func (s *ControllerSuite) TestRevealAfterWin() {
	session := s.startGame()

	_, err := s.controller.Guess(s.ctx, session.ID, "AK-47")
	s.Require().NoError(err)

	revealed, err := s.controller.Reveal(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(model.FirearmID("ak47"), revealed.Target.ID)
	s.True(revealed.IsWon())
}

func (s *ControllerSuite) TestRevealAfterLoss() {
	session := s.startGame()

	for i := 0; i < 5; i++ {
		_, err := s.controller.Guess(s.ctx, session.ID, "M1 Garand")
		s.Require().NoError(err)
	}

	revealed, err := s.controller.Reveal(s.ctx, session.ID)
	s.Require().NoError(err)
	s.False(revealed.IsWon())
	s.Len(revealed.Guesses, 5)
}

// Admin tests

func (s *ControllerSuite) TestSessionsListsAll() {
	first := s.startGame()
	second := s.startGame()

	sessions, err := s.controller.Sessions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(sessions, 2)
	s.Equal(first.ID, sessions[0].ID)
	s.Equal(second.ID, sessions[1].ID)
}

func (s *ControllerSuite) TestDailyFirearm() {
	firearm, err := s.controller.DailyFirearm(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.FirearmID("ak47"), firearm.ID)
}

func (s *ControllerSuite) startGame() *model.GameSession {
	session, err := s.controller.StartGame(s.ctx)
	s.Require().NoError(err)
	return session
}
