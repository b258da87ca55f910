package game

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/gungle/gungle/internal/dependencies/clock"
	"github.com/gungle/gungle/internal/dependencies/idgen"
	"github.com/gungle/gungle/internal/model"
	"github.com/gungle/gungle/internal/services/catalog"
	"github.com/gungle/gungle/internal/services/comparison"
	"github.com/gungle/gungle/internal/services/daily"
	"github.com/gungle/gungle/internal/storage"
)

// DefaultMaxGuesses is the guess limit applied when none is configured
const DefaultMaxGuesses = 5

// Controller manages the session state machine and guess flow
type Controller struct {
	storage    storage.Storage
	catalog    *catalog.Service
	selector   *daily.Selector
	clock      clock.Clock
	idgen      idgen.Generator
	logger     *slog.Logger
	maxGuesses int

	// locks serializes mutation per session; two concurrent guesses on
	// the same session must not both observe the open state
	mu    sync.Mutex
	locks map[model.SessionID]*sync.Mutex
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	catalogService *catalog.Service,
	selector *daily.Selector,
	clk clock.Clock,
	gen idgen.Generator,
	maxGuesses int,
	logger *slog.Logger,
) *Controller {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Controller{
		storage:    storage,
		catalog:    catalogService,
		selector:   selector,
		clock:      clk,
		idgen:      gen,
		logger:     logger,
		maxGuesses: maxGuesses,
		locks:      make(map[model.SessionID]*sync.Mutex),
	}
}

// sessionLock returns the mutex guarding one session's mutations
func (c *Controller) sessionLock(id model.SessionID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[id] = lock
	}
	return lock
}

// StartGame creates a new session against today's target
func (c *Controller) StartGame(ctx context.Context) (*model.GameSession, error) {
	target, err := c.selector.Today(ctx)
	if err != nil {
		return nil, err
	}

	session := &model.GameSession{
		ID:         model.SessionID(c.idgen.NewID()),
		Target:     *target,
		Guesses:    []string{},
		History:    []model.GuessOutcome{},
		State:      model.SessionStateOpen,
		CreatedAt:  c.clock.Now(),
		MaxGuesses: c.maxGuesses,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("session_id", string(session.ID)),
		slog.Int("max_guesses", session.MaxGuesses),
	)

	return session, nil
}

// Guess submits a firearm name for the session and returns the outcome
func (c *Controller) Guess(ctx context.Context, sessionID model.SessionID, firearmName string) (*model.GuessOutcome, error) {
	lock := c.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.IsCompleted() {
		return nil, model.ErrGameAlreadyCompleted
	}
	// Defensive; the completion transition normally prevents this
	if len(session.Guesses) >= session.MaxGuesses {
		return nil, model.ErrMaxGuessesReached
	}

	guess, err := c.catalog.FindByName(ctx, firearmName)
	if err != nil {
		return nil, err
	}

	session.Guesses = append(session.Guesses, guess.Name)

	correct := strings.EqualFold(guess.Name, session.Target.Name)
	comparisons := comparison.Compare(guess, &session.Target)
	remaining := session.RemainingGuesses()

	if correct {
		session.State = model.SessionStateWon
	} else if remaining == 0 {
		session.State = model.SessionStateLost
	}

	outcome := model.GuessOutcome{
		Correct:          correct,
		Guess:            *guess,
		Target:           session.Target,
		Comparisons:      comparisons,
		RemainingGuesses: remaining,
		GameCompleted:    session.IsCompleted(),
	}
	session.History = append(session.History, outcome)

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	if session.IsCompleted() {
		c.logger.Info("game completed",
			slog.String("session_id", string(sessionID)),
			slog.Bool("won", session.IsWon()),
			slog.Int("guesses", len(session.Guesses)),
		)
	}

	return &outcome, nil
}

// Status retrieves a session for the status view
func (c *Controller) Status(ctx context.Context, sessionID model.SessionID) (*model.GameSession, error) {
	return c.storage.GetSession(ctx, sessionID)
}

// Reveal returns a completed session including its target.
// Fails with ErrGameNotCompleted while the session is still open.
func (c *Controller) Reveal(ctx context.Context, sessionID model.SessionID) (*model.GameSession, error) {
	session, err := c.storage.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.IsCompleted() {
		return nil, model.ErrGameNotCompleted
	}
	return session, nil
}

// Sessions returns all sessions (admin/debug use)
func (c *Controller) Sessions(ctx context.Context) ([]*model.GameSession, error) {
	return c.storage.ListSessions(ctx)
}

// DailyFirearm returns today's target (debug use)
func (c *Controller) DailyFirearm(ctx context.Context) (*model.Firearm, error) {
	return c.selector.Today(ctx)
}

// Interface for dependency injection
type ControllerInterface interface {
	StartGame(ctx context.Context) (*model.GameSession, error)
	Guess(ctx context.Context, sessionID model.SessionID, firearmName string) (*model.GuessOutcome, error)
	Status(ctx context.Context, sessionID model.SessionID) (*model.GameSession, error)
	Reveal(ctx context.Context, sessionID model.SessionID) (*model.GameSession, error)
	Sessions(ctx context.Context) ([]*model.GameSession, error)
	DailyFirearm(ctx context.Context) (*model.Firearm, error)
}

var _ ControllerInterface = (*Controller)(nil)
