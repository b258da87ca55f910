package model

import "time"

// SessionID uniquely identifies a game session
type SessionID string

// SessionState represents the current phase of a guessing session
type SessionState string

const (
	SessionStateOpen SessionState = "open" // Accepting guesses
	SessionStateWon  SessionState = "won"  // Terminal, target was guessed
	SessionStateLost SessionState = "lost" // Terminal, guesses exhausted
)

// GameSession is one player's guessing round against the daily target
type GameSession struct {
	ID SessionID

	// Target is a snapshot of the firearm chosen when the session started.
	// Later catalog edits do not affect in-flight sessions.
	Target Firearm

	// Guesses holds the resolved display names of guesses, in order
	Guesses []string

	// History holds one outcome per guess, in order
	History []GuessOutcome

	State      SessionState
	CreatedAt  time.Time
	MaxGuesses int
}

// IsCompleted returns true once the session has reached a terminal state
func (s *GameSession) IsCompleted() bool {
	return s.State != SessionStateOpen
}

// IsWon returns true if the target was guessed
func (s *GameSession) IsWon() bool {
	return s.State == SessionStateWon
}

// RemainingGuesses returns the number of guesses left
func (s *GameSession) RemainingGuesses() int {
	return s.MaxGuesses - len(s.Guesses)
}
