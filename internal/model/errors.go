package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound      = errors.New("game session not found")
	ErrGameAlreadyCompleted = errors.New("game already completed")
	ErrMaxGuessesReached    = errors.New("maximum guesses reached")
	ErrGameNotCompleted     = errors.New("game not yet completed")

	// Catalog errors
	ErrFirearmNotFound = errors.New("firearm not found")
	ErrFirearmExists   = errors.New("firearm already exists")
	ErrEmptyCatalog    = errors.New("no firearms available for game")
)
