package models

import (
	"time"
)

// GameStatus represents the current state of a simulated game
type GameStatus string

const (
	// GameStatusWaiting indicates properties have not been distributed yet
	GameStatusWaiting GameStatus = "waiting"

	// GameStatusActive indicates turns are being played
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a single player is left standing
	GameStatusCompleted GameStatus = "completed"

	// GameStatusStalemate indicates the turn limit was reached without a winner
	GameStatusStalemate GameStatus = "stalemate"
)

// IsFinished reports whether no more turns will be played
func (s GameStatus) IsFinished() bool {
	return s == GameStatusCompleted || s == GameStatusStalemate
}

// Game represents one simulated game
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current state of the game
	Status GameStatus

	// Board holds the squares, improvements and roster
	Board *Board

	// Turn counts the turns played so far
	Turn int

	// WinnerName is set once a single player remains
	WinnerName string

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}
