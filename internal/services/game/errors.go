package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilGame             GameError = "game cannot be nil"
	ErrInvalidGameState    GameError = "invalid game state"
	ErrNotEnoughPlayers    GameError = "a game needs at least two players"
	ErrEmptyPlayerName     GameError = "player name cannot be empty"
	ErrDuplicatePlayerName GameError = "player name already taken"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilRentService      GameError = "rent service cannot be nil"
	ErrNilTracker          GameError = "performance tracker cannot be nil"
	ErrNilLiquidation      GameError = "liquidation engine cannot be nil"
	ErrNilReporter         GameError = "report service cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
)
