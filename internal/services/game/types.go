package game

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/common/clock"
	"github.com/KirkDiggler/landlord/internal/common/uuid"
	"github.com/KirkDiggler/landlord/internal/dice"
	"github.com/KirkDiggler/landlord/internal/models"
	simulationRepo "github.com/KirkDiggler/landlord/internal/repositories/simulation"
	"github.com/KirkDiggler/landlord/internal/services/liquidation"
	"github.com/KirkDiggler/landlord/internal/services/performance"
	"github.com/KirkDiggler/landlord/internal/services/rent"
	"github.com/KirkDiggler/landlord/internal/services/report"
)

// DefaultMaxTurns caps a game that never produces a winner
const DefaultMaxTurns = 1000

// Config holds configuration for the game service
type Config struct {
	// Cash each player starts with
	StartingCash int

	// Turns after which an unfinished game ends in a stalemate
	MaxTurns int

	// Rules dependencies
	Rent        rent.Service
	Tracker     performance.Tracker
	Liquidation liquidation.Engine
	Reporter    report.Service

	// Repository is optional, finished games are only persisted when set
	Repository simulationRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional
	Logger *zap.Logger
}

// NewGameInput contains parameters for creating a new game
type NewGameInput struct {
	// PlayerNames is the roster in turn order
	PlayerNames []string

	// Squares overrides the standard board when set
	Squares []*models.Property
}

// NewGameOutput contains the result of creating a new game
type NewGameOutput struct {
	Game *models.Game
}

// DistributeInput contains the game to deal properties in
type DistributeInput struct {
	Game *models.Game
}

// DistributeOutput contains the property IDs dealt to each player
type DistributeOutput struct {
	Holdings map[string][]int
}

// PlayTurnInput contains the game to advance
type PlayTurnInput struct {
	Game *models.Game
}

// PlayTurnOutput describes one turn
type PlayTurnOutput struct {
	// Player is the name of the player who moved
	Player string

	// Roll is the movement roll
	Roll models.Roll

	// From and To are the board positions before and after the move
	From int
	To   int

	// Owner is the player rent was owed to, empty when none was owed
	Owner string

	// RentDue is the assessed rent
	RentDue int

	// RentPaid is what actually changed hands
	RentPaid int

	// Liquidation is set when the player had to raise cash
	Liquidation *liquidation.ResolveShortfallOutput

	// Bankrupt is true when the player could not cover the rent
	Bankrupt bool

	// Finished is true when this turn ended the game
	Finished bool

	// Report is set when the game finished on this turn
	Report *models.GameReport
}

// PlayInput contains the game to run
type PlayInput struct {
	Game *models.Game
}

// PlayOutput contains the finished game
type PlayOutput struct {
	Game   *models.Game
	Report *models.GameReport
}

// CheckForWinnerInput contains the game to check
type CheckForWinnerInput struct {
	Game *models.Game
}

// CheckForWinnerOutput contains the result of the check
type CheckForWinnerOutput struct {
	// Finished is true when at most one player is left
	Finished bool

	// Winner is the last player standing
	Winner string
}
