package liquidation

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/KirkDiggler/landlord/internal/services/valuation"
)

// DefaultImprovementFloor is the improvement level stage three shaves down to
const DefaultImprovementFloor = 3

// Stage identifies a step of the liquidation pipeline
type Stage string

const (
	// StageUtilities mortgages utilities
	StageUtilities Stage = "mortgage_utilities"

	// StageIncompleteGroups mortgages properties outside complete groups
	StageIncompleteGroups Stage = "mortgage_incomplete_groups"

	// StageImprovements removes improvements from over-built groups
	StageImprovements Stage = "shave_improvements"
)

// ActionKind is what was done to a property
type ActionKind string

const (
	// ActionMortgage indicates a property was mortgaged
	ActionMortgage ActionKind = "mortgage"

	// ActionShave indicates a single improvement was removed
	ActionShave ActionKind = "shave"
)

// Config holds configuration for the liquidation engine
type Config struct {
	// Valuation builds value maps and scores candidates
	Valuation valuation.Service

	// ImprovementFloor is the level stage three will not shave below
	ImprovementFloor int

	// Logger is optional
	Logger *zap.Logger
}

// ResolveShortfallInput contains parameters for covering a debt
type ResolveShortfallInput struct {
	// Player is the debtor
	Player *models.Player

	// Debt is the amount the player must still raise
	Debt int

	// Improvements is the board's improvement registry
	Improvements *models.ImprovementRegistry
}

// Action records one liquidation step
type Action struct {
	Stage      Stage
	Kind       ActionKind
	PropertyID int
	Amount     int
}

// ResolveShortfallOutput contains the result of the liquidation
type ResolveShortfallOutput struct {
	// RemainingDebt is what is left to cover, negative when the last step overshot
	RemainingDebt int

	// Raised is the cash credited to the player
	Raised int

	// Actions lists every step in the order taken
	Actions []Action

	// Bankrupt is true when every stage ran and the debt is still open
	Bankrupt bool
}

// Err returns ErrLiquidationExhausted for a bankrupt outcome
func (o *ResolveShortfallOutput) Err() error {
	if o.Bankrupt {
		return ErrLiquidationExhausted
	}
	return nil
}
