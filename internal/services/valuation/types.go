package valuation

import (
	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/KirkDiggler/landlord/internal/services/rent"
)

// MapKind selects which valuation BuildValueMap produces
type MapKind string

const (
	// MapKindMortgage values each property at its mortgage proceeds
	MapKindMortgage MapKind = "mortgage"

	// MapKindRent values each property at the rent it currently commands
	MapKindRent MapKind = "rent"

	// MapKindImprovements lists complete groups with their improvement levels
	MapKindImprovements MapKind = "improvements"
)

// ExpectedRoll is the mean of two six-sided dice, used to value utilities
const ExpectedRoll = 7

// ValueMap maps a property ID to a value
type ValueMap map[int]float64

// ImprovementGroup is a complete street group and what its improvements are worth
type ImprovementGroup struct {
	// Group is the group ID
	Group string

	// Levels maps each property ID in the group to its improvement count
	Levels map[int]int

	// ImprovementCost is the price of a single improvement in the group
	ImprovementCost int

	// ShaveValue is the cash raised by removing one improvement
	ShaveValue int
}

// BuildValueMapInput contains parameters for building a value map
type BuildValueMapInput struct {
	// Player owns the holdings being valued
	Player *models.Player

	// Kind selects the valuation
	Kind MapKind

	// Improvements reports houses and hotels, may be nil when nothing is built
	Improvements rent.ImprovementCounter
}

// BuildValueMapOutput contains the valuation
type BuildValueMapOutput struct {
	// Values is set for MapKindMortgage and MapKindRent
	Values ValueMap

	// Groups is set for MapKindImprovements, cheapest ShaveValue first
	Groups []ImprovementGroup
}

// ScorePropertyInput contains parameters for scoring a liquidation candidate
type ScorePropertyInput struct {
	// Property is the candidate
	Property *models.Property

	// Player owns the candidate and the rest of the portfolio
	Player *models.Player

	// Values is the valuation used to weigh the other holdings
	Values ValueMap
}

// ScorePropertyOutput contains the opportunity cost score
type ScorePropertyOutput struct {
	// Score is the footprint-weighted average value of the other holdings
	Score float64
}
