package report

import (
	"github.com/KirkDiggler/landlord/internal/models"
)

// AnalyzeBoardInput contains the squares to analyze
type AnalyzeBoardInput struct {
	Squares []*models.Property
}

// PropertyRatios is the rent earned per unit of capital at each tier
type PropertyRatios struct {
	ID     int                       `json:"id"`
	Name   string                    `json:"name"`
	Ratios [models.RentTiers]float64 `json:"ratios"`
}

// GroupAnalysis describes the economics of one street group
type GroupAnalysis struct {
	// Group is the group ID
	Group string `json:"group"`

	// OwnershipCost is the combined purchase price of the group
	OwnershipCost int `json:"ownershipCost"`

	// ImprovementSetCost is the price of one improvement on every property in the group
	ImprovementSetCost int `json:"improvementSetCost"`

	// Properties holds the ratios in board order
	Properties []PropertyRatios `json:"properties"`
}

// AnalyzeBoardOutput contains the result of a board analysis
type AnalyzeBoardOutput struct {
	// Groups are ordered by the position of their first property
	Groups []GroupAnalysis `json:"groups"`
}

// BuildReportInput contains the game to report on
type BuildReportInput struct {
	Game *models.Game
}

// BuildReportOutput contains the finished report
type BuildReportOutput struct {
	Report *models.GameReport
}
