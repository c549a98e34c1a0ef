package valuation

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/landlord/internal/services/valuation Service

// Service values a player's holdings for liquidation decisions
type Service interface {
	// BuildValueMap produces a grouped valuation of the player's holdings
	BuildValueMap(input *BuildValueMapInput) (*BuildValueMapOutput, error)

	// ScoreProperty measures the opportunity cost of giving up one property
	ScoreProperty(input *ScorePropertyInput) (*ScorePropertyOutput, error)
}
