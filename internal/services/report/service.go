package report

import (
	"github.com/KirkDiggler/landlord/internal/models"
)

// service implements the Service interface
type service struct{}

// New creates a new report service
func New() *service {
	return &service{}
}

// AnalyzeBoard groups the streets and divides each tier's rent by the capital tied up at that tier
func (s *service) AnalyzeBoard(input *AnalyzeBoardInput) (*AnalyzeBoardOutput, error) {
	if input == nil || len(input.Squares) == 0 {
		return nil, ErrNoSquares
	}

	order := make([]string, 0)
	groups := make(map[string][]*models.Property)
	for _, sq := range input.Squares {
		if sq.Kind != models.PropertyKindStreet || sq.Street == nil {
			continue
		}
		if _, ok := groups[sq.Group]; !ok {
			order = append(order, sq.Group)
		}
		groups[sq.Group] = append(groups[sq.Group], sq)
	}

	output := &AnalyzeBoardOutput{Groups: make([]GroupAnalysis, 0, len(order))}
	for _, id := range order {
		output.Groups = append(output.Groups, analyzeGroup(id, groups[id]))
	}
	return output, nil
}

func analyzeGroup(id string, props []*models.Property) GroupAnalysis {
	analysis := GroupAnalysis{
		Group:              id,
		ImprovementSetCost: props[0].Street.ImprovementCost * len(props),
		Properties:         make([]PropertyRatios, 0, len(props)),
	}
	for _, prop := range props {
		analysis.OwnershipCost += prop.Cost
	}

	for _, prop := range props {
		ratios := PropertyRatios{ID: prop.ID, Name: prop.Name}
		for tier := 0; tier < models.RentTiers; tier++ {
			capital := analysis.OwnershipCost + tier*analysis.ImprovementSetCost
			if capital == 0 {
				continue
			}
			earned := prop.Street.Rent[tier]
			if tier == 0 {
				// an unimproved monopoly doubles base rent
				earned *= 2
			}
			ratios.Ratios[tier] = float64(earned) / float64(capital)
		}
		analysis.Properties = append(analysis.Properties, ratios)
	}
	return analysis
}

// BuildReport snapshots the board into a report
func (s *service) BuildReport(input *BuildReportInput) (*BuildReportOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilGame
	}
	game := input.Game
	if game.Board == nil {
		return nil, ErrNilBoard
	}

	report := &models.GameReport{
		GameID:      game.ID,
		Status:      game.Status,
		Turns:       game.Turn,
		Winner:      game.WinnerName,
		Standings:   make([]models.Standing, 0, len(game.Board.Players)),
		Properties:  make([]models.PropertyReport, 0, len(game.Board.Squares)),
		CompletedAt: game.UpdatedAt,
	}

	owners := make(map[int]string)
	for _, player := range game.Board.Players {
		standing := models.Standing{
			Name:       player.Name,
			Cash:       player.Cash,
			Status:     player.Status,
			Properties: len(player.Properties),
		}
		for _, prop := range player.Properties {
			owners[prop.ID] = player.Name
			if prop.Mortgaged {
				standing.Mortgaged++
			}
		}
		report.Standings = append(report.Standings, standing)
	}

	for _, prop := range game.Board.Ownable() {
		perf := prop.Performance
		report.Properties = append(report.Properties, models.PropertyReport{
			ID:                  prop.ID,
			Name:                prop.Name,
			Group:               prop.Group,
			Owner:               owners[prop.ID],
			Mortgaged:           prop.Mortgaged,
			Improvements:        game.Board.Improvements.Count(prop.ID),
			Landings:            perf.Landings,
			Net:                 perf.Net,
			ReturnPerEvent:      perf.ReturnPerEvent,
			RiskAdjustedReturn:  perf.RiskAdjustedReturn,
			RiskAdjustedDefined: perf.RiskAdjustedDefined,
		})
	}

	return &BuildReportOutput{Report: report}, nil
}
