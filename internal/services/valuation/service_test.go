package valuation

import (
	"testing"

	"github.com/KirkDiggler/landlord/internal/board"
	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/stretchr/testify/suite"
)

type ValuationServiceTestSuite struct {
	suite.Suite
	service      Service
	squares      []*models.Property
	improvements *models.ImprovementRegistry
	player       *models.Player
}

func (s *ValuationServiceTestSuite) SetupTest() {
	squares, err := board.Standard()
	s.Require().NoError(err)
	s.squares = squares
	s.improvements = models.NewImprovementRegistry()
	s.service = New()
	s.player = &models.Player{Name: "Toby", Status: models.PlayerStatusActive}
}

func TestValuationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}

func (s *ValuationServiceTestSuite) give(ids ...int) {
	for _, id := range ids {
		s.Require().NoError(s.player.AddProperty(s.squares[id]))
	}
}

func (s *ValuationServiceTestSuite) build(kind MapKind) *BuildValueMapOutput {
	output, err := s.service.BuildValueMap(&BuildValueMapInput{
		Player:       s.player,
		Kind:         kind,
		Improvements: s.improvements,
	})
	s.Require().NoError(err)
	return output
}

// BuildValueMap Tests

func (s *ValuationServiceTestSuite) TestMortgageMap() {
	s.give(1, 5, 12, 39)

	output := s.build(MapKindMortgage)

	s.Equal(ValueMap{1: 30, 5: 100, 12: 75, 39: 200}, output.Values)
	s.Nil(output.Groups)
}

func (s *ValuationServiceTestSuite) TestRentMap() {
	// complete light-blue with improvements on Vermont, partial pink, two railroads, one utility
	s.give(6, 8, 9, 11, 5, 15, 12)
	s.Require().NoError(s.improvements.Set(8, 2))

	output := s.build(MapKindRent)

	s.Equal(12.0, output.Values[6])
	s.Equal(90.0, output.Values[8])
	s.Equal(16.0, output.Values[9])
	s.Equal(10.0, output.Values[11])
	s.Equal(50.0, output.Values[5])
	s.Equal(50.0, output.Values[15])
	s.Equal(28.0, output.Values[12])
}

func (s *ValuationServiceTestSuite) TestRentMapBothUtilities() {
	s.give(12, 28)

	output := s.build(MapKindRent)

	s.Equal(70.0, output.Values[12])
	s.Equal(70.0, output.Values[28])
}

func (s *ValuationServiceTestSuite) TestRentMapMortgagedEarnsNothing() {
	s.give(37, 39)
	_, err := s.squares[39].Mortgage()
	s.Require().NoError(err)

	output := s.build(MapKindRent)

	s.Equal(70.0, output.Values[37])
	s.Zero(output.Values[39])
}

func (s *ValuationServiceTestSuite) TestImprovementGroupsSortedByShaveValue() {
	// green (improvement cost 200), light-blue (50), pink incomplete
	s.give(31, 32, 34, 6, 8, 9, 11, 13)
	s.Require().NoError(s.improvements.Set(31, 4))
	s.Require().NoError(s.improvements.Set(6, 5))

	output := s.build(MapKindImprovements)

	s.Require().Len(output.Groups, 2)
	s.Equal("light-blue", output.Groups[0].Group)
	s.Equal(25, output.Groups[0].ShaveValue)
	s.Equal(map[int]int{6: 5, 8: 0, 9: 0}, output.Groups[0].Levels)
	s.Equal("green", output.Groups[1].Group)
	s.Equal(100, output.Groups[1].ShaveValue)
	s.Equal(map[int]int{31: 4, 32: 0, 34: 0}, output.Groups[1].Levels)
}

func (s *ValuationServiceTestSuite) TestImprovementGroupsSkipRailroads() {
	s.give(5, 15, 25, 35)

	output := s.build(MapKindImprovements)

	s.Empty(output.Groups)
}

func (s *ValuationServiceTestSuite) TestUnknownKindIsEmpty() {
	s.give(1, 3)

	output := s.build("appraisal")

	s.Empty(output.Values)
	s.Empty(output.Groups)
}

func (s *ValuationServiceTestSuite) TestBuildValueMap_NilPlayer() {
	_, err := s.service.BuildValueMap(&BuildValueMapInput{Kind: MapKindRent})
	s.Equal(ErrNilPlayer, err)
}

// ScoreProperty Tests

func (s *ValuationServiceTestSuite) TestScoreProperty() {
	s.give(1, 3, 5)
	values := s.build(MapKindMortgage).Values

	output, err := s.service.ScoreProperty(&ScorePropertyInput{
		Property: s.squares[1],
		Player:   s.player,
		Values:   values,
	})

	s.Require().NoError(err)
	s.InDelta((30*2.16+100*2.96)/(2.16+2.96), output.Score, 1e-9)
}

func (s *ValuationServiceTestSuite) TestScorePropertyIgnoresOrder() {
	s.give(1, 3, 5, 12, 39, 24)
	values := s.build(MapKindMortgage).Values

	forward, err := s.service.ScoreProperty(&ScorePropertyInput{
		Property: s.squares[3],
		Player:   s.player,
		Values:   values,
	})
	s.Require().NoError(err)

	reversed := &models.Player{Name: s.player.Name}
	for i := len(s.player.Properties) - 1; i >= 0; i-- {
		s.Require().NoError(reversed.AddProperty(s.player.Properties[i]))
	}

	backward, err := s.service.ScoreProperty(&ScorePropertyInput{
		Property: s.squares[3],
		Player:   reversed,
		Values:   values,
	})
	s.Require().NoError(err)

	s.Equal(forward.Score, backward.Score)
}

func (s *ValuationServiceTestSuite) TestScorePropertySingleton() {
	s.give(12)
	values := s.build(MapKindMortgage).Values

	_, err := s.service.ScoreProperty(&ScorePropertyInput{
		Property: s.squares[12],
		Player:   s.player,
		Values:   values,
	})

	s.Equal(ErrUndefinedOpportunityCost, err)
}
