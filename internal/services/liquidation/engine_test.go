package liquidation

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/landlord/internal/board"
	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/KirkDiggler/landlord/internal/services/valuation"
	"github.com/KirkDiggler/landlord/internal/services/valuation/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type LiquidationEngineTestSuite struct {
	suite.Suite
	engine       Engine
	squares      []*models.Property
	improvements *models.ImprovementRegistry
	player       *models.Player
}

func (s *LiquidationEngineTestSuite) SetupTest() {
	squares, err := board.Standard()
	s.Require().NoError(err)
	s.squares = squares
	s.improvements = models.NewImprovementRegistry()
	s.player = &models.Player{Name: "Toby", Status: models.PlayerStatusActive}

	s.engine, err = New(&Config{
		Valuation:        valuation.New(),
		ImprovementFloor: DefaultImprovementFloor,
		Logger:           zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
}

func TestLiquidationEngineTestSuite(t *testing.T) {
	suite.Run(t, new(LiquidationEngineTestSuite))
}

func (s *LiquidationEngineTestSuite) give(ids ...int) {
	for _, id := range ids {
		s.Require().NoError(s.player.AddProperty(s.squares[id]))
	}
}

func (s *LiquidationEngineTestSuite) resolve(debt int) *ResolveShortfallOutput {
	output, err := s.engine.ResolveShortfall(&ResolveShortfallInput{
		Player:       s.player,
		Debt:         debt,
		Improvements: s.improvements,
	})
	s.Require().NoError(err)
	return output
}

func (s *LiquidationEngineTestSuite) TestUtilityThenExhausted() {
	s.give(12)

	output := s.resolve(80)

	s.Equal([]Action{
		{Stage: StageUtilities, Kind: ActionMortgage, PropertyID: 12, Amount: 75},
	}, output.Actions)
	s.Equal(5, output.RemainingDebt)
	s.Equal(75, output.Raised)
	s.True(output.Bankrupt)
	s.Equal(ErrLiquidationExhausted, output.Err())
	s.Equal(75, s.player.Cash)
	s.True(s.player.HasLost())
	s.True(s.squares[12].Mortgaged)
}

func (s *LiquidationEngineTestSuite) TestUtilitySkippedWhenItWouldOverpay() {
	s.give(12)

	output := s.resolve(50)

	// the lone utility is still an incomplete group, so stage two takes it
	s.Equal([]Action{
		{Stage: StageIncompleteGroups, Kind: ActionMortgage, PropertyID: 12, Amount: 75},
	}, output.Actions)
	s.Equal(-25, output.RemainingDebt)
	s.False(output.Bankrupt)
	s.NoError(output.Err())
	s.Equal(models.PlayerStatusActive, s.player.Status)
}

func (s *LiquidationEngineTestSuite) TestLowestOpportunityCostMortgagedFirst() {
	// Mediterranean, Reading Railroad and Boardwalk are each an incomplete group
	s.give(1, 5, 39)

	output := s.resolve(250)

	s.Require().Len(output.Actions, 2)
	s.Equal(39, output.Actions[0].PropertyID)
	s.Equal(5, output.Actions[1].PropertyID)
	s.Equal(-50, output.RemainingDebt)
	s.False(s.squares[1].Mortgaged)

	last := output.Actions[len(output.Actions)-1]
	s.LessOrEqual(-output.RemainingDebt, last.Amount)
}

func (s *LiquidationEngineTestSuite) TestCompleteGroupsAreNotMortgaged() {
	s.give(1, 3)
	s.Require().NoError(s.improvements.Set(1, 4))
	s.Require().NoError(s.improvements.Set(3, 5))

	output := s.resolve(60)

	s.Equal([]Action{
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 3, Amount: 25},
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 1, Amount: 25},
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 3, Amount: 25},
	}, output.Actions)
	s.Equal(-15, output.RemainingDebt)
	s.Equal(3, s.improvements.Count(1))
	s.Equal(3, s.improvements.Count(3))
	s.False(s.squares[1].Mortgaged)
	s.False(s.squares[3].Mortgaged)
}

func (s *LiquidationEngineTestSuite) TestShavingStopsAtFloor() {
	s.give(1, 3)
	s.Require().NoError(s.improvements.Set(1, 4))
	s.Require().NoError(s.improvements.Set(3, 4))

	output := s.resolve(1000)

	s.Len(output.Actions, 2)
	s.Equal(950, output.RemainingDebt)
	s.True(output.Bankrupt)
	s.Equal(3, s.improvements.Count(1))
	s.Equal(3, s.improvements.Count(3))
}

func (s *LiquidationEngineTestSuite) TestCheapestGroupShavedFirst() {
	s.give(1, 3, 31, 32, 34)
	s.Require().NoError(s.improvements.Set(3, 5))
	s.Require().NoError(s.improvements.Set(34, 5))

	output := s.resolve(150)

	s.Equal([]Action{
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 3, Amount: 25},
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 3, Amount: 25},
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 34, Amount: 100},
	}, output.Actions)
	s.Zero(output.RemainingDebt)
	s.False(output.Bankrupt)
	s.Equal(3, s.improvements.Count(3))
	s.Equal(4, s.improvements.Count(34))
}

func (s *LiquidationEngineTestSuite) TestStagesRunInOrder() {
	s.give(12, 5, 1, 3)
	s.Require().NoError(s.improvements.Set(3, 4))
	s.player.Cash = 10

	output := s.resolve(200)

	s.Equal([]Action{
		{Stage: StageUtilities, Kind: ActionMortgage, PropertyID: 12, Amount: 75},
		{Stage: StageIncompleteGroups, Kind: ActionMortgage, PropertyID: 5, Amount: 100},
		{Stage: StageImprovements, Kind: ActionShave, PropertyID: 3, Amount: 25},
	}, output.Actions)
	s.Zero(output.RemainingDebt)
	s.Equal(200, output.Raised)
	s.Equal(210, s.player.Cash)
}

func (s *LiquidationEngineTestSuite) TestNeverMortgagesTwice() {
	s.give(12)
	_, err := s.squares[12].Mortgage()
	s.Require().NoError(err)

	output := s.resolve(80)

	s.Empty(output.Actions)
	s.Zero(output.Raised)
	s.Equal(80, output.RemainingDebt)
	s.True(output.Bankrupt)
}

func (s *LiquidationEngineTestSuite) TestZeroDebt() {
	s.give(12)

	output := s.resolve(0)

	s.Empty(output.Actions)
	s.False(output.Bankrupt)
	s.False(s.squares[12].Mortgaged)
}

func (s *LiquidationEngineTestSuite) TestValuationErrorPropagates() {
	ctrl := gomock.NewController(s.T())
	mockValuation := mocks.NewMockService(ctrl)
	engine, err := New(&Config{Valuation: mockValuation, ImprovementFloor: DefaultImprovementFloor})
	s.Require().NoError(err)

	boom := errors.New("boom")
	mockValuation.EXPECT().
		BuildValueMap(gomock.Any()).
		Return(nil, boom)

	s.give(1)
	_, err = engine.ResolveShortfall(&ResolveShortfallInput{
		Player:       s.player,
		Debt:         10,
		Improvements: s.improvements,
	})

	s.ErrorIs(err, boom)
	s.Zero(s.player.Cash)
}

func (s *LiquidationEngineTestSuite) TestInputValidation() {
	_, err := s.engine.ResolveShortfall(&ResolveShortfallInput{Improvements: s.improvements})
	s.Equal(ErrNilPlayer, err)

	_, err = s.engine.ResolveShortfall(&ResolveShortfallInput{Player: s.player})
	s.Equal(ErrNilImprovements, err)

	_, err = s.engine.ResolveShortfall(&ResolveShortfallInput{Player: s.player, Improvements: s.improvements, Debt: -1})
	s.Equal(ErrNegativeDebt, err)
}

func (s *LiquidationEngineTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilValuation, err)

	_, err = New(&Config{Valuation: valuation.New(), ImprovementFloor: 6})
	s.Equal(ErrImprovementFloor, err)
}
