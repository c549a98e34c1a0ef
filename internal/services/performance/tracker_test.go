package performance

import (
	"testing"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/stretchr/testify/suite"
)

type TrackerTestSuite struct {
	suite.Suite
	tracker  Tracker
	property *models.Property
}

func (s *TrackerTestSuite) SetupTest() {
	s.tracker = New()
	s.property = &models.Property{
		ID:    1,
		Name:  "Mediterranean Avenue",
		Kind:  models.PropertyKindStreet,
		Group: "purple",
	}
}

func TestTrackerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) record(amount int, kind models.EventKind) *RecordEventOutput {
	output, err := s.tracker.RecordEvent(&RecordEventInput{
		Property: s.property,
		Amount:   amount,
		Kind:     kind,
	})
	s.Require().NoError(err)
	return output
}

func (s *TrackerTestSuite) TestSingleEventLeavesRiskUndefined() {
	output := s.record(4, models.EventKindProfit)

	s.Equal(1, output.Performance.Landings)
	s.Equal(4, output.Performance.Net)
	s.Equal(4.0, output.Performance.ReturnPerEvent)
	s.False(output.Performance.RiskAdjustedDefined)
	s.Zero(output.Performance.RiskAdjustedReturn)
}

func (s *TrackerTestSuite) TestProfitAndLoss() {
	s.record(0, models.EventKindLoss)
	output := s.record(4, models.EventKindProfit)

	// history {4, 0}: mean 2, population stdev 2
	s.Equal(2, output.Performance.Landings)
	s.Equal(4, output.Performance.Net)
	s.Equal(2.0, output.Performance.ReturnPerEvent)
	s.True(output.Performance.RiskAdjustedDefined)
	s.InDelta(2.0, output.Performance.RiskAdjustedReturn, 1e-9)
	s.Equal([]int{4}, s.property.Performance.Profits)
	s.Equal([]int{0}, s.property.Performance.Losses)
}

func (s *TrackerTestSuite) TestNetSubtractsLosses() {
	s.record(10, models.EventKindProfit)
	s.record(30, models.EventKindProfit)
	output := s.record(5, models.EventKindLoss)

	// history {10, 30, 5}: mean 15, variance (25+225+100)/3
	s.Equal(35, output.Performance.Net)
	s.InDelta(35.0/3.0, output.Performance.ReturnPerEvent, 1e-9)
	s.InDelta(35.0/10.801234497346433, output.Performance.RiskAdjustedReturn, 1e-9)
}

func (s *TrackerTestSuite) TestZeroSpreadLeavesRiskUndefined() {
	s.record(0, models.EventKindLoss)
	output := s.record(0, models.EventKindLoss)

	s.Equal(2, output.Performance.Landings)
	s.Zero(output.Performance.Net)
	s.False(output.Performance.RiskAdjustedDefined)
}

func (s *TrackerTestSuite) TestInvalidKind() {
	_, err := s.tracker.RecordEvent(&RecordEventInput{
		Property: s.property,
		Amount:   4,
		Kind:     "refund",
	})

	s.Equal(ErrInvalidEventKind, err)
	s.Zero(s.property.Performance.Landings)
}

func (s *TrackerTestSuite) TestNegativeAmount() {
	_, err := s.tracker.RecordEvent(&RecordEventInput{
		Property: s.property,
		Amount:   -1,
		Kind:     models.EventKindProfit,
	})

	s.Equal(ErrNegativeAmount, err)
}

func (s *TrackerTestSuite) TestNilProperty() {
	_, err := s.tracker.RecordEvent(&RecordEventInput{Kind: models.EventKindProfit})
	s.Equal(ErrNilProperty, err)
}
