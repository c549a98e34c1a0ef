package report

import (
	"testing"
	"time"

	"github.com/KirkDiggler/landlord/internal/board"
	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	service Service
	squares []*models.Property
}

func (s *ReportServiceTestSuite) SetupTest() {
	squares, err := board.Standard()
	s.Require().NoError(err)
	s.squares = squares
	s.service = New()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) TestAnalyzeBoard() {
	output, err := s.service.AnalyzeBoard(&AnalyzeBoardInput{Squares: s.squares})
	s.Require().NoError(err)

	s.Require().Len(output.Groups, 8)
	s.Equal("purple", output.Groups[0].Group)
	s.Equal("blue", output.Groups[7].Group)

	purple := output.Groups[0]
	s.Equal(120, purple.OwnershipCost)
	s.Equal(100, purple.ImprovementSetCost)
	s.Require().Len(purple.Properties, 2)

	mediterranean := purple.Properties[0]
	s.Equal(1, mediterranean.ID)
	s.InDelta(4.0/120.0, mediterranean.Ratios[0], 1e-9)
	s.InDelta(10.0/220.0, mediterranean.Ratios[1], 1e-9)

	baltic := purple.Properties[1]
	s.InDelta(450.0/620.0, baltic.Ratios[5], 1e-9)
}

func (s *ReportServiceTestSuite) TestAnalyzeBoardSkipsNonStreets() {
	output, err := s.service.AnalyzeBoard(&AnalyzeBoardInput{Squares: s.squares})
	s.Require().NoError(err)

	for _, group := range output.Groups {
		s.NotEqual("railroad", group.Group)
		s.NotEqual("utility", group.Group)
	}
}

func (s *ReportServiceTestSuite) TestAnalyzeBoardEmpty() {
	_, err := s.service.AnalyzeBoard(&AnalyzeBoardInput{})
	s.Equal(ErrNoSquares, err)
}

func (s *ReportServiceTestSuite) TestBuildReport() {
	toby := &models.Player{Name: "Toby", Cash: 1400, Status: models.PlayerStatusActive}
	adam := &models.Player{Name: "Adam", Cash: 0, Status: models.PlayerStatusLost}
	s.Require().NoError(toby.AddProperty(s.squares[1]))
	s.Require().NoError(toby.AddProperty(s.squares[3]))
	s.Require().NoError(adam.AddProperty(s.squares[5]))
	_, err := s.squares[5].Mortgage()
	s.Require().NoError(err)

	b := models.NewBoard(s.squares, []*models.Player{toby, adam})
	s.Require().NoError(b.Improvements.Set(3, 2))
	s.squares[3].Performance = models.Performance{
		Landings:            2,
		Profits:             []int{4},
		Losses:              []int{0},
		Net:                 4,
		ReturnPerEvent:      2,
		RiskAdjustedReturn:  2,
		RiskAdjustedDefined: true,
	}

	finished := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	game := &models.Game{
		ID:         "game-1",
		Status:     models.GameStatusCompleted,
		Board:      b,
		Turn:       42,
		WinnerName: "Toby",
		UpdatedAt:  finished,
	}

	output, err := s.service.BuildReport(&BuildReportInput{Game: game})
	s.Require().NoError(err)

	report := output.Report
	s.Equal("game-1", report.GameID)
	s.Equal(models.GameStatusCompleted, report.Status)
	s.Equal(42, report.Turns)
	s.Equal("Toby", report.Winner)
	s.Equal(finished, report.CompletedAt)
	s.Equal([]models.Standing{
		{Name: "Toby", Cash: 1400, Status: models.PlayerStatusActive, Properties: 2},
		{Name: "Adam", Cash: 0, Status: models.PlayerStatusLost, Properties: 1, Mortgaged: 1},
	}, report.Standings)

	s.Len(report.Properties, 28)
	s.Equal(models.PropertyReport{
		ID:                  3,
		Name:                "Baltic Avenue",
		Group:               "purple",
		Owner:               "Toby",
		Improvements:        2,
		Landings:            2,
		Net:                 4,
		ReturnPerEvent:      2,
		RiskAdjustedReturn:  2,
		RiskAdjustedDefined: true,
	}, report.Properties[1])
	s.Equal("Adam", report.Properties[2].Owner)
	s.True(report.Properties[2].Mortgaged)
	s.Empty(report.Properties[3].Owner)
}

func (s *ReportServiceTestSuite) TestBuildReportNilGame() {
	_, err := s.service.BuildReport(&BuildReportInput{})
	s.Equal(ErrNilGame, err)

	_, err = s.service.BuildReport(&BuildReportInput{Game: &models.Game{ID: "empty"}})
	s.Equal(ErrNilBoard, err)
}
