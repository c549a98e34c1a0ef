package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) report(id string, completedAt time.Time, winner string) *models.GameReport {
	return &models.GameReport{
		GameID: id,
		Status: models.GameStatusCompleted,
		Turns:  120,
		Winner: winner,
		Standings: []models.Standing{
			{Name: "Toby", Cash: 900, Status: models.PlayerStatusActive, Properties: 14},
			{Name: "Adam", Cash: 0, Status: models.PlayerStatusLost, Properties: 14, Mortgaged: 6},
		},
		Properties: []models.PropertyReport{
			{ID: 1, Name: "Mediterranean Avenue", Group: "purple", Owner: "Toby", Landings: 4, Net: 8, ReturnPerEvent: 2.5},
			{ID: 39, Name: "Boardwalk", Group: "blue", Owner: "Adam", Landings: 3, Net: 100, ReturnPerEvent: 1.5},
		},
		CompletedAt: completedAt,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetReport() {
	report := s.report("game-1", s.testNow, "Toby")

	err := s.repo.SaveReport(s.ctx, &SaveReportInput{Report: report})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetReport(s.ctx, &GetReportInput{GameID: "game-1"})
	s.Require().NoError(err)
	s.Equal(report, retrieved)
}

func (s *RedisRepositoryTestSuite) TestGetReportNotFound() {
	_, err := s.repo.GetReport(s.ctx, &GetReportInput{GameID: "missing"})
	s.Equal(ErrReportNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSaveReportValidation() {
	err := s.repo.SaveReport(s.ctx, &SaveReportInput{})
	s.Error(err)

	err = s.repo.SaveReport(s.ctx, &SaveReportInput{Report: &models.GameReport{}})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestListRecentReportsNewestFirst() {
	for i, id := range []string{"game-1", "game-2", "game-3"} {
		completed := s.testNow.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report(id, completed, "Toby")}))
	}

	output, err := s.repo.ListRecentReports(s.ctx, &ListRecentReportsInput{Limit: 2})
	s.Require().NoError(err)

	s.Require().Len(output.Reports, 2)
	s.Equal("game-3", output.Reports[0].GameID)
	s.Equal("game-2", output.Reports[1].GameID)
}

func (s *RedisRepositoryTestSuite) TestListRecentReportsSkipsMissing() {
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-1", s.testNow, "")}))
	s.mr.Del(reportKey("game-1"))

	output, err := s.repo.ListRecentReports(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(output.Reports)
}

func (s *RedisRepositoryTestSuite) TestListRecentReportsEmpty() {
	output, err := s.repo.ListRecentReports(s.ctx, &ListRecentReportsInput{})
	s.Require().NoError(err)
	s.Empty(output.Reports)
}

func (s *RedisRepositoryTestSuite) TestPropertyTotalsAccumulate() {
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-1", s.testNow, "Toby")}))
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-2", s.testNow.Add(time.Minute), "Adam")}))

	output, err := s.repo.GetPropertyTotals(s.ctx, &GetPropertyTotalsInput{PropertyIDs: []int{1, 39, 5}})
	s.Require().NoError(err)

	s.Require().Len(output.Totals, 3)
	s.Equal(PropertyTotals{PropertyID: 1, Games: 2, Landings: 8, Net: 16, ReturnPerEventSum: 5}, output.Totals[0])
	s.Equal(PropertyTotals{PropertyID: 39, Games: 2, Landings: 6, Net: 200, ReturnPerEventSum: 3}, output.Totals[1])
	s.Equal(PropertyTotals{PropertyID: 5}, output.Totals[2])
	s.Equal(2.5, output.Totals[0].AverageReturnPerEvent())
	s.Zero(output.Totals[2].AverageReturnPerEvent())
}

func (s *RedisRepositoryTestSuite) TestResavingDoesNotDoubleCount() {
	report := s.report("game-1", s.testNow, "Toby")
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: report}))
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: report}))

	output, err := s.repo.GetPropertyTotals(s.ctx, &GetPropertyTotalsInput{PropertyIDs: []int{1}})
	s.Require().NoError(err)
	s.Equal(int64(1), output.Totals[0].Games)

	wins, err := s.repo.GetWinCounts(s.ctx, &GetWinCountsInput{})
	s.Require().NoError(err)
	s.Equal(map[string]int64{"Toby": 1}, wins.Wins)
}

func (s *RedisRepositoryTestSuite) TestWinCounts() {
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-1", s.testNow, "Toby")}))
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-2", s.testNow, "Toby")}))
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-3", s.testNow, "Adam")}))
	s.Require().NoError(s.repo.SaveReport(s.ctx, &SaveReportInput{Report: s.report("game-4", s.testNow, "")}))

	output, err := s.repo.GetWinCounts(s.ctx, &GetWinCountsInput{})
	s.Require().NoError(err)
	s.Equal(map[string]int64{"Toby": 2, "Adam": 1}, output.Wins)
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}
