package config

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load()

	s.Require().NoError(err)
	s.Equal(EnvDevelopment, cfg.Env)
	s.Equal([]string{"Toby", "Adam", "Ben", "Brad"}, cfg.Players)
	s.Equal(1500, cfg.StartingCash)
	s.Equal(1000, cfg.MaxTurns)
	s.Equal(1, cfg.Games)
	s.Equal(3, cfg.ImprovementFloor)
	s.False(cfg.RedisEnabled())
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("LANDLORD_PLAYERS", "Ann,Bo")
	s.T().Setenv("LANDLORD_SEED", "42")
	s.T().Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()

	s.Require().NoError(err)
	s.Equal([]string{"Ann", "Bo"}, cfg.Players)
	s.Equal(int64(42), cfg.Seed)
	s.True(cfg.RedisEnabled())
}

func (s *ConfigTestSuite) TestParseError() {
	s.T().Setenv("LANDLORD_MAX_TURNS", "forever")

	_, err := Load()

	s.ErrorContains(err, "parse env:")
}

func (s *ConfigTestSuite) TestValidation() {
	s.T().Setenv("LANDLORD_PLAYERS", "Solo")

	_, err := Load()

	s.ErrorContains(err, "at least two")
}

func (s *ConfigTestSuite) TestNewLogger() {
	cfg := &Config{Env: EnvProduction}

	logger, err := cfg.NewLogger()

	s.Require().NoError(err)
	s.NotNil(logger)
}
