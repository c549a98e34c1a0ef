package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
)

// Environments the logger understands
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds every setting read from the environment
type Config struct {
	Env string `env:"LANDLORD_ENV" envDefault:"development"`

	// Simulation
	Players          []string `env:"LANDLORD_PLAYERS" envDefault:"Toby,Adam,Ben,Brad" envSeparator:","`
	StartingCash     int      `env:"LANDLORD_STARTING_CASH" envDefault:"1500"`
	MaxTurns         int      `env:"LANDLORD_MAX_TURNS" envDefault:"1000"`
	Seed             int64    `env:"LANDLORD_SEED" envDefault:"0"`
	Games            int      `env:"LANDLORD_GAMES" envDefault:"1"`
	ImprovementFloor int      `env:"LANDLORD_IMPROVEMENT_FLOOR" envDefault:"3"`

	// Redis, persistence is disabled when the address is empty
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the simulation settings
func (c *Config) Validate() error {
	if len(c.Players) < 2 {
		return errors.New("LANDLORD_PLAYERS needs at least two names")
	}
	if c.StartingCash < 0 {
		return errors.New("LANDLORD_STARTING_CASH cannot be negative")
	}
	if c.MaxTurns < 1 {
		return errors.New("LANDLORD_MAX_TURNS must be positive")
	}
	if c.Games < 1 {
		return errors.New("LANDLORD_GAMES must be positive")
	}
	if c.ImprovementFloor < 0 || c.ImprovementFloor > 5 {
		return errors.New("LANDLORD_IMPROVEMENT_FLOOR must be between 0 and 5")
	}
	return nil
}

// RedisEnabled reports whether finished games should be persisted
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// NewLogger builds a zap logger for the configured environment
func (c *Config) NewLogger() (*zap.Logger, error) {
	if c.Env == EnvProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
