package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/common/clock"
	"github.com/KirkDiggler/landlord/internal/common/uuid"
	"github.com/KirkDiggler/landlord/internal/config"
	"github.com/KirkDiggler/landlord/internal/dice"
	"github.com/KirkDiggler/landlord/internal/repositories/simulation"
	gameService "github.com/KirkDiggler/landlord/internal/services/game"
	"github.com/KirkDiggler/landlord/internal/services/liquidation"
	"github.com/KirkDiggler/landlord/internal/services/performance"
	"github.com/KirkDiggler/landlord/internal/services/rent"
	reportService "github.com/KirkDiggler/landlord/internal/services/report"
	"github.com/KirkDiggler/landlord/internal/services/valuation"
)

// Dependencies is everything a running simulator holds
type Dependencies struct {
	GameService gameService.Service
	Reporter    reportService.Service

	// Repository and RedisClient are nil when persistence is disabled
	Repository  simulation.Repository
	RedisClient *redis.Client
}

// Close releases the Redis connection if there is one
func (d *Dependencies) Close() error {
	if d.RedisClient == nil {
		return nil
	}
	return d.RedisClient.Close()
}

// Build wires the rules services, the game service and the optional repository
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Reporter: reportService.New(),
	}

	if cfg.RedisEnabled() {
		deps.RedisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := deps.RedisClient.Ping(pingCtx).Err(); err != nil {
			deps.RedisClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := simulation.NewRedis(&simulation.Config{
			RedisClient: deps.RedisClient,
		})
		if err != nil {
			deps.RedisClient.Close()
			return nil, fmt.Errorf("failed to create simulation repository: %w", err)
		}
		deps.Repository = repo
	}

	liquidator, err := liquidation.New(&liquidation.Config{
		Valuation:        valuation.New(),
		ImprovementFloor: cfg.ImprovementFloor,
		Logger:           logger.Named("liquidation"),
	})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create liquidation engine: %w", err)
	}

	deps.GameService, err = gameService.New(&gameService.Config{
		StartingCash:  cfg.StartingCash,
		MaxTurns:      cfg.MaxTurns,
		Rent:          rent.New(),
		Tracker:       performance.New(),
		Liquidation:   liquidator,
		Reporter:      deps.Reporter,
		Repository:    deps.Repository,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Seed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger.Named("game"),
	})
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return deps, nil
}
