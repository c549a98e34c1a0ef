package simulator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/models"
	gameService "github.com/KirkDiggler/landlord/internal/services/game"
)

// Config holds configuration for the runner
type Config struct {
	GameService gameService.Service
	Players     []string
	Logger      *zap.Logger
}

// Runner plays batches of games
type Runner struct {
	games   gameService.Service
	players []string
	logger  *zap.Logger
}

// NewRunner creates a new runner
func NewRunner(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if len(cfg.Players) < 2 {
		return nil, errors.New("at least two players are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		games:   cfg.GameService,
		players: cfg.Players,
		logger:  logger,
	}, nil
}

// RunInput contains parameters for a batch
type RunInput struct {
	// Games is how many games to play
	Games int

	// Players overrides the configured roster when set
	Players []string
}

// RunOutput summarizes a batch
type RunOutput struct {
	Reports    []*models.GameReport `json:"reports"`
	Wins       map[string]int       `json:"wins"`
	Stalemates int                  `json:"stalemates"`
}

// Run plays the requested number of games one after another
func (r *Runner) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil || input.Games < 1 {
		return nil, errors.New("at least one game is required")
	}

	players := r.players
	if len(input.Players) > 0 {
		players = input.Players
	}

	output := &RunOutput{
		Reports: make([]*models.GameReport, 0, input.Games),
		Wins:    make(map[string]int),
	}

	for i := 0; i < input.Games; i++ {
		created, err := r.games.NewGame(ctx, &gameService.NewGameInput{PlayerNames: players})
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		played, err := r.games.Play(ctx, &gameService.PlayInput{Game: created.Game})
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		report := played.Report
		output.Reports = append(output.Reports, report)
		if report.Winner != "" {
			output.Wins[report.Winner]++
		} else {
			output.Stalemates++
		}

		r.logger.Info("game played",
			zap.Int("game", i+1),
			zap.String("game_id", report.GameID),
			zap.String("winner", report.Winner),
			zap.Int("turns", report.Turns),
		)
	}

	return output, nil
}
