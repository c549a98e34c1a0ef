package game

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/landlord/internal/board"
	"github.com/KirkDiggler/landlord/internal/common/clock"
	"github.com/KirkDiggler/landlord/internal/common/uuid"
	"github.com/KirkDiggler/landlord/internal/dice"
	"github.com/KirkDiggler/landlord/internal/models"
	simulationRepo "github.com/KirkDiggler/landlord/internal/repositories/simulation"
	"github.com/KirkDiggler/landlord/internal/services/liquidation"
	"github.com/KirkDiggler/landlord/internal/services/performance"
	"github.com/KirkDiggler/landlord/internal/services/rent"
	"github.com/KirkDiggler/landlord/internal/services/report"
)

// service implements the Service interface
type service struct {
	startingCash int
	maxTurns     int

	rent        rent.Service
	tracker     performance.Tracker
	liquidation liquidation.Engine
	reporter    report.Service
	repository  simulationRepo.Repository

	diceRoller    dice.Roller
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Rent == nil {
		return nil, ErrNilRentService
	}

	if cfg.Tracker == nil {
		return nil, ErrNilTracker
	}

	if cfg.Liquidation == nil {
		return nil, ErrNilLiquidation
	}

	if cfg.Reporter == nil {
		return nil, ErrNilReporter
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	maxTurns := cfg.MaxTurns
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		startingCash:  cfg.StartingCash,
		maxTurns:      maxTurns,
		rent:          cfg.Rent,
		tracker:       cfg.Tracker,
		liquidation:   cfg.Liquidation,
		reporter:      cfg.Reporter,
		repository:    cfg.Repository,
		diceRoller:    cfg.DiceRoller,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// NewGame builds a board and a roster of players with the starting cash
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if input == nil || len(input.PlayerNames) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	seen := make(map[string]bool, len(input.PlayerNames))
	players := make([]*models.Player, 0, len(input.PlayerNames))
	for _, name := range input.PlayerNames {
		if name == "" {
			return nil, ErrEmptyPlayerName
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlayerName, name)
		}
		seen[name] = true

		players = append(players, &models.Player{
			Name:   name,
			Cash:   s.startingCash,
			Status: models.PlayerStatusActive,
		})
	}

	squares := input.Squares
	if squares == nil {
		var err error
		squares, err = board.Standard()
		if err != nil {
			return nil, fmt.Errorf("failed to load board: %w", err)
		}
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:        s.uuidGenerator.NewUUID(),
		Status:    models.GameStatusWaiting,
		Board:     models.NewBoard(squares, players),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.logger.Info("game created",
		zap.String("game_id", game.ID),
		zap.Strings("players", input.PlayerNames),
		zap.Int("starting_cash", s.startingCash),
	)

	return &NewGameOutput{
		Game: game,
	}, nil
}

// Distribute draws ownable squares at random and hands them out in turn order
func (s *service) Distribute(ctx context.Context, input *DistributeInput) (*DistributeOutput, error) {
	if input == nil || input.Game == nil || input.Game.Board == nil {
		return nil, ErrNilGame
	}

	game := input.Game
	if game.Status != models.GameStatusWaiting {
		return nil, ErrInvalidGameState
	}

	players := game.Board.Players
	holdings := make(map[string][]int, len(players))
	pool := game.Board.Ownable()

	for i := 0; len(pool) > 0; i++ {
		idx := s.diceRoller.Roll(len(pool)) - 1
		if idx < 0 || idx >= len(pool) {
			return nil, fmt.Errorf("dice roll %d outside pool of %d", idx+1, len(pool))
		}
		prop := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		player := players[i%len(players)]
		if err := player.AddProperty(prop); err != nil {
			return nil, fmt.Errorf("failed to give %s to %s: %w", prop.Name, player.Name, err)
		}
		holdings[player.Name] = append(holdings[player.Name], prop.ID)
	}

	game.Status = models.GameStatusActive
	game.UpdatedAt = s.clock.Now()

	s.logger.Debug("properties distributed", zap.String("game_id", game.ID))

	return &DistributeOutput{
		Holdings: holdings,
	}, nil
}

// PlayTurn moves the current player, records the squares passed and settles rent on the landing square
func (s *service) PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error) {
	if input == nil || input.Game == nil || input.Game.Board == nil {
		return nil, ErrNilGame
	}

	game := input.Game
	if game.Status != models.GameStatusActive {
		return nil, ErrInvalidGameState
	}

	b := game.Board
	mover, err := b.Turns.Current()
	if err != nil {
		return nil, fmt.Errorf("failed to find current player: %w", err)
	}

	roll := dice.RollPair(s.diceRoller)
	from := mover.Position
	steps := roll.Sum()

	for i := 1; i <= steps; i++ {
		sq := b.Square(from + i)
		if !sq.Kind.IsOwnable() || mover.Owns(sq.ID) {
			continue
		}
		if _, err := s.tracker.RecordEvent(&performance.RecordEventInput{
			Property: sq,
			Amount:   0,
			Kind:     models.EventKindLoss,
		}); err != nil {
			return nil, fmt.Errorf("failed to record pass over %s: %w", sq.Name, err)
		}
	}

	to := mover.Advance(steps)
	output := &PlayTurnOutput{
		Player: mover.Name,
		Roll:   roll,
		From:   from,
		To:     to,
	}

	landed := b.Square(to)
	if landed.Kind.IsOwnable() && !mover.Owns(landed.ID) && !landed.Mortgaged {
		if err := s.collectRent(b, mover, landed, output); err != nil {
			return nil, err
		}
	}

	b.Turns.Advance()
	game.Turn++
	game.UpdatedAt = s.clock.Now()

	s.logger.Debug("turn played",
		zap.String("game_id", game.ID),
		zap.Int("turn", game.Turn),
		zap.String("player", mover.Name),
		zap.Int("roll", steps),
		zap.Int("position", to),
	)

	winner, err := s.CheckForWinner(ctx, &CheckForWinnerInput{Game: game})
	if err != nil {
		return nil, err
	}
	if !winner.Finished && game.Turn >= s.maxTurns {
		game.Status = models.GameStatusStalemate
	}

	if game.Status.IsFinished() {
		output.Finished = true
		output.Report, err = s.finish(ctx, game)
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// collectRent charges the mover for landing on a square someone else holds
func (s *service) collectRent(b *models.Board, mover *models.Player, landed *models.Property, output *PlayTurnOutput) error {
	ownership, err := s.rent.ResolveOwnership(&rent.ResolveOwnershipInput{
		Property: landed,
		Players:  b.Players,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve ownership of %s: %w", landed.Name, err)
	}
	if !ownership.IsOwned() {
		return nil
	}

	owner := b.Player(ownership.Owner)
	if owner == nil || owner.HasLost() {
		return nil
	}

	var rentRoll models.Roll
	if landed.Kind == models.PropertyKindUtility {
		rentRoll = dice.RollPair(s.diceRoller)
	}

	assessed, err := s.rent.AssessRent(&rent.AssessRentInput{
		Property:     landed,
		Ownership:    ownership,
		Roll:         rentRoll,
		Improvements: b.Improvements,
	})
	if err != nil {
		return fmt.Errorf("failed to assess rent on %s: %w", landed.Name, err)
	}
	if assessed.Amount == 0 {
		return nil
	}

	output.Owner = owner.Name
	output.RentDue = assessed.Amount

	paid := assessed.Amount
	if mover.Cash < assessed.Amount {
		settled, err := s.liquidation.ResolveShortfall(&liquidation.ResolveShortfallInput{
			Player:       mover,
			Debt:         assessed.Amount - mover.Cash,
			Improvements: b.Improvements,
		})
		if err != nil {
			return fmt.Errorf("failed to liquidate %s: %w", mover.Name, err)
		}
		output.Liquidation = settled

		if settled.Bankrupt {
			// the creditor takes whatever cash is left
			paid = mover.Cash
			output.Bankrupt = true
			s.logger.Info("player bankrupt",
				zap.String("player", mover.Name),
				zap.String("creditor", owner.Name),
				zap.Int("rent", assessed.Amount),
				zap.Int("paid", paid),
				zap.Error(settled.Err()),
			)
		}
	}

	mover.Cash -= paid
	owner.Cash += paid
	output.RentPaid = paid

	if _, err := s.tracker.RecordEvent(&performance.RecordEventInput{
		Property: landed,
		Amount:   paid,
		Kind:     models.EventKindProfit,
	}); err != nil {
		return fmt.Errorf("failed to record rent on %s: %w", landed.Name, err)
	}

	s.logger.Debug("rent paid",
		zap.String("player", mover.Name),
		zap.String("owner", owner.Name),
		zap.String("property", landed.Name),
		zap.Int("amount", paid),
	)

	return nil
}

// Play distributes a waiting game and plays it to the end
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if input == nil || input.Game == nil {
		return nil, ErrNilGame
	}

	game := input.Game
	if game.Status == models.GameStatusWaiting {
		if _, err := s.Distribute(ctx, &DistributeInput{Game: game}); err != nil {
			return nil, err
		}
	}

	var finalReport *models.GameReport
	for !game.Status.IsFinished() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		turn, err := s.PlayTurn(ctx, &PlayTurnInput{Game: game})
		if err != nil {
			return nil, fmt.Errorf("turn %d: %w", game.Turn+1, err)
		}
		finalReport = turn.Report
	}

	return &PlayOutput{
		Game:   game,
		Report: finalReport,
	}, nil
}

// CheckForWinner marks the game completed once no more than one player is left
func (s *service) CheckForWinner(ctx context.Context, input *CheckForWinnerInput) (*CheckForWinnerOutput, error) {
	if input == nil || input.Game == nil || input.Game.Board == nil {
		return nil, ErrNilGame
	}

	game := input.Game
	active := game.Board.ActivePlayers()
	if len(active) > 1 {
		return &CheckForWinnerOutput{}, nil
	}

	game.Status = models.GameStatusCompleted
	if len(active) == 1 {
		game.WinnerName = active[0].Name
	}

	return &CheckForWinnerOutput{
		Finished: true,
		Winner:   game.WinnerName,
	}, nil
}

// finish builds the report and persists it when a repository is configured
func (s *service) finish(ctx context.Context, game *models.Game) (*models.GameReport, error) {
	built, err := s.reporter.BuildReport(&report.BuildReportInput{Game: game})
	if err != nil {
		return nil, fmt.Errorf("failed to build report: %w", err)
	}

	s.logger.Info("game finished",
		zap.String("game_id", game.ID),
		zap.String("status", string(game.Status)),
		zap.String("winner", game.WinnerName),
		zap.Int("turns", game.Turn),
	)

	if s.repository == nil {
		return built.Report, nil
	}

	if err := s.repository.SaveReport(ctx, &simulationRepo.SaveReportInput{
		Report: built.Report,
	}); err != nil {
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	return built.Report, nil
}
