package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/landlord/internal/services/game Service

import "context"

// Service defines the interface for running simulated games
type Service interface {
	// NewGame sets up a board and roster
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// Distribute deals every ownable square to the players at random, round-robin
	Distribute(ctx context.Context, input *DistributeInput) (*DistributeOutput, error)

	// PlayTurn rolls for the current player, charges rent and settles any shortfall
	PlayTurn(ctx context.Context, input *PlayTurnInput) (*PlayTurnOutput, error)

	// Play runs turns until the game finishes
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// CheckForWinner completes the game once a single player is left
	CheckForWinner(ctx context.Context, input *CheckForWinnerInput) (*CheckForWinnerOutput, error)
}
