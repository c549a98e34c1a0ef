package simulation

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/landlord/internal/repositories/simulation Repository

import (
	"context"

	"github.com/KirkDiggler/landlord/internal/models"
)

// Repository defines the interface for simulation result persistence
type Repository interface {
	// SaveReport persists a finished game's report and folds it into the running totals
	SaveReport(ctx context.Context, input *SaveReportInput) error

	// GetReport retrieves a report by game ID
	GetReport(ctx context.Context, input *GetReportInput) (*models.GameReport, error)

	// ListRecentReports retrieves the most recently completed reports, newest first
	ListRecentReports(ctx context.Context, input *ListRecentReportsInput) (*ListRecentReportsOutput, error)

	// GetPropertyTotals retrieves cross-game totals for properties
	GetPropertyTotals(ctx context.Context, input *GetPropertyTotalsInput) (*GetPropertyTotalsOutput, error)

	// GetWinCounts retrieves how many games each player name has won
	GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error)
}
