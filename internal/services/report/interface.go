package report

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/landlord/internal/services/report Service

// Service summarizes boards and finished games
type Service interface {
	// AnalyzeBoard computes per-group ownership costs and rent-to-cost ratios for every tier
	AnalyzeBoard(input *AnalyzeBoardInput) (*AnalyzeBoardOutput, error)

	// BuildReport snapshots standings and property performance for a game
	BuildReport(input *BuildReportInput) (*BuildReportOutput, error)
}
