package simulation

import "github.com/KirkDiggler/landlord/internal/models"

type SaveReportInput struct {
	Report *models.GameReport
}

type GetReportInput struct {
	GameID string
}

type ListRecentReportsInput struct {
	// Limit defaults to 10 when zero
	Limit int
}

type ListRecentReportsOutput struct {
	Reports []*models.GameReport
}

type GetPropertyTotalsInput struct {
	PropertyIDs []int
}

// PropertyTotals accumulates a property's results across saved games
type PropertyTotals struct {
	PropertyID        int
	Games             int64
	Landings          int64
	Net               int64
	ReturnPerEventSum float64
}

// AverageReturnPerEvent is the mean of the per-game return per event
func (t PropertyTotals) AverageReturnPerEvent() float64 {
	if t.Games == 0 {
		return 0
	}
	return t.ReturnPerEventSum / float64(t.Games)
}

type GetPropertyTotalsOutput struct {
	Totals []PropertyTotals
}

type GetWinCountsInput struct {
}

type GetWinCountsOutput struct {
	Wins map[string]int64
}
