package performance

import (
	"math"

	"github.com/KirkDiggler/landlord/internal/models"
)

// tracker implements the Tracker interface
type tracker struct{}

// New creates a new performance tracker
func New() *tracker {
	return &tracker{}
}

// RecordEvent appends the event to the property's history and refreshes its metrics
func (t *tracker) RecordEvent(input *RecordEventInput) (*RecordEventOutput, error) {
	if input == nil || input.Property == nil {
		return nil, ErrNilProperty
	}
	if input.Amount < 0 {
		return nil, ErrNegativeAmount
	}

	perf := &input.Property.Performance
	switch input.Kind {
	case models.EventKindProfit:
		perf.Profits = append(perf.Profits, input.Amount)
	case models.EventKindLoss:
		perf.Losses = append(perf.Losses, input.Amount)
	default:
		return nil, ErrInvalidEventKind
	}
	perf.Landings++

	Recompute(perf)

	return &RecordEventOutput{
		Performance: *perf,
	}, nil
}

// Recompute derives net, return per event and risk-adjusted return from the histories
func Recompute(perf *models.Performance) {
	perf.Net = sum(perf.Profits) - sum(perf.Losses)

	perf.ReturnPerEvent = 0
	if perf.Landings > 0 {
		perf.ReturnPerEvent = float64(perf.Net) / float64(perf.Landings)
	}

	perf.RiskAdjustedReturn = 0
	perf.RiskAdjustedDefined = false

	history := perf.History()
	if len(history) < 2 {
		return
	}
	stdev := populationStdev(history)
	if stdev == 0 {
		return
	}
	perf.RiskAdjustedReturn = float64(perf.Net) / stdev
	perf.RiskAdjustedDefined = true
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func populationStdev(values []int) float64 {
	mean := float64(sum(values)) / float64(len(values))
	var squares float64
	for _, v := range values {
		d := float64(v) - mean
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(values)))
}
