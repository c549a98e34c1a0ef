package models

// EventKind classifies a payment event for performance tracking
type EventKind string

const (
	// EventKindProfit is rent collected on the property
	EventKindProfit EventKind = "profit"

	// EventKindLoss is a landing that produced no income for the property
	EventKindLoss EventKind = "loss"
)

// Performance is the append-only profit and loss record of a property
type Performance struct {
	// Landings counts every recorded event
	Landings int `json:"landings"`

	// Profits is the ordered history of profit amounts
	Profits []int `json:"profits"`

	// Losses is the ordered history of loss amounts
	Losses []int `json:"losses"`

	// Net is the sum of profits minus the sum of losses
	Net int `json:"net"`

	// ReturnPerEvent is Net divided by Landings
	ReturnPerEvent float64 `json:"returnPerEvent"`

	// RiskAdjustedReturn is Net divided by the standard deviation of the combined history.
	// Only meaningful when RiskAdjustedDefined is true.
	RiskAdjustedReturn float64 `json:"riskAdjustedReturn"`

	// RiskAdjustedDefined is false while the history is too short or has no spread
	RiskAdjustedDefined bool `json:"riskAdjustedDefined"`
}

// History returns profits followed by losses
func (p *Performance) History() []int {
	history := make([]int, 0, len(p.Profits)+len(p.Losses))
	history = append(history, p.Profits...)
	return append(history, p.Losses...)
}
