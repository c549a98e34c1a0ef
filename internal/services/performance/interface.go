package performance

// Tracker keeps the running profit and loss record of each property
type Tracker interface {
	// RecordEvent appends a payment event and recomputes the derived metrics
	RecordEvent(input *RecordEventInput) (*RecordEventOutput, error)
}
