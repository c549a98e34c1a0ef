package performance

// PerformanceError is a custom error type for performance tracking errors
type PerformanceError string

// Error implements the error interface
func (e PerformanceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilProperty      PerformanceError = "property cannot be nil"
	ErrInvalidEventKind PerformanceError = "event kind must be profit or loss"
	ErrNegativeAmount   PerformanceError = "event amount cannot be negative"
)
