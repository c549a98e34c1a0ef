package report

// ReportError is a custom error type for report errors
type ReportError string

// Error implements the error interface
func (e ReportError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilGame   ReportError = "game cannot be nil"
	ErrNilBoard  ReportError = "game has no board"
	ErrNoSquares ReportError = "no squares to analyze"
)
