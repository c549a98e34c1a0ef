package valuation

// ValuationError is a custom error type for valuation errors
type ValuationError string

// Error implements the error interface
func (e ValuationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilPlayer                ValuationError = "player cannot be nil"
	ErrNilProperty              ValuationError = "property cannot be nil"
	ErrUndefinedOpportunityCost ValuationError = "opportunity cost is undefined without other holdings"
)
