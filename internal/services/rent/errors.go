package rent

// RentError is a custom error type for rent assessment errors
type RentError string

// Error implements the error interface
func (e RentError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrOwnership      RentError = "cannot find owner"
	ErrRailroadCount  RentError = "could not calculate railroad payment"
	ErrUnexpectedKind RentError = "could not calculate rent"
	ErrNilProperty    RentError = "property cannot be nil"
	ErrNilOwnership   RentError = "ownership cannot be nil"
)
