package liquidation

// LiquidationError is a custom error type for liquidation errors
type LiquidationError string

// Error implements the error interface
func (e LiquidationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            LiquidationError = "config cannot be nil"
	ErrNilValuation         LiquidationError = "valuation service cannot be nil"
	ErrNilPlayer            LiquidationError = "player cannot be nil"
	ErrNilImprovements      LiquidationError = "improvement registry cannot be nil"
	ErrNegativeDebt         LiquidationError = "debt cannot be negative"
	ErrImprovementFloor     LiquidationError = "improvement floor must be between 0 and 5"
	ErrLiquidationExhausted LiquidationError = "liquidation could not cover the debt"
)
