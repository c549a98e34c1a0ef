package liquidation

// Engine raises cash from a player's holdings to cover a debt
type Engine interface {
	// ResolveShortfall runs the liquidation stages until the debt is covered or nothing is left
	ResolveShortfall(input *ResolveShortfallInput) (*ResolveShortfallOutput, error)
}
