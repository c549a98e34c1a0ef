package rent

// Service defines the rent rules of the board
type Service interface {
	// ResolveOwnership determines who holds a property's group and whether it is a monopoly
	ResolveOwnership(input *ResolveOwnershipInput) (*Ownership, error)

	// AssessRent computes what a visitor owes for landing on a property
	AssessRent(input *AssessRentInput) (*AssessRentOutput, error)
}
