package rent

import "github.com/KirkDiggler/landlord/internal/models"

// ImprovementCounter reads improvement levels without being able to change them
type ImprovementCounter interface {
	Count(propertyID int) int
}

// ResolveOwnershipInput contains parameters for resolving ownership
type ResolveOwnershipInput struct {
	// Property is the square being looked up
	Property *models.Property

	// Players is the full roster
	Players []*models.Player
}

// Ownership is the per-query view of who holds a property's group
type Ownership struct {
	// Group is the group that was scanned
	Group string

	// Holdings maps each holder's name to their properties in the group
	Holdings map[string][]*models.Property

	// SingleOwner is true when exactly one player holds anything in the group
	SingleOwner bool

	// IsMonopoly is true when the single owner holds the entire group
	IsMonopoly bool

	// Owner is the player who collects rent, empty when the group is unowned
	Owner string
}

// IsOwned reports whether anyone collects rent on the property
func (o *Ownership) IsOwned() bool {
	return o.Owner != ""
}

// OwnerCount is how many properties of the group the owner holds
func (o *Ownership) OwnerCount() int {
	return len(o.Holdings[o.Owner])
}

// AssessRentInput contains parameters for assessing rent
type AssessRentInput struct {
	// Property is the square landed on
	Property *models.Property

	// Ownership is the result of ResolveOwnership for Property
	Ownership *Ownership

	// Roll is a fresh roll, only consulted for utilities
	Roll models.Roll

	// Improvements reports houses and hotels, may be nil when nothing is built
	Improvements ImprovementCounter
}

// AssessRentOutput contains the amount owed and who receives it
type AssessRentOutput struct {
	// Amount is the rent owed
	Amount int

	// Owner is the player receiving the rent, empty when nothing is owed
	Owner string
}
