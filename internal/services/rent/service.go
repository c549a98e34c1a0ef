package rent

import (
	"fmt"

	"github.com/KirkDiggler/landlord/internal/models"
)

const (
	// UtilitySingleMultiplier applies to the roll when the owner holds one utility
	UtilitySingleMultiplier = 4

	// UtilityPairMultiplier applies to the roll when the owner holds both utilities
	UtilityPairMultiplier = 10
)

// railroadRent is the flat rent by number of railroads held
var railroadRent = map[int]int{
	1: 25,
	2: 50,
	3: 100,
	4: 200,
}

// RailroadRent returns the flat rent for an owner holding count railroads
func RailroadRent(count int) (int, error) {
	amount, ok := railroadRent[count]
	if !ok {
		return 0, fmt.Errorf("%w: %d railroads", ErrRailroadCount, count)
	}
	return amount, nil
}

// UtilityMultiplier returns the roll multiplier for an owner with or without both utilities
func UtilityMultiplier(bothOwned bool) int {
	if bothOwned {
		return UtilityPairMultiplier
	}
	return UtilitySingleMultiplier
}

// StreetRent applies the street schedule for the given monopoly and improvement state
func StreetRent(street *models.StreetDetails, monopoly bool, improvements int) int {
	if !monopoly {
		return street.Rent[0]
	}
	if improvements > 0 {
		return street.Rent[improvements]
	}
	return street.Rent[0] * 2
}

// service implements the Service interface
type service struct{}

// New creates a new rent service
func New() *service {
	return &service{}
}

// ResolveOwnership scans the roster for holders of the property's group
func (s *service) ResolveOwnership(input *ResolveOwnershipInput) (*Ownership, error) {
	if input == nil || input.Property == nil {
		return nil, ErrNilProperty
	}

	target := input.Property
	result := &Ownership{
		Group:    target.Group,
		Holdings: make(map[string][]*models.Property),
	}

	if !target.Kind.IsOwnable() {
		return result, nil
	}

	holdersOfTarget := 0
	for _, player := range input.Players {
		for _, prop := range player.Properties {
			if prop.Group != target.Group {
				continue
			}
			result.Holdings[player.Name] = append(result.Holdings[player.Name], prop)
			if prop.ID == target.ID {
				result.Owner = player.Name
				holdersOfTarget++
			}
		}
	}

	if len(result.Holdings) == 0 {
		return result, nil
	}

	if holdersOfTarget != 1 {
		return nil, fmt.Errorf("%w: property %d (%s) held by %d players", ErrOwnership, target.ID, target.Name, holdersOfTarget)
	}

	result.SingleOwner = len(result.Holdings) == 1
	result.IsMonopoly = result.SingleOwner && result.OwnerCount() == target.GroupSize

	return result, nil
}

// AssessRent computes the rent owed on a property
func (s *service) AssessRent(input *AssessRentInput) (*AssessRentOutput, error) {
	if input == nil || input.Property == nil {
		return nil, ErrNilProperty
	}
	if input.Ownership == nil {
		return nil, ErrNilOwnership
	}

	target := input.Property
	ownership := input.Ownership

	if !target.Kind.IsOwnable() || !ownership.IsOwned() || target.Mortgaged {
		return &AssessRentOutput{}, nil
	}

	switch target.Kind {
	case models.PropertyKindUtility:
		return &AssessRentOutput{
			Amount: input.Roll.Sum() * UtilityMultiplier(ownership.IsMonopoly),
			Owner:  ownership.Owner,
		}, nil

	case models.PropertyKindRailroad:
		amount, err := RailroadRent(ownership.OwnerCount())
		if err != nil {
			return nil, err
		}
		return &AssessRentOutput{
			Amount: amount,
			Owner:  ownership.Owner,
		}, nil

	case models.PropertyKindStreet:
		if target.Street == nil {
			return nil, fmt.Errorf("%w: street %d has no rent schedule", ErrUnexpectedKind, target.ID)
		}
		improvements := 0
		if input.Improvements != nil {
			improvements = input.Improvements.Count(target.ID)
		}
		return &AssessRentOutput{
			Amount: StreetRent(target.Street, ownership.IsMonopoly, improvements),
			Owner:  ownership.Owner,
		}, nil
	}

	return nil, fmt.Errorf("%w: kind %q", ErrUnexpectedKind, target.Kind)
}
