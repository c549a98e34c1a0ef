package models

import "errors"

// PropertyKind represents what kind of square a property record describes
type PropertyKind string

const (
	// PropertyKindStreet is an improvable colored street
	PropertyKindStreet PropertyKind = "street"

	// PropertyKindRailroad is one of the four railroads
	PropertyKindRailroad PropertyKind = "railroad"

	// PropertyKindUtility is one of the two utilities
	PropertyKindUtility PropertyKind = "utility"

	// PropertyKindSpecial is any square that cannot be owned (go, taxes, cards, jail, parking)
	PropertyKindSpecial PropertyKind = "special"
)

// IsOwnable reports whether properties of this kind can be held by a player
func (k PropertyKind) IsOwnable() bool {
	switch k {
	case PropertyKindStreet, PropertyKindRailroad, PropertyKindUtility:
		return true
	}
	return false
}

// RentTiers is the number of entries in a street rent schedule
const RentTiers = 6

// MaxImprovements is the improvement count that denotes a hotel
const MaxImprovements = RentTiers - 1

// ErrAlreadyMortgaged is returned when mortgaging a property twice
var ErrAlreadyMortgaged = errors.New("property is already mortgaged")

// StreetDetails holds the attributes only streets carry
type StreetDetails struct {
	// ImprovementCost is the price of a single house on this street
	ImprovementCost int `json:"improvementCost"`

	// Rent is the schedule from unimproved through hotel
	Rent [RentTiers]int `json:"rent"`
}

// Property represents a single square on the board
type Property struct {
	// ID is the board position of the square (0-39)
	ID int `json:"id"`

	// Name is the printed name of the square
	Name string `json:"name"`

	// Kind decides which rent rules apply
	Kind PropertyKind `json:"kind"`

	// Group identifies the monopoly group the property belongs to
	Group string `json:"group,omitempty"`

	// GroupSize is how many properties make up the full group
	GroupSize int `json:"groupSize,omitempty"`

	// Cost is the acquisition price
	Cost int `json:"cost,omitempty"`

	// Weight is the board footprint weight used to normalize opportunity cost
	Weight float64 `json:"weight,omitempty"`

	// Street is set only for PropertyKindStreet
	Street *StreetDetails `json:"street,omitempty"`

	// Mortgaged indicates the property has been mortgaged and collects no rent
	Mortgaged bool `json:"mortgaged"`

	// Performance is the running profit/loss record for the property
	Performance Performance `json:"performance"`
}

// MortgageValue is the cash raised by mortgaging the property
func (p *Property) MortgageValue() int {
	return p.Cost / 2
}

// Mortgage marks the property as mortgaged and returns the cash raised
func (p *Property) Mortgage() (int, error) {
	if p.Mortgaged {
		return 0, ErrAlreadyMortgaged
	}
	p.Mortgaged = true
	return p.MortgageValue(), nil
}

// BaseRent is the unimproved street rent, or zero for anything else
func (p *Property) BaseRent() int {
	if p.Street == nil {
		return 0
	}
	return p.Street.Rent[0]
}
