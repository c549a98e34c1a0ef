package models

import "errors"

// PlayerStatus represents where a player stands in the game
type PlayerStatus string

const (
	// PlayerStatusActive indicates the player is taking turns
	PlayerStatusActive PlayerStatus = "active"

	// PlayerStatusJail indicates the player is in jail
	PlayerStatusJail PlayerStatus = "jail"

	// PlayerStatusLost indicates the player could not cover a debt
	PlayerStatusLost PlayerStatus = "lost"
)

// BoardSize is the number of squares on the board
const BoardSize = 40

// ErrDuplicateProperty is returned when a player is given a property they already hold
var ErrDuplicateProperty = errors.New("player already owns property")

// Player represents a participant in a game
type Player struct {
	// Name identifies the player
	Name string `json:"name"`

	// Cash is the player's balance
	Cash int `json:"cash"`

	// Position is the board square the player stands on
	Position int `json:"position"`

	// Status is the player's standing in the game
	Status PlayerStatus `json:"status"`

	// Properties are the squares this player exclusively owns
	Properties []*Property `json:"properties"`
}

// HasLost reports whether the player is out of the game
func (p *Player) HasLost() bool {
	return p.Status == PlayerStatusLost
}

// Owns reports whether the player holds the property with the given ID
func (p *Player) Owns(propertyID int) bool {
	for _, prop := range p.Properties {
		if prop.ID == propertyID {
			return true
		}
	}
	return false
}

// AddProperty gives the player a property
func (p *Player) AddProperty(prop *Property) error {
	if p.Owns(prop.ID) {
		return ErrDuplicateProperty
	}
	p.Properties = append(p.Properties, prop)
	return nil
}

// Advance moves the player forward, wrapping around the board, and returns the new position
func (p *Player) Advance(steps int) int {
	p.Position = (p.Position + steps) % BoardSize
	return p.Position
}

// CountInGroup returns how many properties of a group the player holds
func (p *Player) CountInGroup(group string) int {
	count := 0
	for _, prop := range p.Properties {
		if prop.Group == group {
			count++
		}
	}
	return count
}
