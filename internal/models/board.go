package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNoImprovements is returned when decrementing a property with nothing built
	ErrNoImprovements = errors.New("property has no improvements")

	// ErrImprovementRange is returned when an improvement count is outside 0-5
	ErrImprovementRange = errors.New("improvement count out of range")

	// ErrNoActivePlayers is returned by the turn cursor when everyone has lost
	ErrNoActivePlayers = errors.New("no active players")
)

// ImprovementRegistry maps a property ID to the number of improvements built on it
type ImprovementRegistry struct {
	counts map[int]int
}

// NewImprovementRegistry creates an empty registry
func NewImprovementRegistry() *ImprovementRegistry {
	return &ImprovementRegistry{counts: make(map[int]int)}
}

// Count returns the improvements on a property
func (r *ImprovementRegistry) Count(propertyID int) int {
	return r.counts[propertyID]
}

// Set records an improvement count for a property
func (r *ImprovementRegistry) Set(propertyID, count int) error {
	if count < 0 || count > MaxImprovements {
		return fmt.Errorf("%w: %d", ErrImprovementRange, count)
	}
	if count == 0 {
		delete(r.counts, propertyID)
		return nil
	}
	r.counts[propertyID] = count
	return nil
}

// Decrement removes a single improvement and returns the remaining count
func (r *ImprovementRegistry) Decrement(propertyID int) (int, error) {
	count := r.counts[propertyID]
	if count == 0 {
		return 0, ErrNoImprovements
	}
	count--
	if err := r.Set(propertyID, count); err != nil {
		return 0, err
	}
	return count, nil
}

// Snapshot copies the registry contents
func (r *ImprovementRegistry) Snapshot() map[int]int {
	out := make(map[int]int, len(r.counts))
	for id, count := range r.counts {
		out[id] = count
	}
	return out
}

// TurnOrder is a round-robin cursor over a fixed player list
type TurnOrder struct {
	players []*Player
	cursor  int
}

// NewTurnOrder creates a cursor starting at the first player
func NewTurnOrder(players []*Player) *TurnOrder {
	return &TurnOrder{players: players}
}

// Current returns the player whose turn it is, skipping anyone who has lost
func (t *TurnOrder) Current() (*Player, error) {
	for i := 0; i < len(t.players); i++ {
		idx := (t.cursor + i) % len(t.players)
		if !t.players[idx].HasLost() {
			t.cursor = idx
			return t.players[idx], nil
		}
	}
	return nil, ErrNoActivePlayers
}

// Advance moves the cursor past the current player
func (t *TurnOrder) Advance() {
	if len(t.players) == 0 {
		return
	}
	t.cursor = (t.cursor + 1) % len(t.players)
}

// Board is the aggregate that owns every piece of mutable game state
type Board struct {
	// Squares are the 40 board records ordered by position
	Squares []*Property

	// Improvements tracks houses and hotels per property
	Improvements *ImprovementRegistry

	// Players is the fixed roster in turn order
	Players []*Player

	// Turns is the round-robin cursor over Players
	Turns *TurnOrder
}

// NewBoard builds the aggregate from seed squares and a roster
func NewBoard(squares []*Property, players []*Player) *Board {
	return &Board{
		Squares:      squares,
		Improvements: NewImprovementRegistry(),
		Players:      players,
		Turns:        NewTurnOrder(players),
	}
}

// Square returns the record at a board position
func (b *Board) Square(position int) *Property {
	return b.Squares[position%len(b.Squares)]
}

// Player looks up a player by name
func (b *Board) Player(name string) *Player {
	for _, p := range b.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ActivePlayers returns every player who has not lost
func (b *Board) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(b.Players))
	for _, p := range b.Players {
		if !p.HasLost() {
			active = append(active, p)
		}
	}
	return active
}

// Ownable returns every square a player can hold
func (b *Board) Ownable() []*Property {
	ownable := make([]*Property, 0, len(b.Squares))
	for _, sq := range b.Squares {
		if sq.Kind.IsOwnable() {
			ownable = append(ownable, sq)
		}
	}
	return ownable
}
