// Package board loads the seed square records the game is played on.
package board

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/KirkDiggler/landlord/internal/models"
)

//go:embed board.json
var standardBoard []byte

var (
	// ErrBoardSize is returned when the seed data does not hold exactly 40 squares
	ErrBoardSize = errors.New("board must have 40 squares")

	// ErrInvalidSquare is returned when a square record is inconsistent
	ErrInvalidSquare = errors.New("invalid square")
)

// Standard returns a fresh copy of the standard board
func Standard() ([]*models.Property, error) {
	return Load(bytes.NewReader(standardBoard))
}

// Load reads square records from JSON and validates them
func Load(r io.Reader) ([]*models.Property, error) {
	var squares []*models.Property
	if err := json.NewDecoder(r).Decode(&squares); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}

	if len(squares) != models.BoardSize {
		return nil, fmt.Errorf("%w: got %d", ErrBoardSize, len(squares))
	}

	groups := make(map[string]int)
	for i, sq := range squares {
		if err := validate(i, sq); err != nil {
			return nil, err
		}
		if sq.Kind.IsOwnable() {
			groups[sq.Group]++
		}
	}

	for _, sq := range squares {
		if sq.Kind.IsOwnable() && groups[sq.Group] != sq.GroupSize {
			return nil, fmt.Errorf("%w: group %s declares size %d but has %d squares",
				ErrInvalidSquare, sq.Group, sq.GroupSize, groups[sq.Group])
		}
	}

	return squares, nil
}

func validate(position int, sq *models.Property) error {
	if sq == nil {
		return fmt.Errorf("%w: position %d is empty", ErrInvalidSquare, position)
	}
	if sq.ID != position {
		return fmt.Errorf("%w: position %d has id %d", ErrInvalidSquare, position, sq.ID)
	}

	switch sq.Kind {
	case models.PropertyKindSpecial:
		return nil
	case models.PropertyKindStreet:
		if sq.Street == nil {
			return fmt.Errorf("%w: street %d has no rent schedule", ErrInvalidSquare, sq.ID)
		}
	case models.PropertyKindRailroad, models.PropertyKindUtility:
	default:
		return fmt.Errorf("%w: square %d has unknown kind %q", ErrInvalidSquare, sq.ID, sq.Kind)
	}

	if sq.Group == "" || sq.GroupSize < 1 || sq.Cost <= 0 {
		return fmt.Errorf("%w: square %d is missing group or cost", ErrInvalidSquare, sq.ID)
	}
	return nil
}
