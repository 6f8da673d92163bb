package battle

import (
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/creature"
)

// MoveCategory distinguishes physical moves (attack vs defense) from special
// moves (sp_attack vs sp_defense).
type MoveCategory int

const (
	CategoryPhysical MoveCategory = iota
	CategorySpecial
)

// String returns a human-readable category label.
func (c MoveCategory) String() string {
	switch c {
	case CategoryPhysical:
		return "physical"
	case CategorySpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Move is one usable attack. Moves are derived from a participant's types
// and snapshotted onto the participant at battle start.
type Move struct {
	Name     string
	Type     creature.TypeID
	Power    int
	Accuracy int
	Category MoveCategory
	PP       int
	MaxPP    int
}

// movePP is the fixed PP assigned to every generated move.
const movePP = 15

// MovesFor derives the move set for a participant with the given types:
// a physical and a special move of the primary type, a physical move of the
// secondary type when present, and a neutral filler, truncated to four.
//
// Precondition: types has 1 or 2 entries.
// Postcondition: Returns 3 or 4 moves; deterministic for a given type list.
func MovesFor(types []creature.TypeID) []Move {
	if len(types) == 0 {
		return nil
	}
	primary := types[0]
	moves := []Move{
		{
			Name:     fmt.Sprintf("%s Strike", primary),
			Type:     primary,
			Power:    80,
			Accuracy: 100,
			Category: CategoryPhysical,
			PP:       movePP,
			MaxPP:    movePP,
		},
		{
			Name:     fmt.Sprintf("%s Pulse", primary),
			Type:     primary,
			Power:    90,
			Accuracy: 85,
			Category: CategorySpecial,
			PP:       movePP,
			MaxPP:    movePP,
		},
	}
	if len(types) > 1 {
		moves = append(moves, Move{
			Name:     fmt.Sprintf("%s Slash", types[1]),
			Type:     types[1],
			Power:    75,
			Accuracy: 95,
			Category: CategoryPhysical,
			PP:       movePP,
			MaxPP:    movePP,
		})
	}
	moves = append(moves, Move{
		Name:     "Quick Attack",
		Type:     creature.TypeNormal,
		Power:    40,
		Accuracy: 100,
		Category: CategoryPhysical,
		PP:       movePP,
		MaxPP:    movePP,
	})
	if len(moves) > 4 {
		moves = moves[:4]
	}
	return moves
}
