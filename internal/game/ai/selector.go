// Package ai implements the opponent action selector. The selector commits
// an action from the pre-turn team snapshots alone; it never sees the
// player's pending choice.
package ai

import (
	"github.com/cory-johannsen/arena/internal/game/battle"
	"github.com/cory-johannsen/arena/internal/game/creature"
)

// Config holds the selector's tuning thresholds.
type Config struct {
	// SwitchHPThreshold is the active HP ratio below which the selector
	// looks for a defensive switch.
	SwitchHPThreshold float64
	// BenchHPThreshold is the minimum HP ratio a bench member must have to
	// be a switch candidate.
	BenchHPThreshold float64
}

// DefaultConfig returns the standard selector thresholds.
func DefaultConfig() Config {
	return Config{
		SwitchHPThreshold: 0.30,
		BenchHPThreshold:  0.50,
	}
}

// SelectAction chooses the AI side's action for the coming turn.
//
// Rule 1 (defensive switch): if the active participant's HP ratio is below
// SwitchHPThreshold and a non-fainted bench member above BenchHPThreshold
// exists, switch to the first such member in team order.
//
// Rule 2 (offensive default): otherwise attack with the active participant's
// move of strictly greatest effectiveness against the opponent's active
// types; ties resolve to the lowest move index.
//
// Precondition: aiTeam and opponentTeam must be non-nil with valid active
// indices.
// Postcondition: Returns a switch to a non-fainted member or an attack with
// a valid move index; never inspects the player's pending action.
func SelectAction(aiTeam, opponentTeam *battle.Team, cfg Config) battle.Action {
	active := aiTeam.Active()

	if active.HPRatio() < cfg.SwitchHPThreshold {
		for i, member := range aiTeam.Members {
			if i == aiTeam.ActiveIndex || member.Fainted() {
				continue
			}
			if member.HPRatio() > cfg.BenchHPThreshold {
				return battle.Switch(i)
			}
		}
	}

	defenderTypes := opponentTeam.Active().Definition.Types
	bestIndex := 0
	bestEffectiveness := -1.0
	for i, move := range active.Moves {
		eff := creature.Effectiveness(move.Type, defenderTypes)
		if eff > bestEffectiveness {
			bestEffectiveness = eff
			bestIndex = i
		}
	}
	return battle.Attack(bestIndex)
}
