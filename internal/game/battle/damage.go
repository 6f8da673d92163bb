package battle

import (
	"math"

	"github.com/cory-johannsen/arena/internal/game/creature"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// battleLevel is the fixed assumed level of every participant.
const battleLevel = 50

// stabMultiplier is the Same-Type-Attack-Bonus applied when a move's type
// matches one of the attacker's own types.
const stabMultiplier = 1.5

// DamageResult holds the outcome of a single damage computation.
type DamageResult struct {
	// Amount is the final damage value, always >= 1.
	Amount int
	// Effectiveness is the type-chart multiplier that was applied.
	Effectiveness float64
	// STAB is true when the Same-Type-Attack-Bonus was applied.
	STAB bool
}

// ComputeDamage resolves the damage of one move from attacker against
// defender. The offensive/defensive stat pair follows the move category,
// effectiveness is looked up against the defender's current types, and the
// variance factor is drawn uniformly from [0.85, 1.00).
//
// Precondition: attacker, defender, and src must be non-nil; m must come
// from the attacker's generated move list.
// Postcondition: result.Amount >= 1 regardless of stat ratios or
// effectiveness.
func ComputeDamage(attacker, defender *Participant, m Move, src dice.Source) DamageResult {
	var atk, def int
	switch m.Category {
	case CategorySpecial:
		atk = attacker.Definition.Stats.SpAttack
		def = defender.Definition.Stats.SpDefense
	default:
		atk = attacker.Definition.Stats.Attack
		def = defender.Definition.Stats.Defense
	}

	effectiveness := creature.Effectiveness(m.Type, defender.Definition.Types)

	stab := 1.0
	if attacker.Definition.HasType(m.Type) {
		stab = stabMultiplier
	}

	base := ((2.0*float64(battleLevel)/5.0+2.0)*float64(m.Power)*float64(atk)/float64(def))/50.0 + 2.0
	factor := 0.85 + src.Float64()*0.15

	amount := int(math.Floor(base * stab * effectiveness * factor))
	if amount < 1 {
		// A move that connects always deals at least 1 point.
		amount = 1
	}

	return DamageResult{
		Amount:        amount,
		Effectiveness: effectiveness,
		STAB:          stab > 1.0,
	}
}
