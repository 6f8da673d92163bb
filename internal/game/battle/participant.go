package battle

import (
	"fmt"

	"github.com/cory-johannsen/arena/internal/game/creature"
)

// ParticipantStatus tracks a participant's battle condition.
type ParticipantStatus int

const (
	StatusNormal ParticipantStatus = iota
	StatusFainted
)

// String returns a human-readable status label.
func (s ParticipantStatus) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusFainted:
		return "fainted"
	default:
		return "unknown"
	}
}

// Participant is one creature's live combat state, snapshotted from its
// static definition at battle start and destroyed with the battle.
//
// Moves is fixed at snapshot time so a move index stays meaningful for the
// whole battle.
type Participant struct {
	// Definition is the read-only creature definition this participant
	// was snapshotted from.
	Definition creature.Definition
	// CurrentHP is the remaining hit points, always in [0, MaxHP].
	CurrentHP int
	// MaxHP is fixed at creation from the base hp statistic.
	MaxHP int
	// Status is the participant's battle condition.
	Status ParticipantStatus
	// StatusTurns counts turns spent in a non-normal status. Tracked for
	// the snapshot surface; no current rule consumes it.
	StatusTurns int
	// Moves is the move list generated from the definition's types at
	// battle start.
	Moves []Move
}

// NewParticipant snapshots a creature definition into live battle state.
//
// Postcondition: CurrentHP == MaxHP == Stats.HP; Status == StatusNormal;
// Moves holds the generated move set for the definition's types.
func NewParticipant(def creature.Definition) *Participant {
	return &Participant{
		Definition: def,
		CurrentHP:  def.Stats.HP,
		MaxHP:      def.Stats.HP,
		Status:     StatusNormal,
		Moves:      MovesFor(def.Types),
	}
}

// Fainted reports whether the participant has fainted.
func (p *Participant) Fainted() bool { return p.Status == StatusFainted }

// HPRatio returns CurrentHP as a fraction of MaxHP.
//
// Postcondition: return value is in [0.0, 1.0].
func (p *Participant) HPRatio() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.CurrentHP) / float64(p.MaxHP)
}

// ApplyDamage reduces CurrentHP by amount, flooring at zero, and marks the
// participant fainted when HP reaches zero.
//
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP >= 0; Status == StatusFainted iff CurrentHP == 0.
func (p *Participant) ApplyDamage(amount int) {
	p.CurrentHP -= amount
	if p.CurrentHP <= 0 {
		p.CurrentHP = 0
		p.Status = StatusFainted
	}
}

// MaxTeamSize is the largest number of participants a team may hold.
const MaxTeamSize = 6

// Team is an ordered, fixed-size roster of participants with a pointer at
// the currently-fighting member.
type Team struct {
	Members []*Participant
	// ActiveIndex identifies the currently-fighting member. While the team
	// has any non-fainted member, turn resolution keeps it pointing at a
	// non-fainted one.
	ActiveIndex int
}

// NewTeam snapshots a roster of creature definitions into a Team.
//
// Precondition: defs must hold 1 to MaxTeamSize valid definitions.
// Postcondition: Returns a Team with ActiveIndex 0 and every member at full
// HP, or an error before any state is built.
func NewTeam(defs []creature.Definition) (*Team, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("battle: team must have at least 1 member")
	}
	if len(defs) > MaxTeamSize {
		return nil, fmt.Errorf("battle: team size %d exceeds maximum of %d", len(defs), MaxTeamSize)
	}
	members := make([]*Participant, 0, len(defs))
	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("battle: invalid team member: %w", err)
		}
		members = append(members, NewParticipant(def))
	}
	return &Team{Members: members}, nil
}

// Active returns the currently-fighting participant.
//
// Precondition: ActiveIndex must be a valid index (held as an invariant by
// the turn protocol).
func (t *Team) Active() *Participant {
	return t.Members[t.ActiveIndex]
}

// Defeated reports whether every member of the team has fainted.
func (t *Team) Defeated() bool {
	for _, m := range t.Members {
		if !m.Fainted() {
			return false
		}
	}
	return true
}

// FirstAvailable returns the index of the first non-fainted member, or -1 if
// the team is defeated.
func (t *Team) FirstAvailable() int {
	for i, m := range t.Members {
		if !m.Fainted() {
			return i
		}
	}
	return -1
}
