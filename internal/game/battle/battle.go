// Package battle implements the turn-based battle engine: team snapshots,
// move generation, damage resolution, and the simultaneous-turn state
// machine that produces an ordered event log for the presentation layer.
package battle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/arena/internal/game/creature"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// Status is a battle's lifecycle state. StatusOngoing is the only
// non-terminal state; every other status is absorbing.
type Status int

const (
	StatusOngoing Status = iota
	StatusWon
	StatusLost
	StatusForfeit
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}

// Turn records one resolved turn: both submitted actions plus the ordered
// event log their resolution produced.
type Turn struct {
	// Number is 1-based and monotonic across the battle.
	Number         int
	PlayerAction   Action
	OpponentAction Action
	Events         []Event
}

// Battle holds the full state of a single battle between two teams.
// It becomes immutable once Status is terminal.
type Battle struct {
	ID           string
	PlayerTeam   *Team
	OpponentTeam *Team
	Turns        []Turn
	Status       Status
	CreatedAt    time.Time
	// CompletedAt is the zero time until Status becomes terminal.
	CompletedAt time.Time
}

// New snapshots both rosters into teams and returns a fresh ongoing battle
// with both active indices at 0.
//
// Precondition: each roster must hold 1 to MaxTeamSize valid definitions.
// Postcondition: Returns an ongoing battle with no turns, or an error before
// any state is built.
func New(playerRoster, opponentRoster []creature.Definition) (*Battle, error) {
	playerTeam, err := NewTeam(playerRoster)
	if err != nil {
		return nil, fmt.Errorf("player roster: %w", err)
	}
	opponentTeam, err := NewTeam(opponentRoster)
	if err != nil {
		return nil, fmt.Errorf("opponent roster: %w", err)
	}
	return &Battle{
		ID:           uuid.New().String(),
		PlayerTeam:   playerTeam,
		OpponentTeam: opponentTeam,
		Status:       StatusOngoing,
		CreatedAt:    time.Now(),
	}, nil
}

// Team returns the team fighting for the given side.
func (b *Battle) Team(side Side) *Team {
	if side == SidePlayer {
		return b.PlayerTeam
	}
	return b.OpponentTeam
}

// Over reports whether the battle has reached a terminal status.
func (b *Battle) Over() bool { return b.Status != StatusOngoing }

// DefeatedSide returns the side whose team is fully fainted, or -1 while
// both sides retain at least one non-fainted member.
func (b *Battle) DefeatedSide() Side {
	if b.OpponentTeam.Defeated() {
		return SideOpponent
	}
	if b.PlayerTeam.Defeated() {
		return SidePlayer
	}
	return Side(-1)
}

// ExecuteTurn resolves one full turn of the simultaneous-turn protocol.
// Both actions were committed before resolution begins; switches apply
// first, then the player's attack, then the opponent's attack unless its
// active participant fainted this turn. A side whose active participant
// fainted has the first non-fainted bench member promoted before the turn
// closes, so the active index never rests on a fainted member while the
// team still stands.
//
// Precondition: src must be non-nil; opponentAction is expected to come
// from the AI selector over the pre-turn snapshots.
// Postcondition: Returns the appended Turn; Status is updated to StatusWon
// or StatusLost (with CompletedAt set) when a side is fully fainted.
// Returns ErrBattleOver without effect if the battle is already terminal,
// or an ErrInvalidAction wrap without effect if either action fails
// boundary validation.
func (b *Battle) ExecuteTurn(playerAction, opponentAction Action, src dice.Source) (Turn, error) {
	if b.Over() {
		return Turn{}, ErrBattleOver
	}
	if err := validateAction(b.PlayerTeam, playerAction); err != nil {
		return Turn{}, fmt.Errorf("player action: %w", err)
	}
	if err := validateAction(b.OpponentTeam, opponentAction); err != nil {
		return Turn{}, fmt.Errorf("opponent action: %w", err)
	}

	var events []Event

	// Switches resolve before any attack, independently per side.
	if playerAction.Type == ActionSwitch {
		events = append(events, b.applySwitch(SidePlayer, playerAction.TargetIndex))
	}
	if opponentAction.Type == ActionSwitch {
		events = append(events, b.applySwitch(SideOpponent, opponentAction.TargetIndex))
	}

	if playerAction.Type == ActionAttack {
		events = append(events, b.resolveAttack(SidePlayer, playerAction.MoveIndex, src)...)
	}
	// The opponent only strikes back if its active member survived the
	// player's attack.
	if opponentAction.Type == ActionAttack && !b.OpponentTeam.Active().Fainted() {
		events = append(events, b.resolveAttack(SideOpponent, opponentAction.MoveIndex, src)...)
	}

	events = append(events, b.promoteFainted(SidePlayer)...)
	events = append(events, b.promoteFainted(SideOpponent)...)

	turn := Turn{
		Number:         len(b.Turns) + 1,
		PlayerAction:   playerAction,
		OpponentAction: opponentAction,
		Events:         events,
	}
	b.Turns = append(b.Turns, turn)

	switch b.DefeatedSide() {
	case SideOpponent:
		b.Status = StatusWon
		b.CompletedAt = time.Now()
	case SidePlayer:
		b.Status = StatusLost
		b.CompletedAt = time.Now()
	}

	return turn, nil
}

// Forfeit ends the battle immediately as a loss for the player.
//
// Postcondition: Status == StatusForfeit and CompletedAt is set, or
// ErrBattleOver if the battle was already terminal.
func (b *Battle) Forfeit() error {
	if b.Over() {
		return ErrBattleOver
	}
	b.Status = StatusForfeit
	b.CompletedAt = time.Now()
	return nil
}

// SwitchActive directly moves a side's active index outside the turn
// protocol, for forced-switch flows. Unlike the source system this variant
// validates the target.
//
// Postcondition: ActiveIndex == index, or an ErrInvalidAction wrap /
// ErrBattleOver without effect.
func (b *Battle) SwitchActive(side Side, index int) error {
	if b.Over() {
		return ErrBattleOver
	}
	team := b.Team(side)
	if index < 0 || index >= len(team.Members) {
		return fmt.Errorf("%w: switch target %d out of range [0, %d)", ErrInvalidAction, index, len(team.Members))
	}
	if team.Members[index].Fainted() {
		return fmt.Errorf("%w: switch target %d has fainted", ErrInvalidAction, index)
	}
	team.ActiveIndex = index
	return nil
}

// applySwitch moves the side's active index and returns the switch event.
func (b *Battle) applySwitch(side Side, target int) Event {
	team := b.Team(side)
	team.ActiveIndex = target
	return Event{
		Kind:             EventSwitch,
		Side:             side,
		ParticipantIndex: target,
		Message:          switchMessage(side, team.Members[target].Definition.Name),
	}
}

// resolveAttack computes and applies one attack from side's active
// participant against the other side's active participant, emitting the
// damage event, an effectiveness message when the multiplier is not
// neutral, and a faint event when the defender drops.
func (b *Battle) resolveAttack(side Side, moveIndex int, src dice.Source) []Event {
	attacker := b.Team(side).Active()
	defenderSide := side.Other()
	defenderTeam := b.Team(defenderSide)
	defender := defenderTeam.Active()

	move := attacker.Moves[moveIndex]
	result := ComputeDamage(attacker, defender, move, src)
	defender.ApplyDamage(result.Amount)

	events := []Event{{
		Kind:             EventDamage,
		Side:             defenderSide,
		ParticipantIndex: defenderTeam.ActiveIndex,
		Amount:           result.Amount,
		Message:          fmt.Sprintf("%s used %s!", attacker.Definition.Name, move.Name),
	}}

	if msg := effectivenessMessage(result.Effectiveness); msg != "" {
		events = append(events, Event{
			Kind:    EventMessage,
			Side:    defenderSide,
			Message: msg,
		})
	}

	if defender.Fainted() {
		events = append(events, Event{
			Kind:             EventFaint,
			Side:             defenderSide,
			ParticipantIndex: defenderTeam.ActiveIndex,
			Message:          fmt.Sprintf("%s fainted!", defender.Definition.Name),
		})
	}

	return events
}

// promoteFainted replaces a fainted active participant with the first
// non-fainted bench member, if the side still has one.
func (b *Battle) promoteFainted(side Side) []Event {
	team := b.Team(side)
	if !team.Active().Fainted() {
		return nil
	}
	next := team.FirstAvailable()
	if next < 0 {
		return nil
	}
	return []Event{b.applySwitch(side, next)}
}

// switchMessage returns the display text for a participant entering battle.
func switchMessage(side Side, name string) string {
	if side == SidePlayer {
		return fmt.Sprintf("Go, %s!", name)
	}
	return fmt.Sprintf("Opponent sent out %s!", name)
}
