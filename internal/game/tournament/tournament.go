// Package tournament implements single-elimination tournament construction
// and progression on top of the battle engine: participants, bracket
// building with byes, AI-vs-AI match simulation, and round advancement.
package tournament

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/arena/internal/game/creature"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

var (
	// ErrTournamentState reports an operation invoked in the wrong
	// lifecycle state.
	ErrTournamentState = errors.New("tournament is in the wrong state")

	// ErrMatchNotFound reports an advance call naming a match id that is
	// not in the current round.
	ErrMatchNotFound = errors.New("match not found in current round")

	// ErrMatchCompleted reports an advance call against a match that has
	// already been resolved. The call changes nothing.
	ErrMatchCompleted = errors.New("match already completed")

	// ErrBattleNotTerminal reports an advance call with a battle that has
	// not finished.
	ErrBattleNotTerminal = errors.New("battle has not reached a terminal status")

	// ErrPlayerSlot reports a player-involving match whose player is not
	// in the first participant slot. Advancement derives the winner from
	// the battle result under that convention, so it is checked instead
	// of assumed.
	ErrPlayerSlot = errors.New("player participant must occupy the first match slot")
)

// Format identifies the bracket format. Only single elimination is
// implemented; the source system listed others as unreachable options.
type Format string

// FormatSingleElimination is the only supported tournament format.
const FormatSingleElimination Format = "single_elimination"

// Status is a tournament's lifecycle state.
type Status string

const (
	StatusRegistration Status = "registration"
	StatusInProgress   Status = "in_progress"
	StatusCompleted    Status = "completed"
	StatusCancelled    Status = "cancelled"
)

// MatchStatus is a match's lifecycle state.
type MatchStatus string

const (
	MatchPending    MatchStatus = "pending"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)

// RoundStatus is a round's lifecycle state.
type RoundStatus string

const (
	RoundPending    RoundStatus = "pending"
	RoundInProgress RoundStatus = "in_progress"
	RoundCompleted  RoundStatus = "completed"
)

// Participant is one tournament entrant: the human or one AI trainer.
type Participant struct {
	ID   string
	Name string
	// Team is the entrant's roster of creature definitions, 1 to 6.
	Team     []creature.Definition
	IsPlayer bool
	Wins     int
	Losses   int
	// Eliminated is set when the participant loses a match.
	Eliminated bool
}

// Strength is the participant's raw power score: the sum of all base
// statistics across the team. Used by the AI-vs-AI match simulation.
func (p *Participant) Strength() int {
	total := 0
	for _, def := range p.Team {
		total += def.Stats.Total()
	}
	return total
}

// Match is one bracket pairing. Participant2 is nil for a bye, in which
// case the match is completed at build time with Participant1 as winner.
type Match struct {
	ID     string
	Round  int
	Number int
	// Participant1 and Participant2 are nil in placeholder rounds until
	// the previous round seeds them.
	Participant1 *Participant
	Participant2 *Participant
	Status       MatchStatus
	Winner       *Participant
	// BattleID links the resolved battle for player-involving matches;
	// empty for simulated and bye matches.
	BattleID string
}

// Bye reports whether the match has a lone participant.
func (m *Match) Bye() bool {
	return m.Participant1 != nil && m.Participant2 == nil
}

// InvolvesPlayer reports whether either slot holds the human participant.
func (m *Match) InvolvesPlayer() bool {
	return (m.Participant1 != nil && m.Participant1.IsPlayer) ||
		(m.Participant2 != nil && m.Participant2.IsPlayer)
}

// Round is one bracket stage holding an ordered list of matches.
type Round struct {
	Number  int
	Matches []*Match
	Status  RoundStatus
}

// completed reports whether every match in the round has been resolved.
func (r *Round) completed() bool {
	for _, m := range r.Matches {
		if m.Status != MatchCompleted {
			return false
		}
	}
	return true
}

// Tournament holds the full state of one single-elimination tournament.
// Once Status is StatusCompleted or StatusCancelled the structure is
// immutable.
type Tournament struct {
	ID           string
	Name         string
	Format       Format
	Status       Status
	Participants []*Participant
	Rounds       []*Round
	// CurrentRound is a 1-based index into Rounds; it only advances.
	CurrentRound int
	Winner       *Participant
	CreatedAt    time.Time
	StartedAt    time.Time
	CompletedAt  time.Time

	// simBaseWeight is the deterministic share of an AI-vs-AI simulation
	// score; the remainder is random.
	simBaseWeight float64
}

// New creates a tournament over the given entrants: participants are
// shuffled into random seed order and the full bracket is built up front.
//
// Precondition: src must be non-nil.
// Postcondition: Returns a tournament in StatusRegistration with CurrentRound
// 0, or an error if the format is unsupported, fewer than two entrants were
// given, or the entrants do not include exactly one IsPlayer participant.
func New(name string, format Format, participants []*Participant, simBaseWeight float64, src dice.Source) (*Tournament, error) {
	if format != FormatSingleElimination {
		return nil, fmt.Errorf("unsupported tournament format %q", format)
	}
	if len(participants) < 2 {
		return nil, fmt.Errorf("tournament requires at least 2 participants, got %d", len(participants))
	}
	players := 0
	for _, p := range participants {
		if p.IsPlayer {
			players++
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("tournament requires exactly 1 player participant, got %d", players)
	}
	if simBaseWeight < 0 || simBaseWeight > 1 {
		return nil, fmt.Errorf("simulation base weight must be in [0, 1], got %v", simBaseWeight)
	}

	seeded := make([]*Participant, len(participants))
	copy(seeded, participants)
	dice.Shuffle(seeded, src)

	return &Tournament{
		ID:            uuid.New().String(),
		Name:          name,
		Format:        format,
		Status:        StatusRegistration,
		Participants:  seeded,
		Rounds:        BuildBracket(seeded),
		CreatedAt:     time.Now(),
		simBaseWeight: simBaseWeight,
	}, nil
}

// Active reports whether the tournament can still change state.
func (t *Tournament) Active() bool {
	return t.Status == StatusRegistration || t.Status == StatusInProgress
}

// round returns the 1-based round n, or nil.
func (t *Tournament) round(n int) *Round {
	if n < 1 || n > len(t.Rounds) {
		return nil
	}
	return t.Rounds[n-1]
}
