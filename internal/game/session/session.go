// Package session owns the engine's live state: at most one current battle
// and one current tournament per session, with the re-entrancy guards the
// turn and advancement protocols require. It replaces the source system's
// process-wide singletons with explicit state so multiple sessions can
// coexist and tests stay deterministic.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/battle"
	"github.com/cory-johannsen/arena/internal/game/creature"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/tournament"
)

var (
	// ErrBattleActive reports an attempt to start a battle while one is
	// still ongoing.
	ErrBattleActive = errors.New("a battle is already in progress")

	// ErrBattleNotFound reports an action submitted with no battle in
	// place.
	ErrBattleNotFound = errors.New("no battle in progress")

	// ErrTournamentActive reports an attempt to create a tournament while
	// one is still active.
	ErrTournamentActive = errors.New("a tournament is already active")

	// ErrTournamentNotFound reports a tournament operation with no
	// tournament in place.
	ErrTournamentNotFound = errors.New("no tournament in progress")
)

// Session is the application-level context for one player. A Session is
// confined to a single goroutine: engine operations are synchronous state
// transitions, and the busy guards exist to swallow re-entrant submissions
// from event callbacks, not to synchronise goroutines.
type Session struct {
	logger        *zap.Logger
	src           dice.Source
	aiConfig      ai.Config
	simBaseWeight float64

	battle     *battle.Battle
	tournament *tournament.Tournament
	history    tournament.History

	// turnBusy guards ExecutePlayerAction against re-entrant submission
	// while a turn resolves; tournamentBusy does the same for Advance.
	turnBusy       bool
	tournamentBusy bool
}

// New creates a Session.
//
// Precondition: logger and src must be non-nil; simBaseWeight must be in
// [0, 1].
func New(aiConfig ai.Config, simBaseWeight float64, logger *zap.Logger, src dice.Source) *Session {
	if logger == nil {
		panic("session.New: logger must not be nil")
	}
	if src == nil {
		panic("session.New: src must not be nil")
	}
	return &Session{
		logger:        logger,
		src:           src,
		aiConfig:      aiConfig,
		simBaseWeight: simBaseWeight,
	}
}

// CurrentBattle returns the session's battle, or nil. The returned snapshot
// is for rendering; callers mutate it only through Session operations.
func (s *Session) CurrentBattle() *battle.Battle { return s.battle }

// CurrentTournament returns the session's tournament, or nil.
func (s *Session) CurrentTournament() *tournament.Tournament { return s.tournament }

// History returns the aggregate win/loss counters accumulated so far.
func (s *Session) History() tournament.History { return s.history }

// StartBattle snapshots both rosters and makes the new battle current.
//
// Postcondition: Returns the ongoing battle, or ErrBattleActive if the
// current battle has not reached a terminal status, or a roster validation
// error before any state changes.
func (s *Session) StartBattle(playerRoster, opponentRoster []creature.Definition) (*battle.Battle, error) {
	if s.battle != nil && !s.battle.Over() {
		return nil, ErrBattleActive
	}
	b, err := battle.New(playerRoster, opponentRoster)
	if err != nil {
		return nil, err
	}
	s.battle = b
	s.logger.Info("battle started",
		zap.String("battle_id", b.ID),
		zap.Int("player_team_size", len(b.PlayerTeam.Members)),
		zap.Int("opponent_team_size", len(b.OpponentTeam.Members)),
	)
	return b, nil
}

// ExecutePlayerAction submits the player's action for one turn. The
// opponent's action is committed first from the pre-turn snapshots via the
// AI selector, then the full turn resolves.
//
// A call while a turn is already resolving is a silent no-op (zero Turn,
// nil error) per the busy-guard contract; a missing or finished battle and
// invalid actions surface as errors.
//
// Postcondition: On success the returned Turn has been appended to the
// battle, and terminal statuses have been recorded in the history. The busy
// guard is released on every path.
func (s *Session) ExecutePlayerAction(action battle.Action) (battle.Turn, error) {
	if s.turnBusy {
		return battle.Turn{}, nil
	}
	if s.battle == nil {
		return battle.Turn{}, ErrBattleNotFound
	}
	if s.battle.Over() {
		return battle.Turn{}, battle.ErrBattleOver
	}

	s.turnBusy = true
	defer func() { s.turnBusy = false }()

	opponentAction := ai.SelectAction(s.battle.OpponentTeam, s.battle.PlayerTeam, s.aiConfig)

	turn, err := s.battle.ExecuteTurn(action, opponentAction, s.src)
	if err != nil {
		return battle.Turn{}, err
	}

	s.logger.Debug("turn resolved",
		zap.String("battle_id", s.battle.ID),
		zap.Int("turn", turn.Number),
		zap.Stringer("player_action", action.Type),
		zap.Stringer("opponent_action", opponentAction.Type),
		zap.Int("events", len(turn.Events)),
	)

	if s.battle.Over() {
		s.history.RecordBattle(s.battle.Status)
		s.logger.Info("battle finished",
			zap.String("battle_id", s.battle.ID),
			zap.Stringer("status", s.battle.Status),
			zap.Int("turns", len(s.battle.Turns)),
		)
	}
	return turn, nil
}

// ForfeitBattle ends the current battle immediately as a loss.
//
// Postcondition: The battle is terminal with StatusForfeit and the forfeit
// is recorded in the history, or an error if no ongoing battle exists.
func (s *Session) ForfeitBattle() error {
	if s.battle == nil {
		return ErrBattleNotFound
	}
	if err := s.battle.Forfeit(); err != nil {
		return err
	}
	s.history.RecordBattle(battle.StatusForfeit)
	s.logger.Info("battle forfeited", zap.String("battle_id", s.battle.ID))
	return nil
}

// SwitchActive moves a side's active index outside the turn protocol, for
// forced-switch flows. The target is validated.
func (s *Session) SwitchActive(side battle.Side, index int) error {
	if s.battle == nil {
		return ErrBattleNotFound
	}
	return s.battle.SwitchActive(side, index)
}

// CreateTournament builds a tournament around the human participant plus
// participantCount-1 archetype-assigned AI trainers drawn from pool, and
// makes it current.
//
// Postcondition: Returns the tournament in registration, or an error before
// any state changes (active tournament, too few participants, invalid
// rosters).
func (s *Session) CreateTournament(name string, format tournament.Format, playerName string, playerRoster []creature.Definition, participantCount int, pool []creature.Definition, archetypes []*tournament.Archetype) (*tournament.Tournament, error) {
	if s.tournament != nil && s.tournament.Active() {
		return nil, ErrTournamentActive
	}
	if participantCount < 2 {
		return nil, fmt.Errorf("tournament requires at least 2 participants, got %d", participantCount)
	}
	if len(playerRoster) == 0 || len(playerRoster) > battle.MaxTeamSize {
		return nil, fmt.Errorf("player roster must have 1-%d creatures, got %d", battle.MaxTeamSize, len(playerRoster))
	}
	for _, def := range playerRoster {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("player roster: %w", err)
		}
	}

	player := &tournament.Participant{
		ID:       uuid.NewString(),
		Name:     playerName,
		Team:     playerRoster,
		IsPlayer: true,
	}
	ais, err := tournament.BuildAIParticipants(participantCount-1, pool, archetypes, s.src)
	if err != nil {
		return nil, err
	}

	t, err := tournament.New(name, format, append([]*tournament.Participant{player}, ais...), s.simBaseWeight, s.src)
	if err != nil {
		return nil, err
	}
	s.tournament = t
	s.logger.Info("tournament created",
		zap.String("tournament_id", t.ID),
		zap.String("name", t.Name),
		zap.Int("participants", len(t.Participants)),
		zap.Int("rounds", len(t.Rounds)),
	)
	return t, nil
}

// StartTournament transitions the current tournament out of registration,
// simulating the AI-only portion of round 1.
func (s *Session) StartTournament() error {
	if s.tournament == nil {
		return ErrTournamentNotFound
	}
	if err := s.tournament.Start(s.src); err != nil {
		return err
	}
	s.logger.Info("tournament started",
		zap.String("tournament_id", s.tournament.ID),
		zap.Int("current_round", s.tournament.CurrentRound),
	)
	s.finishTournamentIfDone()
	return nil
}

// AdvanceTournament resolves the named match from the current battle's
// terminal status and advances rounds as far as they complete.
//
// A call while an advancement is already resolving is a silent no-op per
// the busy-guard contract. The busy guard is released on every path.
func (s *Session) AdvanceTournament(matchID string) error {
	if s.tournamentBusy {
		return nil
	}
	if s.tournament == nil {
		return ErrTournamentNotFound
	}
	if s.battle == nil {
		return ErrBattleNotFound
	}

	s.tournamentBusy = true
	defer func() { s.tournamentBusy = false }()

	if err := s.tournament.Advance(matchID, s.battle.Status, s.battle.ID, s.src); err != nil {
		return err
	}
	s.logger.Info("tournament advanced",
		zap.String("tournament_id", s.tournament.ID),
		zap.String("match_id", matchID),
		zap.Int("current_round", s.tournament.CurrentRound),
	)
	s.finishTournamentIfDone()
	return nil
}

// CancelTournament archives the current tournament without a winner. The
// history counters do not change.
func (s *Session) CancelTournament() error {
	if s.tournament == nil {
		return ErrTournamentNotFound
	}
	if err := s.tournament.Cancel(); err != nil {
		return err
	}
	s.logger.Info("tournament cancelled", zap.String("tournament_id", s.tournament.ID))
	return nil
}

// finishTournamentIfDone archives a completed tournament into the history.
func (s *Session) finishTournamentIfDone() {
	t := s.tournament
	if t == nil || t.Status != tournament.StatusCompleted {
		return
	}
	s.history.RecordTournament(t)
	winner := "unknown"
	if t.Winner != nil {
		winner = t.Winner.Name
	}
	s.logger.Info("tournament completed",
		zap.String("tournament_id", t.ID),
		zap.String("winner", winner),
	)
}
