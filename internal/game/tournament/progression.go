package tournament

import (
	"fmt"
	"time"

	"github.com/cory-johannsen/arena/internal/game/battle"
	"github.com/cory-johannsen/arena/internal/game/dice"
)

// Start transitions the tournament from registration to in-progress,
// immediately simulating every round-1 match in which no human is involved.
// If that leaves the round fully resolved (for example when the player drew
// the bye), following rounds are seeded and simulated in the same call.
//
// Precondition: src must be non-nil.
// Postcondition: Status == StatusInProgress (or StatusCompleted if every
// match resolved without the player), CurrentRound >= 1, or an
// ErrTournamentState wrap if the tournament was not in registration.
func (t *Tournament) Start(src dice.Source) error {
	if t.Status != StatusRegistration {
		return fmt.Errorf("%w: cannot start from %q", ErrTournamentState, t.Status)
	}

	t.Status = StatusInProgress
	t.StartedAt = time.Now()
	t.CurrentRound = 1
	t.round(1).Status = RoundInProgress

	t.simulateRound(t.round(1), src)
	t.advanceCompletedRounds(src)
	return nil
}

// Advance resolves the player-involving match identified by matchID from a
// finished battle and, when that closes the current round, seeds the next
// round (simulating any new AI-vs-AI pairings) or completes the tournament.
//
// The winner is derived from battleStatus under the convention that the
// human occupies the first match slot: a won battle advances Participant1,
// any other terminal status advances Participant2. The convention is
// checked, not assumed.
//
// Precondition: src must be non-nil; battleStatus must be terminal.
// Postcondition: The named match is completed exactly once (calling
// Advance again for the same match returns ErrMatchCompleted and changes
// no counters) and CurrentRound/Status reflect any resulting advancement.
func (t *Tournament) Advance(matchID string, battleStatus battle.Status, battleID string, src dice.Source) error {
	if t.Status != StatusInProgress {
		return fmt.Errorf("%w: cannot advance from %q", ErrTournamentState, t.Status)
	}
	if battleStatus == battle.StatusOngoing {
		return ErrBattleNotTerminal
	}

	round := t.round(t.CurrentRound)
	var match *Match
	for _, m := range round.Matches {
		if m.ID == matchID {
			match = m
			break
		}
	}
	if match == nil {
		return fmt.Errorf("%w: %q in round %d", ErrMatchNotFound, matchID, t.CurrentRound)
	}
	if match.Status == MatchCompleted {
		return fmt.Errorf("%w: %q", ErrMatchCompleted, matchID)
	}
	if match.Participant1 == nil || match.Participant2 == nil {
		return fmt.Errorf("%w: %q is not fully seeded", ErrMatchNotFound, matchID)
	}
	if !match.Participant1.IsPlayer {
		return fmt.Errorf("%w: match %q", ErrPlayerSlot, matchID)
	}

	winner, loser := match.Participant2, match.Participant1
	if battleStatus == battle.StatusWon {
		winner, loser = match.Participant1, match.Participant2
	}
	winner.Wins++
	loser.Losses++
	loser.Eliminated = true
	match.Status = MatchCompleted
	match.Winner = winner
	match.BattleID = battleID

	t.advanceCompletedRounds(src)
	return nil
}

// Cancel archives an active tournament without recording a winner.
//
// Postcondition: Status == StatusCancelled and CompletedAt is set, or an
// ErrTournamentState wrap if the tournament was already terminal.
func (t *Tournament) Cancel() error {
	if !t.Active() {
		return fmt.Errorf("%w: cannot cancel from %q", ErrTournamentState, t.Status)
	}
	t.Status = StatusCancelled
	t.CompletedAt = time.Now()
	return nil
}

// PlayerMatch returns the pending or in-progress match involving the human
// participant in the current round, or nil when the player has none (bye or
// eliminated).
func (t *Tournament) PlayerMatch() *Match {
	round := t.round(t.CurrentRound)
	if round == nil {
		return nil
	}
	for _, m := range round.Matches {
		if m.Status != MatchCompleted && m.InvolvesPlayer() {
			return m
		}
	}
	return nil
}

// advanceCompletedRounds repeatedly closes the current round and seeds the
// next one while every match in the current round is resolved. Seeding can
// itself complete a round (byes and AI-vs-AI simulations), hence the loop.
func (t *Tournament) advanceCompletedRounds(src dice.Source) {
	for {
		round := t.round(t.CurrentRound)
		if round == nil || !round.completed() {
			return
		}
		round.Status = RoundCompleted

		if t.CurrentRound == len(t.Rounds) {
			t.Status = StatusCompleted
			t.Winner = round.Matches[0].Winner
			t.CompletedAt = time.Now()
			return
		}

		next := t.round(t.CurrentRound + 1)
		t.seedRound(round, next)
		next.Status = RoundInProgress
		t.CurrentRound++

		t.simulateRound(next, src)
	}
}

// seedRound fills next's match slots with round's winners in match order.
// A trailing winner without an opponent becomes a bye and advances
// immediately.
func (t *Tournament) seedRound(round, next *Round) {
	var winners []*Participant
	for _, m := range round.Matches {
		winners = append(winners, m.Winner)
	}
	for i, m := range next.Matches {
		if i*2 < len(winners) {
			m.Participant1 = winners[i*2]
		}
		if i*2+1 < len(winners) {
			m.Participant2 = winners[i*2+1]
		}
		normalizePlayerSlot(m)
		completeBye(m)
	}
}

// simulateRound resolves every fully seeded, pending match in the round
// that involves no human participant.
func (t *Tournament) simulateRound(round *Round, src dice.Source) {
	for _, m := range round.Matches {
		if m.Status != MatchPending || m.InvolvesPlayer() {
			continue
		}
		if m.Participant1 == nil || m.Participant2 == nil {
			continue
		}
		t.simulateMatch(m, src)
	}
}

// simulateMatch resolves an AI-vs-AI match by lightweight power comparison:
// each side scores simBaseWeight of its strength deterministically plus a
// random share of the remainder, and the higher score wins. No battle is
// played or attached.
func (t *Tournament) simulateMatch(m *Match, src dice.Source) {
	s1 := float64(m.Participant1.Strength())
	s2 := float64(m.Participant2.Strength())
	score1 := t.simBaseWeight*s1 + src.Float64()*(1-t.simBaseWeight)*s1
	score2 := t.simBaseWeight*s2 + src.Float64()*(1-t.simBaseWeight)*s2

	winner, loser := m.Participant1, m.Participant2
	if score2 > score1 {
		winner, loser = m.Participant2, m.Participant1
	}
	winner.Wins++
	loser.Losses++
	loser.Eliminated = true
	m.Status = MatchCompleted
	m.Winner = winner
}
