package tournament

import "github.com/cory-johannsen/arena/internal/game/battle"

// History accumulates aggregate win/loss counters across battles and
// tournaments. It is hand-off data for the persistence layer; the engine
// only produces it.
type History struct {
	BattlesWon        int
	BattlesLost       int
	BattlesForfeited  int
	TournamentsPlayed int
	TournamentsWon    int
}

// RecordBattle updates the battle counters from a terminal battle status.
// Non-terminal statuses are ignored.
func (h *History) RecordBattle(status battle.Status) {
	switch status {
	case battle.StatusWon:
		h.BattlesWon++
	case battle.StatusLost:
		h.BattlesLost++
	case battle.StatusForfeit:
		h.BattlesForfeited++
	}
}

// RecordTournament archives a finished tournament. A cancelled tournament
// counts toward nothing; a completed one counts as played, and as won only
// when the recorded winner is the human participant.
func (h *History) RecordTournament(t *Tournament) {
	if t.Status != StatusCompleted {
		return
	}
	h.TournamentsPlayed++
	if t.Winner != nil && t.Winner.IsPlayer {
		h.TournamentsWon++
	}
}
