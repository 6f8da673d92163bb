package tournament

import "github.com/google/uuid"

// BuildBracket constructs the full single-elimination round tree for the
// given seeded participants. Round 1 pairs entrants two at a time in seed
// order; later rounds hold placeholder matches that advancement fills with
// winners. An unpaired trailing entrant receives a bye, which is completed
// immediately with the lone participant as winner.
//
// Precondition: participants must have at least 2 entries.
// Postcondition: Round numbers are 1-based and sequential; round n has
// ceil(slots/2) matches where slots halves (rounding up) each round; the
// final round has exactly 1 match.
func BuildBracket(participants []*Participant) []*Round {
	var rounds []*Round

	slots := len(participants)
	roundNumber := 1
	for slots > 1 {
		matchCount := (slots + 1) / 2
		round := &Round{
			Number: roundNumber,
			Status: RoundPending,
		}
		for i := 0; i < matchCount; i++ {
			m := &Match{
				ID:     uuid.New().String(),
				Round:  roundNumber,
				Number: i + 1,
				Status: MatchPending,
			}
			if roundNumber == 1 {
				m.Participant1 = participants[i*2]
				if i*2+1 < len(participants) {
					m.Participant2 = participants[i*2+1]
				}
				normalizePlayerSlot(m)
				completeBye(m)
			}
			round.Matches = append(round.Matches, m)
		}
		rounds = append(rounds, round)
		slots = matchCount
		roundNumber++
	}

	return rounds
}

// normalizePlayerSlot swaps a match's slots so the human participant, when
// present, occupies Participant1. Advance derives winners from battle status
// under that convention, so it is established here rather than assumed.
func normalizePlayerSlot(m *Match) {
	if m.Participant2 != nil && m.Participant2.IsPlayer {
		m.Participant1, m.Participant2 = m.Participant2, m.Participant1
	}
}

// completeBye resolves a bye match in place: the lone participant advances
// without a contested match, so no win or loss is counted.
//
// Postcondition: If m is a bye, m.Status == MatchCompleted and m.Winner ==
// m.Participant1; otherwise m is untouched.
func completeBye(m *Match) {
	if !m.Bye() {
		return
	}
	m.Status = MatchCompleted
	m.Winner = m.Participant1
}
