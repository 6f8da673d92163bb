package battle

import "fmt"

// ActionType identifies what a side intends to do on a turn.
// The zero value (ActionUnknown) is intentionally invalid.
type ActionType int

const (
	ActionUnknown ActionType = iota // zero value; intentionally invalid
	ActionAttack
	ActionSwitch
)

// String returns the human-readable name of the ActionType.
func (a ActionType) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Action is one side's submitted choice for a turn: attack with a move from
// the active participant's snapshot, or switch the active index.
type Action struct {
	Type ActionType
	// MoveIndex indexes the active participant's Moves for ActionAttack.
	MoveIndex int
	// TargetIndex indexes the team's Members for ActionSwitch.
	TargetIndex int
}

// Attack returns an attack action for the move at moveIndex.
func Attack(moveIndex int) Action {
	return Action{Type: ActionAttack, MoveIndex: moveIndex}
}

// Switch returns a switch action targeting the member at targetIndex.
func Switch(targetIndex int) Action {
	return Action{Type: ActionSwitch, TargetIndex: targetIndex}
}

// validateAction checks an action against the team it will be applied to.
// Out-of-range indices and switches onto fainted or already-active members
// are rejected here, at the turn boundary, instead of miscomputing later.
//
// Postcondition: Returns nil iff the action can be applied to team as-is;
// otherwise an error wrapping ErrInvalidAction.
func validateAction(team *Team, a Action) error {
	switch a.Type {
	case ActionAttack:
		moves := team.Active().Moves
		if a.MoveIndex < 0 || a.MoveIndex >= len(moves) {
			return fmt.Errorf("%w: move index %d out of range [0, %d)", ErrInvalidAction, a.MoveIndex, len(moves))
		}
	case ActionSwitch:
		if a.TargetIndex < 0 || a.TargetIndex >= len(team.Members) {
			return fmt.Errorf("%w: switch target %d out of range [0, %d)", ErrInvalidAction, a.TargetIndex, len(team.Members))
		}
		if team.Members[a.TargetIndex].Fainted() {
			return fmt.Errorf("%w: switch target %d has fainted", ErrInvalidAction, a.TargetIndex)
		}
		if a.TargetIndex == team.ActiveIndex {
			return fmt.Errorf("%w: switch target %d is already active", ErrInvalidAction, a.TargetIndex)
		}
	default:
		return fmt.Errorf("%w: unknown action type %d", ErrInvalidAction, a.Type)
	}
	return nil
}
