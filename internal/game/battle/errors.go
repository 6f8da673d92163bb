package battle

import "errors"

var (
	// ErrInvalidAction reports an action that fails boundary validation:
	// an out-of-range move or switch index, or a switch onto a fainted or
	// already-active member.
	ErrInvalidAction = errors.New("invalid action")

	// ErrBattleOver reports an operation that requires an ongoing battle.
	ErrBattleOver = errors.New("battle is not ongoing")
)
