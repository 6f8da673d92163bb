package battle

// Side identifies which team an event or action belongs to.
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

// String returns a human-readable side label.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// EventKind tags the variant of a battle Event.
type EventKind int

const (
	EventSwitch EventKind = iota
	EventDamage
	EventMessage
	EventFaint
)

// String returns a human-readable event kind label.
func (k EventKind) String() string {
	switch k {
	case EventSwitch:
		return "switch"
	case EventDamage:
		return "damage"
	case EventMessage:
		return "message"
	case EventFaint:
		return "faint"
	default:
		return "unknown"
	}
}

// Event is one immutable entry in a turn's ordered combat log. The
// presentation layer renders events verbatim; the engine never reads them
// back.
type Event struct {
	Kind EventKind
	// Side is the team the event happened to.
	Side Side
	// ParticipantIndex is the affected member's index in its team. Unused
	// (zero) for EventMessage.
	ParticipantIndex int
	// Amount is the damage dealt for EventDamage; zero otherwise.
	Amount int
	// Message is the display text for the event.
	Message string
}

// Effectiveness message text, matching the source system verbatim.
const (
	msgSuperEffective = "It's super effective!"
	msgNotEffective   = "It's not very effective..."
	msgNoEffect       = "It doesn't affect the opponent!"
)

// effectivenessMessage returns the display text for a non-neutral
// effectiveness multiplier, or "" when the multiplier is neutral.
func effectivenessMessage(mult float64) string {
	switch {
	case mult == 0:
		return msgNoEffect
	case mult < 1:
		return msgNotEffective
	case mult > 1:
		return msgSuperEffective
	default:
		return ""
	}
}
