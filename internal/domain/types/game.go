package types

// Side identifies a participant.
type Side int

const (
	SideNone Side = iota
	SideUser
	SideComputer
)

// String returns a display name for the side.
func (s Side) String() string {
	switch s {
	case SideUser:
		return "user"
	case SideComputer:
		return "computer"
	default:
		return "none"
	}
}

// Roll is one side's fair roll of its die.
type Roll struct {
	Draw CombinedResult
	Face int
}

// Outcome summarises a finished or exited game. Dice indices are -1 when the
// game ended before that side claimed a die.
type Outcome struct {
	FirstMover   Side
	UserDie      int
	ComputerDie  int
	UserRoll     Roll
	ComputerRoll Roll
	Winner       Side // SideNone for a tie
	Exited       bool
	ExitReason   error
}

// Tie reports whether a completed game ended level.
func (o Outcome) Tie() bool { return !o.Exited && o.Winner == SideNone }
