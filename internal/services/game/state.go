package game

// State is a step of the game state machine.
type State int

const (
	StateInit State = iota
	StateDetermineFirst
	StateSelectDice
	StateRoll
	StateResult
	StateDone
	StateExit
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateDetermineFirst:
		return "DETERMINE_FIRST"
	case StateSelectDice:
		return "SELECT_DICE"
	case StateRoll:
		return "ROLL"
	case StateResult:
		return "RESULT"
	case StateDone:
		return "DONE"
	case StateExit:
		return "EXIT"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether the machine stops in s.
func (s State) Terminal() bool { return s == StateDone || s == StateExit }
