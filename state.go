package unictest

import "fmt"

// State is a step of one harness run. A run moves forward through the
// states in declaration order or stops with a *RunError.
type State uint8

const (
	StateStart State = iota
	StateArgsParsed
	StateInputOpened
	StateInputRead
	StateDecoded
	StateOutputCreated
	StateEncoded
	StateFlushed
	StateDone
)

var stateNames = [...]string{
	StateStart:         "start",
	StateArgsParsed:    "args_parsed",
	StateInputOpened:   "input_opened",
	StateInputRead:     "input_read",
	StateDecoded:       "decoded",
	StateOutputCreated: "output_created",
	StateEncoded:       "encoded",
	StateFlushed:       "flushed",
	StateDone:          "done",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}
