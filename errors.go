package unictest

import (
	"errors"
	"fmt"
)

// Exit statuses returned by Main.
const (
	ExitOK            = 0
	ExitDecodeFailure = 1
	ExitAbort         = 2
)

// Kind classifies why a run failed.
type Kind uint8

const (
	KindConfiguration Kind = iota + 1 // missing arguments
	KindIO                            // open, read, create, encode, flush or close
	KindDecode                        // the codec rejected the input
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

var (
	ErrMissingInput  = errors.New("no input file provided")
	ErrMissingOutput = errors.New("no output file provided")
)

const (
	opArgs   = "parse arguments"
	opOpen   = "open input file"
	opRead   = "read input file"
	opDecode = "decode input file"
	opCreate = "create output file"
	opEncode = "encode output file"
	opFlush  = "flush output file"
	opClose  = "close output file"
)

// RunError is the failure of one transition of a run.
type RunError struct {
	Kind  Kind
	State State  // last state reached before the failing step
	Op    string // e.g. "open input file"
	Path  string // file involved, empty for argument errors
	Err   error
}

// Error renders the diagnostic line, e.g.
// "Failed to decode input file: codec: 1 trailing byte(s) ...".
func (e *RunError) Error() string {
	return fmt.Sprintf("Failed to %s: %v", e.Op, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// Recoverable reports whether the failure is the expected outcome of
// feeding the harness invalid data rather than a broken environment.
func (e *RunError) Recoverable() bool { return e.Kind == KindDecode }

// ExitCode maps the result of Run to a process exit status.
// Errors that are not a *RunError are treated as aborts.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var re *RunError
	if errors.As(err, &re) && re.Recoverable() {
		return ExitDecodeFailure
	}
	return ExitAbort
}
