package unictest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/unkn0wn-root/unictest/codec"
)

// Options tune a run. The zero value is ready to use.
type Options struct {
	Stderr     io.Writer   // diagnostics; nil => os.Stderr
	Logger     Logger      // nil => NopLogger
	Fs         afero.Fs    // nil => the OS filesystem
	OutputPerm os.FileMode // 0 => 0644, applied when the output is created
	BufferSize int         // output buffer; 0 => 64 KiB
}

// Run performs one round trip. args follows os.Args: args[1] is the input
// path and args[2] the output path.
//
// It returns nil on success or a *RunError naming the failed step. The
// output file is created only after the input decoded successfully.
func Run[V any](args []string, c codec.Codec[V], opts Options) error {
	r, err := newRunner(c, opts)
	if err != nil {
		return err
	}
	return r.run(args)
}

// Main is Run followed by reporting: it prints the diagnostic of a failed
// run to Options.Stderr and returns the process exit status.
func Main[V any](args []string, c codec.Codec[V], opts Options) int {
	err := Run(args, c, opts)
	if err == nil {
		return ExitOK
	}

	w := coalesce[io.Writer](opts.Stderr, os.Stderr)
	fmt.Fprintln(w, err)

	var re *RunError
	if errors.As(err, &re) && re.Kind == KindConfiguration {
		fmt.Fprintf(w, "Usage: %s <input-file> <output-file>\n", programName(args))
	}
	return ExitCode(err)
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return defaultProgram
	}
	return filepath.Base(args[0])
}
