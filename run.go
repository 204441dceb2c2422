package unictest

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/unkn0wn-root/unictest/codec"
)

type runner[V any] struct {
	codec   codec.Codec[V]
	fs      afero.Fs
	log     Logger
	perm    os.FileMode
	bufSize int

	state State
}

func newRunner[V any](c codec.Codec[V], opts Options) (*runner[V], error) {
	if c == nil {
		return nil, errors.New("unictest: codec is required")
	}

	r := &runner[V]{codec: c, state: StateStart}

	// defaults
	r.fs = coalesce[afero.Fs](opts.Fs, afero.NewOsFs())
	r.log = coalesce[Logger](opts.Logger, NopLogger{})
	r.perm = coalesce(opts.OutputPerm, defaultOutputPerm)
	r.bufSize = coalesce(opts.BufferSize, defaultBufferSize)
	if r.bufSize < 0 {
		r.bufSize = defaultBufferSize
	}
	return r, nil
}

func (r *runner[V]) run(args []string) error {
	in, out, err := r.parseArgs(args)
	if err != nil {
		return r.fail(KindConfiguration, opArgs, "", err)
	}
	r.advance(StateArgsParsed, Fields{"input": in, "output": out})

	b, err := r.readInput(in)
	if err != nil {
		return err
	}

	v, err := r.codec.DecodeExact(b)
	if err != nil {
		return r.fail(KindDecode, opDecode, in, err)
	}
	r.advance(StateDecoded, nil)

	if err := r.writeOutput(out, v); err != nil {
		return err
	}
	r.advance(StateDone, nil)
	return nil
}

// parseArgs never touches the filesystem.
func (r *runner[V]) parseArgs(args []string) (in, out string, err error) {
	if len(args) < 2 || args[1] == "" {
		return "", "", ErrMissingInput
	}
	if len(args) < 3 || args[2] == "" {
		return "", "", ErrMissingOutput
	}
	if len(args) > 3 {
		r.log.Warn("ignoring extra arguments", Fields{"extra": args[3:]})
	}
	return args[1], args[2], nil
}

// readInput returns the whole input; the handle is closed before returning.
func (r *runner[V]) readInput(path string) ([]byte, error) {
	f, err := r.fs.Open(path)
	if err != nil {
		return nil, r.fail(KindIO, opOpen, path, err)
	}
	defer f.Close() // read-only, nothing to lose
	r.advance(StateInputOpened, nil)

	b, err := afero.ReadAll(f)
	if err != nil {
		return nil, r.fail(KindIO, opRead, path, err)
	}
	r.advance(StateInputRead, Fields{"bytes": len(b)})
	return b, nil
}

func (r *runner[V]) writeOutput(path string, v V) (err error) {
	f, err := r.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, r.perm)
	if err != nil {
		return r.fail(KindIO, opCreate, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = r.fail(KindIO, opClose, path, cerr)
		}
	}()
	r.advance(StateOutputCreated, nil)

	cw := &countingWriter{w: f}
	bw := bufio.NewWriterSize(cw, r.bufSize)
	if err := r.codec.Encode(bw, v); err != nil {
		return r.fail(KindIO, opEncode, path, err)
	}
	r.advance(StateEncoded, nil)

	if err := bw.Flush(); err != nil {
		return r.fail(KindIO, opFlush, path, err)
	}
	if err := syncRegular(f); err != nil {
		return r.fail(KindIO, opFlush, path, err)
	}
	r.advance(StateFlushed, Fields{"bytes": cw.n})
	return nil
}

// syncRegular fsyncs f unless it is a device or pipe, where fsync is
// meaningless and often unsupported (e.g. /dev/null).
func syncRegular(f afero.File) error {
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return nil
	}
	return f.Sync()
}

func (r *runner[V]) advance(s State, f Fields) {
	r.state = s
	fields := Fields{"state": s.String()}
	for k, v := range f {
		fields[k] = v
	}
	r.log.Debug("unictest.transition", fields)
}

func (r *runner[V]) fail(kind Kind, op, path string, err error) *RunError {
	re := &RunError{Kind: kind, State: r.state, Op: op, Path: path, Err: err}
	if re.Recoverable() {
		r.log.Warn("unictest.decode_rejected", re.fields())
	} else {
		r.log.Error("unictest.abort", re.fields())
	}
	return re
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
