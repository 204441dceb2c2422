package unictest

import "os"

const (
	defaultOutputPerm os.FileMode = 0o644
	defaultBufferSize             = 64 << 10
	defaultProgram                = "unictest"
)

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
