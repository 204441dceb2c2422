package codec

import (
	"errors"
	"fmt"
	"io"
)

// ErrTooLarge is returned by Limit for inputs above MaxDecode.
var ErrTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec to enforce a maximum input size at DecodeExact
// time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
type Limit[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[V]
	// MaxDecode is the largest accepted input in bytes. Larger inputs are
	// rejected without invoking Inner.
	MaxDecode int
}

func (c Limit[V]) Encode(w io.Writer, v V) error { return c.Inner.Encode(w, v) }

func (c Limit[V]) DecodeExact(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.DecodeExact(b)
}
