package codec

import (
	"errors"
	"fmt"
)

// ErrTrailingBytes matches any *TrailingBytesError.
var ErrTrailingBytes = errors.New("codec: trailing bytes after value")

// TrailingBytesError reports input left over after a structurally valid value.
type TrailingBytesError struct {
	Offset int // bytes consumed by the value
	Len    int // input length
}

func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("codec: %d trailing byte(s) after value ending at offset %d of %d",
		e.Len-e.Offset, e.Offset, e.Len)
}

func (e *TrailingBytesError) Is(target error) bool { return target == ErrTrailingBytes }

// PrefixDecoder decodes one value from the front of b and reports how many
// bytes it used.
type PrefixDecoder[V any] interface {
	DecodePrefix(b []byte) (v V, n int, err error)
}

// Exact runs d over b and rejects the result unless all of b was used.
func Exact[V any](b []byte, d PrefixDecoder[V]) (V, error) {
	var zero V
	v, n, err := d.DecodePrefix(b)
	if err != nil {
		return zero, err
	}
	switch {
	case n < 0 || n > len(b):
		return zero, fmt.Errorf("codec: decoder reported %d consumed bytes for %d byte input", n, len(b))
	case n < len(b):
		return zero, &TrailingBytesError{Offset: n, Len: len(b)}
	}
	return v, nil
}
