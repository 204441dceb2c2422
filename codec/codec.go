// Package codec defines the contract of the codec under test and adapters
// that satisfy it on top of common serialization libraries.
//
// A harness binary is built around exactly one Codec[V]; V is fixed at
// compile time and never inspected by the harness.
package codec

import "io"

// Codec decodes a complete input into V and writes V back out.
//
// DecodeExact must consume all of b: bytes left over after an otherwise
// valid value are a decode error. Encode writes the encoding of v to w and
// fails if v cannot be represented.
type Codec[V any] interface {
	DecodeExact(b []byte) (V, error)
	Encode(w io.Writer, v V) error
}
