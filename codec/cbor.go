package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// CBOR round-trips a single CBOR data item (RFC 8949) through
// fxamacker/cbor. Build one with NewCBOR; the zero value has no modes and
// panics on use.
//
// Decoding stops at the end of the first data item and reports what is left,
// and maps carrying the same key twice are rejected.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var (
	_ Codec[struct{}]         = CBOR[struct{}]{}
	_ PrefixDecoder[struct{}] = CBOR[struct{}]{}
)

// NewCBOR returns a CBOR codec. With canonical set the output follows Core
// Deterministic Encoding, which sorts map keys and picks the shortest
// argument forms; otherwise preferred serialization without key sorting is
// used. Times are written as RFC 3339 strings in both modes.
func NewCBOR[V any](canonical bool) (CBOR[V], error) {
	opts := cbor.PreferredUnsortedEncOptions()
	if canonical {
		opts = cbor.CoreDetEncOptions()
	}
	opts.Time = cbor.TimeRFC3339Nano

	var (
		c   CBOR[V]
		err error
	)
	if c.enc, err = opts.EncMode(); err != nil {
		return CBOR[V]{}, err
	}
	if c.dec, err = (cbor.DecOptions{DupMapKey: cbor.DupMapKeyEnforcedAPF}).DecMode(); err != nil {
		return CBOR[V]{}, err
	}
	return c, nil
}

// MustCBOR panics if NewCBOR fails. Meant for package-level test fixtures.
func MustCBOR[V any](canonical bool) CBOR[V] {
	c, err := NewCBOR[V](canonical)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) DecodePrefix(b []byte) (V, int, error) {
	var v V
	rest, err := c.dec.UnmarshalFirst(b, &v)
	if err != nil {
		return v, 0, err
	}
	return v, len(b) - len(rest), nil
}

func (c CBOR[V]) DecodeExact(b []byte) (V, error) { return Exact[V](b, c) }

func (c CBOR[V]) Encode(w io.Writer, v V) error {
	return c.enc.NewEncoder(w).Encode(v)
}
