package codec

import (
	"bytes"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Encoding sorts map keys and uses the smallest integer representation, so
// values decoded into interface types re-encode canonically.
// Use `msgpack:"fieldName"` tags for explicit control over struct fields.
type Msgpack[V any] struct{}

var (
	_ Codec[struct{}]         = Msgpack[struct{}]{}
	_ PrefixDecoder[struct{}] = Msgpack[struct{}]{}
)

// DecodePrefix decodes one msgpack value from the front of b.
func (Msgpack[V]) DecodePrefix(b []byte) (V, int, error) {
	var v V
	// bytes.Reader is an io.ByteScanner, so the decoder reads it directly
	// and Len reports exactly what the value left behind.
	r := bytes.NewReader(b)
	if err := msgpack.NewDecoder(r).Decode(&v); err != nil {
		return v, 0, err
	}
	return v, len(b) - r.Len(), nil
}

func (c Msgpack[V]) DecodeExact(b []byte) (V, error) { return Exact[V](b, c) }

func (Msgpack[V]) Encode(w io.Writer, v V) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	return enc.Encode(v)
}
