package codec

import (
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
)

var (
	// ErrUnknownFields is returned for messages carrying fields the schema does not know.
	ErrUnknownFields = errors.New("codec: unknown protobuf fields")
	// ErrNonCanonical is returned when the input is longer or shorter than
	// the deterministic encoding of the message it decodes to.
	ErrNonCanonical = errors.New("codec: non-canonical protobuf encoding")
)

// Protobuf is a Codec for one concrete message type.
//
// Protobuf has no end-of-message marker, so the whole input is always parsed.
// Exactness is enforced by rejecting unknown top-level fields and inputs whose
// length differs from the deterministic size of the decoded message (repeated
// scalar fields, padded varints). Encode uses deterministic marshaling.
type Protobuf[T proto.Message] struct {
	new     func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })
	marshal proto.MarshalOptions
}

var _ Codec[proto.Message] = Protobuf[proto.Message]{}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor, marshal: proto.MarshalOptions{Deterministic: true}}
}

func (c Protobuf[T]) DecodeExact(b []byte) (T, error) {
	var zero T
	m := c.new()
	if err := proto.Unmarshal(b, m); err != nil {
		return zero, err
	}
	if u := m.ProtoReflect().GetUnknown(); len(u) > 0 {
		return zero, fmt.Errorf("%w: %d byte(s)", ErrUnknownFields, len(u))
	}
	if n := c.marshal.Size(m); n != len(b) {
		return zero, fmt.Errorf("%w: message encodes to %d bytes, input has %d", ErrNonCanonical, n, len(b))
	}
	return m, nil
}

func (c Protobuf[T]) Encode(w io.Writer, m T) error {
	b, err := c.marshal.Marshal(m)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
