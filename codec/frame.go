package codec

import (
	"io"

	"github.com/unkn0wn-root/unictest/internal/wire"
)

type (
	Frame     = wire.Frame
	FrameItem = wire.Item
	FrameKind = wire.Kind
)

const (
	FrameSingle = wire.KindSingle
	FrameBatch  = wire.KindBatch
)

var (
	ErrCorruptFrame = wire.ErrCorrupt
	ErrInvalidFrame = wire.ErrInvalidFrame
)

// Framed is the reference codec over length-prefixed frames (see
// internal/wire). Its encoding is canonical, so a successful round trip
// reproduces the input byte for byte. The zero value is ready to use.
type Framed struct{}

var (
	_ Codec[Frame]         = Framed{}
	_ PrefixDecoder[Frame] = Framed{}
)

func (Framed) DecodePrefix(b []byte) (Frame, int, error) { return wire.DecodeFrame(b) }

func (c Framed) DecodeExact(b []byte) (Frame, error) { return Exact[Frame](b, c) }

func (Framed) Encode(w io.Writer, f Frame) error {
	b, err := wire.AppendFrame(nil, f)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
