// Package wire implements the length-prefixed frame format used by the
// reference codec. All integers are big-endian.
//
//	single: kind(1)=1 | vlen(u32) | payload(vlen)
//	batch:  kind(1)=2 | n(u32) | { klen(u16) | key(klen) | vlen(u32) | payload(vlen) } * n
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
)

type Kind byte

const (
	KindSingle Kind = 1
	KindBatch  Kind = 2
)

const (
	headerLen  = 1 + 4
	minItemLen = 2 + 1 + 4 // klen + 1-byte key + vlen
	maxKeyLen  = math.MaxUint16
)

var (
	// ErrCorrupt is returned by DecodeFrame for bytes that are not a frame.
	ErrCorrupt = errors.New("wire: corrupt frame")
	// ErrInvalidFrame is returned by AppendFrame for values that have no encoding.
	ErrInvalidFrame = errors.New("wire: invalid frame")
)

// Item is one keyed payload of a batch frame.
type Item struct {
	Key     string
	Payload []byte
}

// Frame is a single payload or a batch of keyed payloads, selected by Kind.
// Payload is only meaningful for KindSingle and Items only for KindBatch.
type Frame struct {
	Kind    Kind
	Payload []byte
	Items   []Item
}

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindBatch:
		return "batch"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

// Size returns the encoded length of f. It does not validate f.
func Size(f Frame) int {
	n := headerLen
	switch f.Kind {
	case KindSingle:
		n += len(f.Payload)
	case KindBatch:
		for _, it := range f.Items {
			n += 2 + len(it.Key) + 4 + len(it.Payload)
		}
	}
	return n
}

// AppendFrame appends the encoding of f to dst.
func AppendFrame(dst []byte, f Frame) ([]byte, error) {
	if err := validate(f); err != nil {
		return dst, err
	}
	dst = slices.Grow(dst, Size(f))
	dst = append(dst, byte(f.Kind))

	if f.Kind == KindSingle {
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(f.Payload)))
		return append(dst, f.Payload...), nil
	}

	dst = binary.BigEndian.AppendUint32(dst, uint32(len(f.Items)))
	for _, it := range f.Items {
		dst = binary.BigEndian.AppendUint16(dst, uint16(len(it.Key)))
		dst = append(dst, it.Key...)
		dst = binary.BigEndian.AppendUint32(dst, uint32(len(it.Payload)))
		dst = append(dst, it.Payload...)
	}
	return dst, nil
}

func validate(f Frame) error {
	switch f.Kind {
	case KindSingle:
		if f.Items != nil {
			return fmt.Errorf("%w: single frame carries %d items", ErrInvalidFrame, len(f.Items))
		}
		if uint64(len(f.Payload)) > math.MaxUint32 {
			return fmt.Errorf("%w: payload of %d bytes", ErrInvalidFrame, len(f.Payload))
		}
	case KindBatch:
		if f.Payload != nil {
			return fmt.Errorf("%w: batch frame carries a payload", ErrInvalidFrame)
		}
		if uint64(len(f.Items)) > math.MaxUint32 {
			return fmt.Errorf("%w: %d items", ErrInvalidFrame, len(f.Items))
		}
		for i, it := range f.Items {
			if l := len(it.Key); l == 0 || l > maxKeyLen {
				return fmt.Errorf("%w: item %d key length %d", ErrInvalidFrame, i, l)
			}
			if uint64(len(it.Payload)) > math.MaxUint32 {
				return fmt.Errorf("%w: item %d payload of %d bytes", ErrInvalidFrame, i, len(it.Payload))
			}
		}
	default:
		return fmt.Errorf("%w: %v", ErrInvalidFrame, f.Kind)
	}
	return nil
}

// DecodeFrame decodes one frame from the front of b and reports how many
// bytes it used. Bytes after the frame are left to the caller.
// Payloads alias b.
func DecodeFrame(b []byte) (Frame, int, error) {
	if len(b) < headerLen {
		return Frame{}, 0, fmt.Errorf("%w: %d bytes is shorter than the header", ErrCorrupt, len(b))
	}
	kind := Kind(b[0])
	n := binary.BigEndian.Uint32(b[1:headerLen])
	off := headerLen

	switch kind {
	case KindSingle:
		payload, next, err := span(b, off, uint64(n))
		if err != nil {
			return Frame{}, 0, err
		}
		return Frame{Kind: KindSingle, Payload: payload}, next, nil

	case KindBatch:
		// every item takes at least minItemLen bytes; bound n before allocating
		if uint64(n) > uint64(len(b)-off)/minItemLen {
			return Frame{}, 0, fmt.Errorf("%w: %d items cannot fit in %d bytes", ErrCorrupt, n, len(b)-off)
		}
		items := make([]Item, 0, n)
		for i := 0; i < int(n); i++ {
			if off+2 > len(b) {
				return Frame{}, 0, fmt.Errorf("%w: item %d truncated", ErrCorrupt, i)
			}
			klen := binary.BigEndian.Uint16(b[off : off+2])
			off += 2
			if klen == 0 {
				return Frame{}, 0, fmt.Errorf("%w: item %d has an empty key", ErrCorrupt, i)
			}
			key, next, err := span(b, off, uint64(klen))
			if err != nil {
				return Frame{}, 0, err
			}
			off = next

			if off+4 > len(b) {
				return Frame{}, 0, fmt.Errorf("%w: item %d truncated", ErrCorrupt, i)
			}
			vlen := binary.BigEndian.Uint32(b[off : off+4])
			off += 4
			payload, next, err := span(b, off, uint64(vlen))
			if err != nil {
				return Frame{}, 0, err
			}
			off = next

			items = append(items, Item{Key: string(key), Payload: payload})
		}
		return Frame{Kind: KindBatch, Items: items}, off, nil

	default:
		return Frame{}, 0, fmt.Errorf("%w: unknown %v", ErrCorrupt, kind)
	}
}

// span returns b[off:off+n] and the offset after it.
func span(b []byte, off int, n uint64) ([]byte, int, error) {
	if n > uint64(len(b)-off) { // overflow-safe bound check
		return nil, 0, fmt.Errorf("%w: length %d exceeds remaining %d bytes", ErrCorrupt, n, len(b)-off)
	}
	end := off + int(n)
	return b[off:end:end], end, nil
}
