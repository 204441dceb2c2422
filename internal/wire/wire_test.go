package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func mustAppend(t *testing.T, f Frame) []byte {
	t.Helper()
	b, err := AppendFrame(nil, f)
	if err != nil {
		t.Fatalf("AppendFrame error: %v", err)
	}
	return b
}

func mustDecode(t *testing.T, b []byte) (Frame, int) {
	t.Helper()
	f, n, err := DecodeFrame(b)
	if err != nil {
		t.Fatalf("DecodeFrame error: %v", err)
	}
	return f, n
}

func TestSingleMinimalIsFiveBytes(t *testing.T) {
	enc := mustAppend(t, Frame{Kind: KindSingle})
	want := []byte{1, 0, 0, 0, 0}
	if !bytes.Equal(enc, want) {
		t.Fatalf("got %x want %x", enc, want)
	}
	f, n := mustDecode(t, enc)
	if n != 5 || f.Kind != KindSingle || len(f.Payload) != 0 {
		t.Fatalf("unexpected decode: n=%d frame=%+v", n, f)
	}
}

func TestSingleRoundTrip(t *testing.T) {
	for _, payload := range [][]byte{nil, []byte("hello"), {0, 1, 2, 3, 4}} {
		enc := mustAppend(t, Frame{Kind: KindSingle, Payload: payload})
		if len(enc) != Size(Frame{Kind: KindSingle, Payload: payload}) {
			t.Fatalf("Size disagrees with encoding: %d", len(enc))
		}
		f, n := mustDecode(t, enc)
		if n != len(enc) {
			t.Fatalf("consumed %d of %d", n, len(enc))
		}
		if !bytes.Equal(f.Payload, payload) {
			t.Fatalf("payload mismatch: got %x want %x", f.Payload, payload)
		}
	}
}

func TestDecodeLeavesTrailingBytes(t *testing.T) {
	enc := mustAppend(t, Frame{Kind: KindSingle, Payload: []byte("x")})
	size := len(enc)
	enc = append(enc, 0xDE, 0xAD)
	_, n := mustDecode(t, enc)
	if n != size {
		t.Fatalf("consumed %d, want %d", n, size)
	}
}

func TestSingleCorruptHeadersAndLengths(t *testing.T) {
	enc := mustAppend(t, Frame{Kind: KindSingle, Payload: []byte("abc")})

	badKind := append([]byte(nil), enc...)
	badKind[0] = 9
	if _, _, err := DecodeFrame(badKind); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on bad kind, got %v", err)
	}

	// vlen announces more than available
	tooLong := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(tooLong[1:5], uint32(len("abc")+1))
	if _, _, err := DecodeFrame(tooLong); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on vlen beyond buffer, got %v", err)
	}

	if _, _, err := DecodeFrame(enc[:len(enc)-1]); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on truncated buffer, got %v", err)
	}
	if _, _, err := DecodeFrame(enc[:4]); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on short header, got %v", err)
	}
	if _, _, err := DecodeFrame(nil); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on empty input, got %v", err)
	}
}

func TestSinglePayloadAliasesInput(t *testing.T) {
	enc := mustAppend(t, Frame{Kind: KindSingle, Payload: []byte("Z")})
	f, _ := mustDecode(t, enc)
	f.Payload[0] = 'Q'
	f2, _ := mustDecode(t, enc)
	if f2.Payload[0] != 'Q' {
		t.Fatalf("expected payload to alias the input buffer")
	}
	// capacity is clipped so appends cannot clobber the rest of the input
	if cap(f.Payload) != len(f.Payload) {
		t.Fatalf("payload capacity %d exceeds length %d", cap(f.Payload), len(f.Payload))
	}
}

func TestBatchRoundTrip(t *testing.T) {
	cases := [][]Item{
		nil,
		{{Key: "a", Payload: []byte("x")}},
		{
			{Key: "a", Payload: []byte("x")},
			{Key: "b", Payload: nil},
			{Key: "c", Payload: []byte{9, 8, 7}},
		},
		// duplicates are preserved in order
		{
			{Key: "dup", Payload: []byte("old")},
			{Key: "dup", Payload: []byte("new")},
		},
	}
	for _, items := range cases {
		enc := mustAppend(t, Frame{Kind: KindBatch, Items: items})
		f, n := mustDecode(t, enc)
		if n != len(enc) {
			t.Fatalf("consumed %d of %d", n, len(enc))
		}
		if len(f.Items) != len(items) {
			t.Fatalf("len mismatch: got %d want %d", len(f.Items), len(items))
		}
		for i := range items {
			if f.Items[i].Key != items[i].Key || !bytes.Equal(f.Items[i].Payload, items[i].Payload) {
				t.Fatalf("item %d mismatch: got=%+v want=%+v", i, f.Items[i], items[i])
			}
		}
	}
}

func TestBatchWrongCountAndTruncation(t *testing.T) {
	// n = 0xFFFFFFFF with no items must error, not allocate or panic
	var buf bytes.Buffer
	buf.WriteByte(byte(KindBatch))
	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], ^uint32(0))
	buf.Write(u4[:])
	if _, _, err := DecodeFrame(buf.Bytes()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on bogus n, got %v", err)
	}

	// n=1 without an item body
	buf.Reset()
	buf.WriteByte(byte(KindBatch))
	binary.BigEndian.PutUint32(u4[:], 1)
	buf.Write(u4[:])
	if _, _, err := DecodeFrame(buf.Bytes()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on truncated item list, got %v", err)
	}
}

func TestBatchCorruptLengths(t *testing.T) {
	enc := mustAppend(t, Frame{Kind: KindBatch, Items: []Item{{Key: "k", Payload: []byte("xyz")}}})

	// header: 1 kind + 4 n = 5 bytes; item: 2 klen + klen + 4 vlen + payload
	offset := 5 + 2 + 1
	badVlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint32(badVlen[offset:offset+4], uint32(len("xyz")+1))
	if _, _, err := DecodeFrame(badVlen); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on vlen beyond buffer, got %v", err)
	}

	badKlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint16(badKlen[5:7], 50)
	if _, _, err := DecodeFrame(badKlen); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on klen beyond buffer, got %v", err)
	}

	zeroKlen := append([]byte(nil), enc...)
	binary.BigEndian.PutUint16(zeroKlen[5:7], 0)
	if _, _, err := DecodeFrame(zeroKlen); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on empty key, got %v", err)
	}
}

func TestAppendRejectsUnrepresentable(t *testing.T) {
	cases := map[string]Frame{
		"empty key":          {Kind: KindBatch, Items: []Item{{Key: "", Payload: []byte("x")}}},
		"key too long":       {Kind: KindBatch, Items: []Item{{Key: strings.Repeat("a", 0x10000)}}},
		"unknown kind":       {Kind: 7},
		"zero kind":          {},
		"single with items":  {Kind: KindSingle, Items: []Item{{Key: "k"}}},
		"batch with payload": {Kind: KindBatch, Payload: []byte("p")},
	}
	for name, f := range cases {
		if _, err := AppendFrame(nil, f); !errors.Is(err, ErrInvalidFrame) {
			t.Fatalf("%s: expected ErrInvalidFrame, got %v", name, err)
		}
	}

	// boundary key length
	if _, err := AppendFrame(nil, Frame{Kind: KindBatch, Items: []Item{{Key: strings.Repeat("b", 0xFFFF)}}}); err != nil {
		t.Fatalf("boundary key length should succeed: %v", err)
	}
}

func TestAppendKeepsPrefix(t *testing.T) {
	dst := []byte("prefix")
	out, err := AppendFrame(dst, Frame{Kind: KindSingle, Payload: []byte("v")})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("prefix")) || len(out) != len("prefix")+6 {
		t.Fatalf("unexpected output %q", out)
	}
}
