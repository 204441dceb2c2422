package codec

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrLeadingWhitespace is returned by JSON for input that starts with whitespace.
var ErrLeadingWhitespace = errors.New("codec: whitespace before JSON value")

// JSON is a Codec over json-iterator in standard library compatible mode.
// The zero value is ready to use.
//
// JSON text may legally be padded with whitespace; the exact contract does
// not allow it, so padding on either side is rejected. Encode writes compact
// JSON with sorted map keys and no trailing newline.
type JSON[V any] struct{}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) DecodeExact(b []byte) (V, error) {
	var v V
	if len(b) == 0 {
		return v, fmt.Errorf("codec: empty JSON input: %w", io.ErrUnexpectedEOF)
	}
	if isJSONSpace(b[0]) {
		return v, ErrLeadingWhitespace
	}
	if end := trimJSONSpace(b); end < len(b) {
		return v, &TrailingBytesError{Offset: end, Len: len(b)}
	}
	// Unmarshal itself rejects anything but whitespace after the value.
	if err := json.Unmarshal(b, &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

func (JSON[V]) Encode(w io.Writer, v V) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func trimJSONSpace(b []byte) int {
	end := len(b)
	for end > 0 && isJSONSpace(b[end-1]) {
		end--
	}
	return end
}
