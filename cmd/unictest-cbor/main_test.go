package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunRoundTripsCanonicalCBOR(t *testing.T) {
	// {"a": 1, "b": [true, null]}
	in := []byte{0xa2, 0x61, 'a', 0x01, 0x61, 'b', 0x82, 0xf5, 0xf6}
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "in.cbor"), filepath.Join(dir, "out.cbor")
	require.NoError(t, os.WriteFile(src, in, 0o644))

	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"unictest-cbor", src, dst}, &stderr), stderr.String())

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestRunRejectsSecondItem(t *testing.T) {
	dir := t.TempDir()
	src, dst := filepath.Join(dir, "in.cbor"), filepath.Join(dir, "out.cbor")
	require.NoError(t, os.WriteFile(src, []byte{0x01, 0x02}, 0o644))

	var stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"unictest-cbor", src, dst}, &stderr))
	require.Contains(t, stderr.String(), "Failed to decode input file: ")
	_, err := os.Stat(dst)
	require.True(t, os.IsNotExist(err))
}
