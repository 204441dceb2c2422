// Command unictest-cbor round-trips one CBOR data item. Output uses Core
// Deterministic Encoding, so canonical inputs are reproduced byte for byte.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/unkn0wn-root/unictest"
	"github.com/unkn0wn-root/unictest/codec"
	"github.com/unkn0wn-root/unictest/internal/buildcfg"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	c, err := codec.NewCBOR[any](true)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to configure codec: %v\n", err)
		return unictest.ExitAbort
	}
	return buildcfg.Main(args, c, stderr)
}
