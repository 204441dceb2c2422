// Command unictest-json round-trips one JSON document. The input must be a
// single compact value with no surrounding whitespace.
package main

import (
	"io"
	"os"

	"github.com/unkn0wn-root/unictest/codec"
	"github.com/unkn0wn-root/unictest/internal/buildcfg"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	return buildcfg.Main(args, codec.JSON[any]{}, stderr)
}
