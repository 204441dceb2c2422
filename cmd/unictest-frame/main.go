// Command unictest-frame round-trips one file through the reference frame
// codec.
//
//	unictest-frame <input-file> <output-file>
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
	return buildcfg.Main(args, codec.Framed{}, stderr)
}
