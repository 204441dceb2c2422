// Command unictest-msgpack round-trips one MessagePack value.
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
	return buildcfg.Main(args, codec.Msgpack[any]{}, stderr)
}
