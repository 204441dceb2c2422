// Command unictest-proto round-trips one google.protobuf.Struct message in
// binary wire format.
package main

import (
	"io"
	"os"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/unictest/codec"
	"github.com/unkn0wn-root/unictest/internal/buildcfg"
)

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	c := codec.NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })
	return buildcfg.Main(args, c, stderr)
}
