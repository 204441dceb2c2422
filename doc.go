// Package unictest is a round-trip harness for binary codecs.
//
// One invocation reads an input file, decodes it with a codec that must
// consume every byte (Codec.DecodeExact), re-encodes the value and writes it
// to an output file. External tooling runs a harness binary over a corpus and
// compares outputs with inputs or golden files.
//
// Each binary under cmd/ is built around exactly one codec:
//
//	func main() {
//	    os.Exit(unictest.Main(os.Args, codec.Framed{}, unictest.Options{}))
//	}
//
// Exit status:
//
//	0  decode and encode succeeded, output flushed
//	1  decode failed (malformed or inexact input); output untouched
//	2  missing arguments or an I/O failure
//
// A failed decode never creates or modifies the output file.
package unictest
