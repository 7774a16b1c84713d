package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// dumpCmd implements the "dump" command: print every word in the
// dictionary, one per line, optionally restricted to a prefix. This is
// the Go equivalent of the original dump_dictionary diagnostic tool.
type dumpCmd struct {
	dictPath string
}

func (*dumpCmd) Name() string     { return "dump" }
func (*dumpCmd) Synopsis() string { return "Print every word in the dictionary, one per line" }
func (*dumpCmd) Usage() string {
	return `dump -dict FILE [PREFIX]:
  Print every word in the dictionary, one per line, in ascending
  lexicographic order. If PREFIX is given, only words under it.
`
}

func (c *dumpCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dictPath, "dict", "", "compiled dictionary file (required)")
}

func (c *dumpCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dictPath == "" {
		fmt.Fprintf(os.Stderr, "💥 -dict is required\n")
		return subcommands.ExitUsageError
	}

	d, err := openDictionary(c.dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.dictPath, err)
		return subcommands.ExitFailure
	}

	args := f.Args()
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	results, err := d.Search(prefix, -1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}
	for _, r := range results {
		fmt.Println(r.Word)
	}

	return subcommands.ExitSuccess
}
