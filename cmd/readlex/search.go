package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// searchCmd implements the "search" command: list words under a
// prefix, each with its translation.
type searchCmd struct {
	dictPath string
	limit    int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "List words stored under a prefix" }
func (*searchCmd) Usage() string {
	return `search -dict FILE [-limit N] PREFIX:
  List up to N words (default 20) stored under PREFIX, each with its
  translation, part of speech and article index.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dictPath, "dict", "", "compiled dictionary file (required)")
	f.IntVar(&c.limit, "limit", 20, "maximum number of results")
}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if c.dictPath == "" || len(args) != 1 {
		fmt.Fprintf(os.Stderr, "💥 usage: search -dict FILE [-limit N] PREFIX\n")
		return subcommands.ExitUsageError
	}

	d, err := openDictionary(c.dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.dictPath, err)
		return subcommands.ExitFailure
	}

	results, err := d.Search(args[0], c.limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return subcommands.ExitFailure
	}

	for _, r := range results {
		fmt.Printf("%s\t%s\tpos=%d\tarticle=%d\n", r.Word, r.Translation, r.POS, r.ArticleIndex)
	}

	return subcommands.ExitSuccess
}
