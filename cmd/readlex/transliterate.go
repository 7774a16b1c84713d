package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"readlex/transliterate"
)

// transliterateCmd implements the "transliterate" command: translate
// either a line of text given as arguments, or stdin if none are
// given, one line at a time.
type transliterateCmd struct {
	dictPath string
}

func (*transliterateCmd) Name() string { return "transliterate" }
func (*transliterateCmd) Synopsis() string {
	return "Transliterate text against a compiled dictionary"
}
func (*transliterateCmd) Usage() string {
	return `transliterate -dict FILE [TEXT...]:
  Transliterate TEXT (or, with no arguments, each line of stdin)
  between Latin and Shavian script.
`
}

func (c *transliterateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dictPath, "dict", "", "compiled dictionary file (required)")
}

func (c *transliterateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dictPath == "" {
		fmt.Fprintf(os.Stderr, "💥 -dict is required\n")
		return subcommands.ExitUsageError
	}

	d, err := openDictionary(c.dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.dictPath, err)
		return subcommands.ExitFailure
	}

	if args := f.Args(); len(args) > 0 {
		out, err := transliterate.Transliterate(d, strings.Join(args, " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(out)
		return subcommands.ExitSuccess
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		out, err := transliterate.Transliterate(d, scanner.Text())
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(out)
	}

	return subcommands.ExitSuccess
}
