package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"readlex/dict"
	"readlex/transliterate"
)

// replCmd implements the "repl" command: an interactive line-editing
// shell over a compiled dictionary, generalising the teacher's REPL
// pattern (cmd_repl.go) from "evaluate an expression" to "look up or
// transliterate a line of text".
type replCmd struct {
	dictPath string
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "Start an interactive dictionary session" }
func (*replCmd) Usage() string {
	return `repl -dict FILE:
  Start an interactive session. Each line is transliterated; prefix a
  line with "/search " to list words under a prefix instead.
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dictPath, "dict", "", "compiled dictionary file (required)")
}

func (c *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dictPath == "" {
		fmt.Fprintf(os.Stderr, "💥 -dict is required\n")
		return subcommands.ExitUsageError
	}

	d, err := openDictionary(c.dictPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.dictPath, err)
		return subcommands.ExitFailure
	}

	rl, err := readline.New("readlex> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	runRepl(rl, d)
	return subcommands.ExitSuccess
}

func runRepl(rl *readline.Instance, d *dict.Dictionary) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl-D) or readline.ErrInterrupt (Ctrl-C)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if prefix, ok := strings.CutPrefix(line, "/search "); ok {
			runSearch(d, prefix)
			continue
		}

		out, err := transliterate.Transliterate(d, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			continue
		}
		fmt.Println(out)
	}
}

func runSearch(d *dict.Dictionary, prefix string) {
	results, err := d.Search(prefix, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "(no matches)")
		return
	}
	for _, r := range results {
		fmt.Printf("%s\t%s\n", r.Word, r.Translation)
	}
}
