// Command readlex is a read-side demonstration and diagnostic tool
// over a compiled dictionary: word search under a prefix, a raw word
// dump, one-shot transliteration, and an interactive REPL combining
// transliteration with prefix search.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"readlex/dict"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&searchCmd{}, "")
	subcommands.Register(&dumpCmd{}, "")
	subcommands.Register(&transliterateCmd{}, "")
	subcommands.Register(&replCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

// openDictionary reads the whole file at path into memory and wraps it
// as a Dictionary. Dictionaries never copy their backing buffer, so
// the returned value stays valid for as long as the caller holds it.
func openDictionary(path string) (*dict.Dictionary, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return dict.Open(buf)
}
