package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"readlex/article"
	"readlex/ingest"
	"readlex/trie"
)

// buildCmd implements the "build" command: compile a lexicon into a
// dictionary file, and optionally an article directory.
type buildCmd struct {
	input      string
	output     string
	articleDir string
}

func (*buildCmd) Name() string     { return "build" }
func (*buildCmd) Synopsis() string { return "Compile a lexicon JSON file into a binary dictionary" }
func (*buildCmd) Usage() string {
	return `build -input FILE -output FILE [-article-dir DIR]:
  Compile a JSON lexicon into a compact binary dictionary. If
  -article-dir is given, also writes chunked per-headword article
  files under that directory.
`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", "", "input lexicon JSON file (required)")
	f.StringVar(&c.output, "output", "", "output dictionary file (required)")
	f.StringVar(&c.articleDir, "article-dir", "", "optional output directory for article files")
}

func (c *buildCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" || c.output == "" {
		fmt.Fprintf(os.Stderr, "💥 -input and -output are required\n")
		return subcommands.ExitUsageError
	}

	lex, err := loadLexicon(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	keys := ingest.SortedKeys(lex)

	if err := buildTrie(lex, keys, c.output); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	if c.articleDir != "" {
		if err := article.BuildArticles(c.articleDir, lex, keys); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func loadLexicon(path string) (ingest.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ingest.Load(f)
}

// buildTrie feeds every headword's filtered, frequency-sorted entries
// into a TrieBuilder and writes the compiled dictionary to output. The
// article index recorded alongside each variant is the headword's
// position in keys, matching the numbering article.BuildArticles uses
// for the same keys.
func buildTrie(lex ingest.Lexicon, keys []string, output string) error {
	builder := trie.NewBuilder()

	for articleNum, key := range keys {
		filtered, err := ingest.FilterEntries(lex[key])
		if err != nil {
			return err
		}
		ingest.SortByFrequencyDesc(filtered)

		for _, entry := range filtered {
			builder.AddWord(entry.Shavian, entry.Latin, entry.POS[0], uint16(articleNum))
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := builder.IntoDictionary(w); err != nil {
		return err
	}
	return w.Flush()
}
