// Package ingest loads the source lexicon from JSON, resolves and
// validates each entry's part-of-speech and pronunciation-variation
// labels, and collapses duplicate entries the way the build CLI's
// trie and article stages both need before they can consume them.
package ingest

import (
	"encoding/json"
	"io"
	"sort"

	"readlex/pos"
)

// Entry is one raw lexicon record as it appears in the source JSON.
type Entry struct {
	Latin   string `json:"Latn"`
	Shavian string `json:"Shaw"`
	POS     string `json:"pos"`
	IPA     string `json:"ipa"`
	Var     string `json:"var"`
	Freq    uint32 `json:"freq"`
}

// Lexicon maps a headword to its ordered list of entries, mirroring the
// source JSON's top-level shape.
type Lexicon map[string][]Entry

// Load parses a lexicon from r. A malformed document is an IngestError.
func Load(r io.Reader) (Lexicon, error) {
	var lex Lexicon
	if err := json.NewDecoder(r).Decode(&lex); err != nil {
		return nil, Errorf("failed to parse lexicon JSON: %v", err)
	}
	return lex, nil
}

// SortedKeys returns lex's keys in ascending order, so that callers that
// assign a positional article index (the build CLI) get a reproducible
// numbering across runs.
func SortedKeys(lex Lexicon) []string {
	keys := make([]string, 0, len(lex))
	for k := range lex {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilteredEntry is an Entry with its part of speech resolved to the
// canonical tag inventory (§6's POS indices), ready for either the trie
// or the article encoder.
type FilteredEntry struct {
	Latin, Shavian string
	POS            []uint8
	IPA, Var       string
	Freq           uint32
}

// lookupPOS resolves a possibly "+"-joined compound POS string to a
// list of canonical tag indices, one per component. An unrecognised
// component (after remapping) is a fatal IngestError, per §6 ("unknown
// POS or variation labels are a fatal build error").
func lookupPOS(raw string) ([]uint8, error) {
	var result []uint8
	start := 0
	for i := 0; i <= len(raw); i++ {
		if i < len(raw) && raw[i] != '+' {
			continue
		}
		component := raw[start:i]
		start = i + 1

		index, ok := pos.Remap(component)
		if !ok {
			return nil, Errorf("unknown part of speech %q", component)
		}
		result = append(result, index)
	}
	return result, nil
}

func posEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FilterEntries resolves and deduplicates entries, the way a single
// headword's entry list is filtered before it feeds either the trie
// builder or the article encoder: entries whose Latin form, Shavian
// form, resolved POS list, IPA and variation all match are merged into
// one, keeping the higher of the two frequencies.
func FilterEntries(entries []Entry) ([]FilteredEntry, error) {
	var out []FilteredEntry

	for i := range entries {
		e := &entries[i]

		resolvedPOS, err := lookupPOS(e.POS)
		if err != nil {
			return nil, Errorf("%v for %q/%q", err, e.Latin, e.Shavian)
		}

		merged := false
		for j := range out {
			old := &out[j]
			if old.Latin == e.Latin && old.Shavian == e.Shavian &&
				posEqual(old.POS, resolvedPOS) && old.IPA == e.IPA && old.Var == e.Var {
				if old.Freq < e.Freq {
					old.Freq = e.Freq
				}
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		out = append(out, FilteredEntry{
			Latin:   e.Latin,
			Shavian: e.Shavian,
			POS:     resolvedPOS,
			IPA:     e.IPA,
			Var:     e.Var,
			Freq:    e.Freq,
		})
	}

	return out, nil
}

// SortByFrequencyDesc stably reorders entries so the highest-frequency
// one comes first, ties kept in their original relative order. The
// trie builder records variants in insertion order and uses the first
// one at a shared terminator as the no-context default, so feeding it
// entries highest-frequency-first makes that default the most common
// reading — the original build tool's own stated intent (see
// compiledb.rs's "sort by decreasing frequency" comment), applied here
// as an input-ordering step rather than inside the builder itself.
func SortByFrequencyDesc(entries []FilteredEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Freq > entries[j].Freq
	})
}
