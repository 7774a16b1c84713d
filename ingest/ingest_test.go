package ingest

import (
	"strings"
	"testing"

	"readlex/pos"
)

func TestLoadRoundTrip(t *testing.T) {
	const doc = `{
		"cat": [
			{"Latn": "cat", "Shaw": "kat", "pos": "NN1", "ipa": "kæt", "var": "GenAm", "freq": 10}
		]
	}`

	lex, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	entries, ok := lex["cat"]
	if !ok || len(entries) != 1 {
		t.Fatalf("lex[cat] = %+v", entries)
	}
	if entries[0].Latin != "cat" || entries[0].Freq != 10 {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load(strings.NewReader("not json")); err == nil {
		t.Fatal("Load(invalid) = nil error, want IngestError")
	}
}

func TestFilterEntriesRemapsPOS(t *testing.T) {
	entries := []Entry{
		{Latin: "be", Shavian: "bi", POS: "VBB", IPA: "bi", Var: "GenAm", Freq: 1},
	}
	filtered, err := FilterEntries(entries)
	if err != nil {
		t.Fatalf("FilterEntries: %v", err)
	}
	if len(filtered) != 1 || len(filtered[0].POS) != 1 {
		t.Fatalf("filtered = %+v", filtered)
	}
	if name := pos.Names[filtered[0].POS[0]]; name != "VVB" {
		t.Errorf("remapped POS = %s, want VVB", name)
	}
}

func TestFilterEntriesSplitsCompoundPOS(t *testing.T) {
	entries := []Entry{
		{Latin: "fast", Shavian: "fast", POS: "AJ0+AV0", IPA: "fɑːst", Var: "SSB", Freq: 1},
	}
	filtered, err := FilterEntries(entries)
	if err != nil {
		t.Fatalf("FilterEntries: %v", err)
	}
	if len(filtered[0].POS) != 2 {
		t.Fatalf("POS = %v, want 2 components", filtered[0].POS)
	}
}

func TestFilterEntriesUnknownPOSIsFatal(t *testing.T) {
	entries := []Entry{
		{Latin: "x", Shavian: "y", POS: "ZZZ", IPA: "", Var: "GenAm", Freq: 1},
	}
	if _, err := FilterEntries(entries); err == nil {
		t.Fatal("FilterEntries(unknown POS) = nil error, want IngestError")
	}
}

func TestFilterEntriesMergesDuplicatesKeepingMaxFreq(t *testing.T) {
	entries := []Entry{
		{Latin: "cat", Shavian: "kat", POS: "NN1", IPA: "kæt", Var: "GenAm", Freq: 5},
		{Latin: "cat", Shavian: "kat", POS: "NN1", IPA: "kæt", Var: "GenAm", Freq: 50},
	}
	filtered, err := FilterEntries(entries)
	if err != nil {
		t.Fatalf("FilterEntries: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("len(filtered) = %d, want 1", len(filtered))
	}
	if filtered[0].Freq != 50 {
		t.Errorf("Freq = %d, want 50 (the max)", filtered[0].Freq)
	}
}

func TestFilterEntriesKeepsDistinctVariations(t *testing.T) {
	entries := []Entry{
		{Latin: "cat", Shavian: "kat", POS: "NN1", IPA: "kæt", Var: "GenAm", Freq: 5},
		{Latin: "cat", Shavian: "kat", POS: "NN1", IPA: "kæt", Var: "SSB", Freq: 5},
	}
	filtered, err := FilterEntries(entries)
	if err != nil {
		t.Fatalf("FilterEntries: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("len(filtered) = %d, want 2 (distinct variations)", len(filtered))
	}
}

func TestSortByFrequencyDesc(t *testing.T) {
	entries := []FilteredEntry{
		{Latin: "a", Freq: 1},
		{Latin: "b", Freq: 10},
		{Latin: "c", Freq: 5},
		{Latin: "d", Freq: 10},
	}
	SortByFrequencyDesc(entries)

	want := []string{"b", "d", "c", "a"}
	for i, e := range entries {
		if e.Latin != want[i] {
			t.Errorf("entries[%d].Latin = %s, want %s", i, e.Latin, want[i])
		}
	}
}

func TestSortedKeysAreAscending(t *testing.T) {
	lex := Lexicon{"banana": nil, "apple": nil, "cherry": nil}
	keys := SortedKeys(lex)
	want := []string{"apple", "banana", "cherry"}
	for i, k := range keys {
		if k != want[i] {
			t.Errorf("keys[%d] = %s, want %s", i, k, want[i])
		}
	}
}
