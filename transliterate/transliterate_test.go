package transliterate

import (
	"bytes"
	"testing"

	"readlex/dict"
	"readlex/pos"
	"readlex/trie"
)

// buildTestDictionary assembles a small dictionary exercising every
// transliteration rule: plain word lookup, hyphen-compound lookup and
// fallback, apostrophe gluing, sentence-start capitalisation, proper
// noun capitalisation, the standalone first-person pronoun "i", and
// part-of-speech-pair variant selection. It is not meant to resemble a
// real lexicon — just to pin down behaviour, the way a literal byte
// fixture would, without depending on any particular on-disk layout.
func buildTestDictionary(t *testing.T) *dict.Dictionary {
	t.Helper()

	const ajTag = 0 // any ordinary, non-special tag

	b := trie.NewBuilder()
	b.AddWord("a", "b", ajTag, 1)
	b.AddWord("c", "d", ajTag, 2)
	b.AddWord("e-f", "g", ajTag, 3)
	b.AddWord("d'b", "h", ajTag, 4)

	b.AddWord("j", "p", pos.PNP, 5)
	b.AddWord("j", "q", pos.VVB, 6)

	b.AddWord("\U00010472", "i", pos.PNP, 7) // pronoun "I"
	b.AddWord("\U00010466", "i", pos.VVB, 8) // non-pronoun "i"

	b.AddWord("\U00010450\U00010468", "Paris", pos.NP0, 9)

	var out bytes.Buffer
	if err := b.IntoDictionary(&out); err != nil {
		t.Fatalf("IntoDictionary: %v", err)
	}

	d, err := dict.Open(out.Bytes())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return d
}

func transliterateString(t *testing.T, input string) string {
	t.Helper()
	d := buildTestDictionary(t)
	got, err := Transliterate(d, input)
	if err != nil {
		t.Fatalf("Transliterate(%q): %v", input, err)
	}
	return got
}

func TestHyphens(t *testing.T) {
	cases := map[string]string{
		"a":       "B",
		"c":       "D",
		"a-c":     "B-d",
		"a-c-d-b": "B-d-c-a",
		"e-f":     "G",
	}
	for input, want := range cases {
		if got := transliterateString(t, input); got != want {
			t.Errorf("Transliterate(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestApostrophes(t *testing.T) {
	cases := map[string]string{
		"d'b":  "H",
		"d’b":  "H",
		"d' b": "C' a",
		"d’ b": "C’ a",
		"d'":   "C'",
		"d’":   "C’",
	}
	for input, want := range cases {
		if got := transliterateString(t, input); got != want {
			t.Errorf("Transliterate(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFirstPersonPronoun(t *testing.T) {
	if got := transliterateString(t, "\U00010472 \U00010472"); got != "I I" {
		t.Errorf(`Transliterate(pronoun pronoun) = %q, want "I I"`, got)
	}
	if got := transliterateString(t, "\U00010466 \U00010466"); got != "I i" {
		t.Errorf(`Transliterate(non-pronoun non-pronoun) = %q, want "I i"`, got)
	}
}

func TestCapitalizeSentences(t *testing.T) {
	want := "B d b.d d. B d"
	if got := transliterateString(t, "a c a.c c. a c"); got != want {
		t.Errorf("Transliterate(sentence) = %q, want %q", got, want)
	}
}

func TestCapitalizeProperNouns(t *testing.T) {
	want := "Paris Paris"
	if got := transliterateString(t, "\U00010450\U00010468 \U00010450\U00010468"); got != want {
		t.Errorf("Transliterate(proper noun) = %q, want %q", got, want)
	}
}

func TestPOSPairSelectsVariant(t *testing.T) {
	// "j" has two variants: PNP ("p") and VVB ("q"). A pronoun should
	// be preferred at the start of a sentence, and a verb should be
	// preferred right after a pronoun.
	want := "P q"
	if got := transliterateString(t, "j j"); got != want {
		t.Errorf("Transliterate(j j) = %q, want %q", got, want)
	}
}
