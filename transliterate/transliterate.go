// Package transliterate streams Latin-script English text to Shavian (or
// back), picking among a word's dictionary variants by the part of
// speech most likely to follow whatever came before it, and applying
// the capitalisation rules a reader expects from ordinary prose.
package transliterate

import (
	"strings"
	"unicode"

	"readlex/dict"
	"readlex/pos"
)

// noPOS marks "we don't know the part of speech of the previous word",
// distinct from pos.StartOfSentence ("the previous word was the start
// of a sentence"). It's set after an untranslatable hyphenated part,
// where there's nothing sensible to track.
const noPOS = -1

// transliterator holds the running state of one Transliterate call: the
// input cursor, the output being built, the word currently being
// accumulated, and the part of speech of the last word written.
type transliterator struct {
	dictionary *dict.Dictionary
	input      []rune
	cursor     int
	output     strings.Builder
	buf        []rune
	lastPOS    int
}

// Transliterate converts input using dictionary, returning the
// translated text. Alphabetic runs are looked up as whole words first;
// anything not found falls back to a best-effort per-hyphen-part
// translation. Everything else passes through unchanged, except that
// the first letter of a translated word is capitalised at the start of
// a sentence, for a proper noun, or for a first-person pronoun standing
// alone.
func Transliterate(dictionary *dict.Dictionary, input string) (string, error) {
	t := &transliterator{
		dictionary: dictionary,
		input:      []rune(input),
		lastPOS:    pos.StartOfSentence,
	}
	if err := t.run(); err != nil {
		return "", err
	}
	return t.output.String(), nil
}

func (t *transliterator) peek() (rune, bool) {
	if t.cursor >= len(t.input) {
		return 0, false
	}
	return t.input[t.cursor], true
}

func (t *transliterator) nextIsAlphabetic() bool {
	ch, ok := t.peek()
	return ok && unicode.IsLetter(ch)
}

func (t *transliterator) run() error {
	for t.cursor < len(t.input) {
		ch := t.input[t.cursor]
		t.cursor++

		if unicode.IsLetter(ch) {
			t.buf = append(t.buf, unicode.ToLower(ch))
			continue
		}

		if len(t.buf) > 0 && isGlueChar(ch) && t.nextIsAlphabetic() {
			glue := ch
			if glue == '’' {
				glue = '\''
			}
			t.buf = append(t.buf, glue)
			continue
		}

		if err := t.flushBuf(); err != nil {
			return err
		}

		t.output.WriteRune(ch)

		if ch == '.' && !t.nextIsAlphabetic() {
			t.lastPOS = pos.StartOfSentence
		}
	}

	return t.flushBuf()
}

// isGlueChar reports whether ch can join two alphabetic runs into one
// word when it appears mid-word (an apostrophe or hyphen).
func isGlueChar(ch rune) bool {
	return ch == '\'' || ch == '-' || ch == '’'
}

func (t *transliterator) flushBuf() error {
	if len(t.buf) == 0 {
		return nil
	}

	word := string(t.buf)
	t.buf = t.buf[:0]

	variantPos, ok, err := t.dictionary.FindWord(word)
	if err != nil {
		return err
	}
	if ok {
		return t.chooseAndWriteVariant(variantPos)
	}
	return t.writeHyphenatedParts(word)
}

func (t *transliterator) writeHyphenatedParts(word string) error {
	parts := strings.Split(word, "-")
	if len(parts) == 1 {
		t.output.WriteString(word)
		t.lastPOS = noPOS
		return nil
	}

	for i, part := range parts {
		variantPos, ok, err := t.dictionary.FindWord(part)
		if err != nil {
			return err
		}
		if ok {
			if err := t.chooseAndWriteVariant(variantPos); err != nil {
				return err
			}
		} else {
			t.lastPOS = noPOS
			t.output.WriteString(part)
		}

		if i+1 < len(parts) {
			t.output.WriteRune('-')
		}
	}

	return nil
}

// chooseAndWriteVariant picks the best variant among those chained from
// variantPos (by the part-of-speech score against lastPOS) and writes
// it. With no usable context, or only one variant, it writes the first
// one without scoring.
func (t *transliterator) chooseAndWriteVariant(variantPos int) error {
	variant, err := t.dictionary.ExtractVariant(variantPos)
	if err != nil {
		return err
	}

	if t.lastPOS == noPOS {
		return t.writeVariant(variant)
	}

	bestPos, bestPOS := variantPos, variant.POS
	for {
		nextPos, ok, err := variant.IntoNextOffset()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		variant, err = t.dictionary.ExtractVariant(nextPos)
		if err != nil {
			return err
		}
		if pos.Score(uint8(t.lastPOS), variant.POS) > pos.Score(uint8(t.lastPOS), bestPOS) {
			bestPos, bestPOS = nextPos, variant.POS
		}
	}

	// IntoNextOffset drains each scanned variant's Translation walker to
	// find the next one's offset, including whichever variant turns out
	// to be best if it wasn't the last one scanned. Re-extract it fresh
	// rather than write from a walker that scoring may have exhausted.
	best, err := t.dictionary.ExtractVariant(bestPos)
	if err != nil {
		return err
	}
	return t.writeVariant(best)
}

func (t *transliterator) writeVariant(variant dict.Variant) error {
	capitalize, err := t.shouldCapitalize(variant)
	if err != nil {
		return err
	}
	t.lastPOS = int(variant.POS)
	return t.writePath(variant.Translation, capitalize)
}

// shouldCapitalize decides whether variant's translation should start
// with an uppercase letter: always at the start of a sentence, always
// for a proper noun, and for a personal pronoun whose translation is
// exactly the single letter "i" (so the upright English pronoun reads
// naturally rather than as a stray lowercase letter).
func (t *transliterator) shouldCapitalize(variant dict.Variant) (bool, error) {
	if t.lastPOS == pos.StartOfSentence {
		return true, nil
	}
	if variant.POS == pos.NP0 {
		return true, nil
	}
	if variant.POS == pos.PNP {
		peek := variant.FreshTranslation()
		first, ok, err := peek.Next()
		if err != nil {
			return false, err
		}
		if ok && first == 'i' {
			_, more, err := peek.Next()
			if err != nil {
				return false, err
			}
			if !more {
				return true, nil
			}
		}
	}
	return false, nil
}

func (t *transliterator) writePath(path *dict.PathWalker, capitalize bool) error {
	first := true
	for {
		ch, ok, err := path.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if first && capitalize {
			ch = unicode.ToUpper(ch)
		}
		first = false
		t.output.WriteRune(ch)
	}
}
