// Package article encodes the full lexicographic record for each
// headword — Latin form, resolved POS list, and per-variation Shavian
// and IPA spellings — into the chunked binary article files the host
// application reads for its dictionary-entry display, distinct from
// the compact trie payload the core dictionary format carries.
package article

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"readlex/ingest"
)

// PerFile is the number of consecutive articles grouped into one
// article-XXXX.bin file. Chosen as a compromise: one file per article
// would multiply filename overhead, one file for the whole lexicon
// would prevent a packaging compressor from letting the host seek to
// an arbitrary article without decompressing everything before it.
const PerFile = 128

// Variations is the fixed, sorted inventory of regional pronunciation
// labels a variant's "var" field resolves to.
var Variations = [...]string{
	"GenAm", "GenAus", "RRP", "RRPVar", "SSB", "TrapBath",
}

// LookupVariation resolves a variation label to its index in
// Variations via binary search.
func LookupVariation(name string) (index uint8, ok bool) {
	i := sort.Search(len(Variations), func(i int) bool { return Variations[i] >= name })
	if i < len(Variations) && Variations[i] == name {
		return uint8(i), true
	}
	return 0, false
}

// ipaRemap substitutes placeholder code points the source lexicon uses
// to leave a pronunciation choice open, for the concrete IPA sequence
// the build settles on. Sorted by code point so a binary search could
// replace the linear scan in remapIPA if the table ever grows; at five
// entries it isn't worth it yet.
var ipaRemap = [...]struct {
	from rune
	to   string
}{
	{'I', "ə"},
	{'R', "(r)"},
	{'Æ', "æ"},
	{'Ə', "ə"},
	{'Ɑ', "ɑ"},
}

func remapIPA(ipa string) string {
	var b strings.Builder
	for _, ch := range ipa {
		replaced := false
		for _, r := range ipaRemap {
			if r.from == ch {
				b.WriteString(r.to)
				replaced = true
				break
			}
		}
		if !replaced {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// variant is one pronunciation variant of a combined article entry.
type variant struct {
	shavian   string
	ipa       string
	variation uint8
}

// combinedEntry is one or more source entries sharing a Latin form and
// POS list, collapsed into a single record with multiple variants.
type combinedEntry struct {
	latin    string
	pos      []uint8
	variants []variant
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

// combineVariants filters and deduplicates entries, then collapses
// consecutive filtered entries that share a Latin form and POS list
// into one combinedEntry carrying all their variants in order.
func combineVariants(entries []ingest.Entry) ([]combinedEntry, error) {
	filtered, err := ingest.FilterEntries(entries)
	if err != nil {
		return nil, err
	}

	var out []combinedEntry
	for _, e := range filtered {
		variationIndex, ok := LookupVariation(e.Var)
		if !ok {
			return nil, ingest.Errorf("unknown variation %q for %q/%q", e.Var, e.Latin, e.Shavian)
		}

		v := variant{shavian: e.Shavian, ipa: remapIPA(e.IPA), variation: variationIndex}

		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.latin == e.Latin && posEqual(last.pos, e.POS) {
				last.variants = append(last.variants, v)
				continue
			}
		}

		out = append(out, combinedEntry{latin: e.Latin, pos: e.POS, variants: []variant{v}})
	}

	return out, nil
}

func writeString(w io.Writer, s string) error {
	if len(s) > 0xFF {
		return ingest.Errorf("string %q is too long to encode (%d bytes)", s, len(s))
	}
	if _, err := w.Write([]byte{byte(len(s))}); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// WriteArticle encodes one headword's entries as a single article
// record (§4.6's per-article layout) and writes it to w.
func WriteArticle(w io.Writer, entries []ingest.Entry) error {
	combined, err := combineVariants(entries)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	for _, entry := range combined {
		if err := writeString(&body, entry.latin); err != nil {
			return err
		}

		if len(entry.pos) > 0xFF {
			return ingest.Errorf("too many POS tags for %q", entry.latin)
		}
		body.WriteByte(byte(len(entry.pos)))
		body.Write(entry.pos)

		if len(entry.variants) > 0xFF {
			return ingest.Errorf("too many variants for %q", entry.latin)
		}
		body.WriteByte(byte(len(entry.variants)))
		for _, v := range entry.variants {
			body.WriteByte(v.variation)
			if err := writeString(&body, v.shavian); err != nil {
				return err
			}
			if err := writeString(&body, v.ipa); err != nil {
				return err
			}
		}
	}

	if body.Len() > 0xFFFF {
		return ingest.Errorf("article is too large to encode (%d bytes)", body.Len())
	}

	var lenHeader [2]byte
	lenHeader[0] = byte(body.Len())
	lenHeader[1] = byte(body.Len() >> 8)
	if _, err := w.Write(lenHeader[:]); err != nil {
		return err
	}
	_, err = w.Write(body.Bytes())
	return err
}

// BuildArticles writes one article-XXXX.bin file per PerFile-sized run
// of keys, in the given order, under dir (created if it doesn't
// already exist). The order of keys determines each article's
// positional index — callers that embed that index elsewhere (the
// trie's article index field) must use the same order here.
func BuildArticles(dir string, lex ingest.Lexicon, keys []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for chunkStart := 0; chunkStart < len(keys); chunkStart += PerFile {
		end := chunkStart + PerFile
		if end > len(keys) {
			end = len(keys)
		}
		chunk := keys[chunkStart:end]

		name := fmt.Sprintf("article-%04x.bin", chunkStart)
		path := filepath.Join(dir, name)

		if err := writeArticleFile(path, lex, chunk); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	return nil
}

func writeArticleFile(path string, lex ingest.Lexicon, keys []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, key := range keys {
		if err := WriteArticle(w, lex[key]); err != nil {
			return err
		}
	}
	return w.Flush()
}
