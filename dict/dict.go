package dict

// Dictionary is an immutable view over a compiled dictionary file: a
// 4-byte little-endian length header followed by the trie region
// TrieBuilder.IntoDictionary wrote. It never copies buf.
type Dictionary struct {
	buf []byte
}

// Open validates buf's length header and wraps it as a Dictionary. It
// does not otherwise validate the trie; malformed tries surface
// FormatErrors lazily, from whichever lookup first reaches the bad
// bytes.
func Open(buf []byte) (*Dictionary, error) {
	if len(buf) < 4 {
		return nil, formatErr(UnexpectedEOF)
	}
	declared := int(buf[0]) | int(buf[1])<<8 | int(buf[2])<<16 | int(buf[3])<<24
	if declared != len(buf)-4 {
		return nil, formatErr(InvalidLengthHeader)
	}
	return &Dictionary{buf: buf}, nil
}

// Bytes returns the dictionary's underlying byte slice, header included.
func (d *Dictionary) Bytes() []byte {
	return d.buf
}

// FindPrefix walks the trie along each character of prefix and returns
// the byte position of the first child after the whole prefix. ok is
// false if any character along the way is missing, or if prefix
// contains the reserved terminator byte '\0'.
func (d *Dictionary) FindPrefix(prefix string) (pos int, ok bool, err error) {
	pos = 4

	for _, ch := range prefix {
		if ch == 0 {
			return 0, false, nil
		}
		pos, ok, err = findSiblingForCharacter(d.buf, pos, ch)
		if err != nil || !ok {
			return 0, false, err
		}
	}

	return pos, true, nil
}

// FindWord looks up word exactly and returns the byte offset of its
// first variant.
func (d *Dictionary) FindWord(word string) (variantsPos int, ok bool, err error) {
	prefixPos, ok, err := d.FindPrefix(word)
	if err != nil || !ok {
		return 0, false, err
	}
	return findSiblingForCharacter(d.buf, prefixPos, 0)
}

// ExtractVariant reads the variant starting at pos.
func (d *Dictionary) ExtractVariant(pos int) (Variant, error) {
	return ExtractVariant(d.buf, pos)
}

// Walker returns a Walker enumerating every word in the dictionary.
func (d *Dictionary) Walker() *Walker {
	return NewWalker(d.buf)
}

// SearchResult is one record produced by Search: a word found under the
// queried prefix, its translation, and the part of speech and article
// index of the variant the record was drawn from.
type SearchResult struct {
	Word         string
	Translation  string
	POS          uint8
	ArticleIndex uint16
}

// Search enumerates up to capacity words stored under prefix, in
// ascending lexicographic order, each paired with its first variant's
// translation, POS and article index. A negative capacity means no
// limit. A prefix not present in the dictionary yields zero results,
// not an error.
func (d *Dictionary) Search(prefix string, capacity int) ([]SearchResult, error) {
	pos, ok, err := d.FindPrefix(prefix)
	if err != nil || !ok {
		return nil, err
	}

	w := newWalkerFrom(d.buf, pos)

	var results []SearchResult
	for capacity < 0 || len(results) < capacity {
		word, variantsPos, ok, err := w.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		v, err := d.ExtractVariant(variantsPos)
		if err != nil {
			return nil, err
		}
		translation, err := v.Translation.Translation()
		if err != nil {
			return nil, err
		}

		results = append(results, SearchResult{
			Word:         prefix + word,
			Translation:  translation,
			POS:          v.POS,
			ArticleIndex: v.ArticleIndex,
		})
	}

	return results, nil
}
