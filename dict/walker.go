package dict

// Walker enumerates every word stored in a dictionary, depth-first, in
// ascending lexicographic order (the terminator sorts before any real
// character, so a word is always visited before any longer word it
// prefixes).
type Walker struct {
	buf   []byte
	word  []rune
	stack []walkerEntry
}

type walkerEntry struct {
	wordLen int
	pos     int
}

// NewWalker starts enumeration from the top of the trie.
func NewWalker(buf []byte) *Walker {
	return newWalkerFrom(buf, 4)
}

func newWalkerFrom(buf []byte, pos int) *Walker {
	return &Walker{
		buf:   buf,
		stack: []walkerEntry{{wordLen: 0, pos: pos}},
	}
}

// Next advances to the next word and returns it along with the byte
// offset of its first variant. ok is false once every word has been
// visited.
func (w *Walker) Next() (word string, variantsPos int, ok bool, err error) {
	for len(w.stack) > 0 {
		entry := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		w.word = w.word[:entry.wordLen]

		n, err := readNode(w.buf[entry.pos:])
		if err != nil {
			return "", 0, false, err
		}

		if n.siblingOffset > 0 {
			w.stack = append(w.stack, walkerEntry{
				wordLen: len(w.word),
				pos:     entry.pos + n.charOffset + n.siblingOffset,
			})
		}

		if n.ch == 0 {
			return string(w.word), entry.pos + n.dataOffset, true, nil
		}

		w.word = append(w.word, n.ch)
		w.stack = append(w.stack, walkerEntry{
			wordLen: len(w.word),
			pos:     entry.pos + n.dataOffset,
		})
	}

	return "", 0, false, nil
}
