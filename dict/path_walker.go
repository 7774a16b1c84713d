package dict

import "readlex/bitio"

// PathWalker replays a variant's bit-packed path through the trie,
// yielding the translation one character at a time. At each step it
// counts the current node's children, reads just enough bits to index
// one of them, descends, and stops at the terminator.
type PathWalker struct {
	buf      []byte
	nodePos  int
	reader   *bitio.Reader
	foundEnd bool
}

// newPathWalker starts a path walk from the top-level sibling list at
// byte offset 4 (the dictionary's root is never itself written — see
// trie.Builder.writeNodes), reading sibling indices from a bit reader
// seeded at pos.
func newPathWalker(buf []byte, pos int) *PathWalker {
	return &PathWalker{
		buf:     buf,
		nodePos: 4,
		reader:  bitio.NewReader(buf[pos:]),
	}
}

// Next returns the translation's next character, or ok=false once the
// terminator has been reached.
func (p *PathWalker) Next() (ch rune, ok bool, err error) {
	if p.foundEnd {
		return 0, false, nil
	}

	nChildren, err := countSiblings(p.buf[p.nodePos:])
	if err != nil {
		return 0, false, err
	}

	nBits := bitsForChildren(nChildren)
	childIndex, ok := p.reader.ReadBits(nBits)
	if !ok {
		return 0, false, formatErr(UnexpectedEOF)
	}
	if int(childIndex) >= nChildren {
		return 0, false, formatErr(ChildIndexOutOfRange)
	}

	skip, err := skipNodes(p.buf[p.nodePos:], int(childIndex))
	if err != nil {
		return 0, false, err
	}
	p.nodePos += skip

	_, _, headerLen, err := readHeaderNumber(p.buf[p.nodePos:])
	if err != nil {
		return 0, false, err
	}
	c, chLen, err := readCharacter(p.buf[p.nodePos+headerLen:])
	if err != nil {
		return 0, false, err
	}

	if c == 0 {
		p.foundEnd = true
		return 0, false, nil
	}

	p.nodePos += headerLen + chLen
	return c, true, nil
}

// bitsForChildren returns the number of bits needed to index n
// children: ceil(log2(max(n, 1))), 0 when there's only one.
func bitsForChildren(n int) uint8 {
	if n <= 1 {
		return 0
	}
	bits := uint8(0)
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// Translation reads the whole path to completion and returns it as a
// string, for callers that don't need to stream characters one at a
// time.
func (p *PathWalker) Translation() (string, error) {
	var runes []rune
	for {
		ch, ok, err := p.Next()
		if err != nil {
			return "", err
		}
		if !ok {
			return string(runes), nil
		}
		runes = append(runes, ch)
	}
}
