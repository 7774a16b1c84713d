// Package dict implements DictionaryReader: read-only navigation of the
// bit-packed trie format TrieBuilder (package trie) compiles. It never
// copies the dictionary bytes; every lookup and walk works directly
// against the caller's byte slice.
package dict

import "unicode/utf8"

const maxOffsetBits = 63

// readHeaderNumber parses one node's variable-length base-128 header
// number: 7 payload bits per byte, least significant byte first, high
// bit of each byte set while more bytes follow. The low bit of the
// decoded number is the has-child flag; the rest is the byte distance
// from just after this header to the start of the node's next sibling
// (0 if it has none).
func readHeaderNumber(buf []byte) (siblingOffset int, hasChild bool, consumed int, err error) {
	var raw uint64
	for i, b := range buf {
		if (i+1)*7 > maxOffsetBits {
			return 0, false, 0, formatErr(OffsetTooLong)
		}
		raw |= uint64(b&0x7f) << uint(i*7)
		consumed = i + 1
		if b&0x80 == 0 {
			return int(raw >> 1), raw&1 != 0, consumed, nil
		}
	}
	return 0, false, 0, formatErr(UnexpectedEOF)
}

// readCharacter decodes the node character starting at buf[0]. TrieBuilder
// only ever writes valid UTF-8 here; bytes that do not decode (a
// corrupted or foreign buffer) are reported as InvalidCharacter.
func readCharacter(buf []byte) (ch rune, consumed int, err error) {
	if len(buf) == 0 {
		return 0, 0, formatErr(UnexpectedEOF)
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, formatErr(InvalidCharacter)
	}
	return r, size, nil
}

// node is one decoded trie node header: its character, the offset from
// its own start to its data (child list or terminator payload), and the
// sibling distance used to continue a sibling scan. hasChild is decoded
// for fidelity to the header format but never gates navigation: every
// non-terminator node has at least one child (if nothing else, the
// terminator for the word that ends there), so descending into a node's
// data position is always valid except at a terminator itself, which
// carries no children at all.
type node struct {
	charOffset    int // bytes from node start to its character
	dataOffset    int // bytes from node start to its data (children/payload)
	ch            rune
	siblingOffset int
	hasChild      bool
}

func readNode(buf []byte) (node, error) {
	siblingOffset, hasChild, headerLen, err := readHeaderNumber(buf)
	if err != nil {
		return node{}, err
	}
	if headerLen > len(buf) {
		return node{}, formatErr(UnexpectedEOF)
	}
	ch, chLen, err := readCharacter(buf[headerLen:])
	if err != nil {
		return node{}, err
	}
	return node{
		charOffset:    headerLen,
		dataOffset:    headerLen + chLen,
		ch:            ch,
		siblingOffset: siblingOffset,
		hasChild:      hasChild,
	}, nil
}

// countSiblings returns the number of nodes in the sibling chain
// starting at buf, by walking header numbers until one reports no
// further sibling.
func countSiblings(buf []byte) (int, error) {
	count := 1
	pos := 0
	for {
		siblingOffset, _, headerLen, err := readHeaderNumber(buf[pos:])
		if err != nil {
			return 0, err
		}
		if siblingOffset == 0 {
			return count, nil
		}
		pos += headerLen + siblingOffset
		count++
	}
}

// skipNodes returns the byte distance from buf to the start of the
// n-th node (0-indexed) in the sibling chain starting at buf.
func skipNodes(buf []byte, n int) (int, error) {
	pos := 0
	for i := 0; i < n; i++ {
		siblingOffset, _, headerLen, err := readHeaderNumber(buf[pos:])
		if err != nil {
			return 0, err
		}
		pos += headerLen + siblingOffset
	}
	return pos, nil
}

// findSiblingForCharacter scans the sibling chain starting at pos for a
// node whose character is ch, returning the byte position of that
// node's data (its child list, or its payload if it's the terminator).
// ok is false, err nil, if the chain runs out without a match.
func findSiblingForCharacter(buf []byte, pos int, ch rune) (dataPos int, ok bool, err error) {
	for {
		if pos > len(buf) {
			return 0, false, formatErr(UnexpectedEOF)
		}
		n, err := readNode(buf[pos:])
		if err != nil {
			return 0, false, err
		}
		if n.ch == ch {
			return pos + n.dataOffset, true, nil
		}
		if n.siblingOffset == 0 {
			return 0, false, nil
		}
		pos += n.charOffset + n.siblingOffset
	}
}
