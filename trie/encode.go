package trie

import (
	"io"
	"unicode/utf8"
)

// computeSizes runs a post-order pass over the whole tree (starting at
// the root, whose own size is computed but never used) filling in every
// node's size: the byte footprint of that node's own header, character
// and payload, plus the footprint of its first child's subtree and its
// own next sibling's chain. Because the first child of a node absorbs
// its own siblings' sizes in turn, nodes[x.firstChild].size ends up
// spanning x's entire child list — exactly the distance nodeDataNumber
// needs to skip over a child list to find x's own next sibling.
func (b *Builder) computeSizes() {
	b.computeSize(0)
}

func (b *Builder) computeSize(idx int) int {
	n := &b.nodes[idx]

	childSize := 0
	if n.firstChild != 0 {
		childSize = b.computeSize(n.firstChild)
	}

	siblingSize := 0
	if n.nextSib != 0 {
		siblingSize = b.computeSize(n.nextSib)
	}

	own := nBytesForSize(b.nodeDataNumber(idx)) + utf8.RuneLen(n.char())
	if n.kind == kindTerminator {
		own += len(n.terminator.payload)
	}

	n.size = own + childSize + siblingSize
	return n.size
}

// nodeDataNumber computes a node's header number: bit 0 is set if the
// node has a child; the remaining bits are the byte distance from just
// after this header number to the start of the node's next sibling, or
// 0 if it has none. That distance is the node's own character bytes
// plus either its payload length (terminator) or the cumulative size of
// its whole child list (nodes[firstChild].size, which already spans
// every sibling in that list per computeSize above).
func (b *Builder) nodeDataNumber(idx int) int {
	n := &b.nodes[idx]

	siblingOffset := 0
	if n.nextSib != 0 {
		var dataSize int
		if n.kind == kindTerminator {
			dataSize = len(n.terminator.payload)
		} else {
			dataSize = b.nodes[n.firstChild].size
		}
		siblingOffset = utf8.RuneLen(n.char()) + dataSize
	}

	dataNumber := siblingOffset << 1
	if n.firstChild != 0 {
		dataNumber |= 1
	}
	return dataNumber
}

// nBytesForSize returns how many base-128 bytes writeOffset needs to
// encode size: 7 payload bits per byte, at least one byte even for 0.
func nBytesForSize(size int) int {
	if size == 0 {
		return 1
	}
	bits := 0
	for s := size; s > 0; s >>= 1 {
		bits++
	}
	return (bits + 6) / 7
}

// writeOffset writes offset as a variable-length base-128 number, least
// significant 7 bits first, with the high bit of each byte set except
// the last to mark continuation.
func writeOffset(offset int, w io.Writer) error {
	var buf []byte
	for {
		next := byte(offset & 0x7f)
		offset >>= 7
		if offset == 0 {
			buf = append(buf, next)
			break
		}
		buf = append(buf, next|0x80)
	}
	_, err := w.Write(buf)
	return err
}

// writeNode emits one node's header number, UTF-8 character bytes and,
// for a terminator, its precomputed payload.
func (b *Builder) writeNode(idx int, w io.Writer) error {
	n := &b.nodes[idx]

	if err := writeOffset(b.nodeDataNumber(idx), w); err != nil {
		return err
	}

	var chBuf [utf8.UTFMax]byte
	n4 := utf8.EncodeRune(chBuf[:], n.char())
	if _, err := w.Write(chBuf[:n4]); err != nil {
		return err
	}

	if n.kind == kindTerminator {
		if _, err := w.Write(n.terminator.payload); err != nil {
			return err
		}
	}
	return nil
}

// writeNodes emits every real node in pre-order, skipping the root: the
// root's placeholder character is never part of any word, so the trie
// region on disk starts directly with the root's children as the
// top-level sibling list DictionaryReader scans first.
func (b *Builder) writeNodes(w io.Writer) error {
	start := b.nodes[0].firstChild
	if start == 0 {
		return nil
	}
	return b.walk(start, func(idx int) error {
		return b.writeNode(idx, w)
	})
}
