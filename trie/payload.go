package trie

import (
	"bytes"

	"readlex/bitio"
)

// writePath encodes word as a path from the trie root: for each
// character (plus a trailing terminator), it writes the minimum-width
// sibling index needed to pick the matching child out of the current
// node's child list, then descends into that child's own children for
// the next character. Re-walking this path at read time (dict.PathWalker)
// must reproduce word exactly.
func (b *Builder) writePath(word string, w *bitio.Writer) error {
	node := 0

	write := func(ch rune) error {
		nChildren := b.nChildren(node)
		nBits := bitsFor(nChildren)

		child := b.nodes[node].firstChild
		skips := uint32(0)
		for b.nodes[child].char() != ch {
			child = b.nodes[child].nextSib
			skips++
		}

		if err := w.AddBits(skips, nBits); err != nil {
			return err
		}

		node = child
		return nil
	}

	for _, ch := range word {
		if err := write(ch); err != nil {
			return err
		}
	}
	return write(0)
}

// bitsFor returns ceil(log2(max(n, 1))), the number of bits needed to
// address n siblings by index (0 bits when there is only one child).
func bitsFor(n int) uint8 {
	if n <= 1 {
		return 0
	}
	bits := uint8(0)
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// calculatePayload serialises one terminator's variant list: for each
// variant, a framing byte (POS in the low 7 bits, continuation flag in
// the high bit if more variants follow), the 16-bit little-endian
// article index, and the bit-packed path to the translation, flushed to
// a byte boundary.
func (b *Builder) calculatePayload(t *terminator) ([]byte, error) {
	var payload bytes.Buffer

	for i, v := range t.variants {
		framing := v.pos
		if i+1 < len(t.variants) {
			framing |= 0x80
		}
		payload.WriteByte(framing)
		payload.WriteByte(byte(v.articleIndex))
		payload.WriteByte(byte(v.articleIndex >> 8))

		w := bitio.NewWriter(&payload)
		if err := b.writePath(v.translation, w); err != nil {
			return nil, err
		}
		if err := w.Done(); err != nil {
			return nil, err
		}
	}

	return payload.Bytes(), nil
}

// computeAllPayloads walks every terminator in the trie and fills in its
// precomputed payload bytes, ready for computeSizes and writeNodes.
func (b *Builder) computeAllPayloads() error {
	return b.walk(0, func(idx int) error {
		if b.nodes[idx].kind != kindTerminator {
			return nil
		}
		payload, err := b.calculatePayload(&b.nodes[idx].terminator)
		if err != nil {
			return err
		}
		b.nodes[idx].terminator.payload = payload
		return nil
	})
}

// walk visits idx, every node below it, and the rest of idx's own
// sibling chain with everything below those, children before their
// next siblings, calling visit once per node (pre-order; the
// callback order doesn't matter for computeAllPayloads since payloads
// are independent of each other).
func (b *Builder) walk(idx int, visit func(int) error) error {
	if err := visit(idx); err != nil {
		return err
	}
	if child := b.nodes[idx].firstChild; child != 0 {
		if err := b.walk(child, visit); err != nil {
			return err
		}
	}
	if sib := b.nodes[idx].nextSib; sib != 0 {
		if err := b.walk(sib, visit); err != nil {
			return err
		}
	}
	return nil
}
