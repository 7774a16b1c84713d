// Package trie implements the build-time compiler for the dictionary's
// on-disk trie format: it accumulates bidirectional word/translation
// pairs and compiles them, in several passes, into the compact byte
// layout DictionaryReader (package dict) reads back.
//
// The pipeline mirrors a small instruction-set compiler: Builder plays
// the role of an AST accumulated over many add_word calls, and
// IntoDictionary is the "codegen" pass that lowers it to bytes, the way
// the teacher's compiler package lowers an AST to Bytecode.
package trie

import (
	"bytes"
	"io"
)

// variant is one (POS, article index, translation) triple recorded at a
// terminator node, in insertion order.
type variant struct {
	pos          uint8
	articleIndex uint16
	translation  string
}

// terminator is the payload carried by a '\0' node: the variant list
// plus, once computed, its serialised bytes.
type terminator struct {
	variants []variant
	payload  []byte
}

// nodeKind distinguishes a character node from a terminator node. A
// terminator's rune value is always '\0'.
type nodeKind int

const (
	kindChar nodeKind = iota
	kindTerminator
)

// node is one entry in the builder's flat, append-only node vector.
// first/next are indices into that vector; 0 means "none" everywhere
// except for the root itself, which is always index 0.
type node struct {
	kind       nodeKind
	ch         rune
	terminator terminator

	size int

	firstChild int // 0 == none (root can't be anyone's child)
	nextSib    int // 0 == none
}

func (n *node) char() rune {
	if n.kind == kindTerminator {
		return 0
	}
	return n.ch
}

// Builder accumulates bidirectional word pairs into a flat node vector
// and lowers them to the on-disk trie format on IntoDictionary. The zero
// value is not usable; call NewBuilder.
type Builder struct {
	nodes []node
}

// NewBuilder returns an empty Builder, already containing its root node
// (index 0, an ignored placeholder character).
func NewBuilder() *Builder {
	return &Builder{
		nodes: []node{{kind: kindChar, ch: '*'}},
	}
}

// AddWord inserts both directions of one translation pair: word keyed to
// translation, and translation keyed to word, each carrying the same POS
// index and article index. Call this once per (source, target) pair the
// lexicon defines; call it for entries with the higher-priority
// ordering (e.g. higher frequency) first, since insertion order is what
// determines the first, default variant at a shared terminator.
func (b *Builder) AddWord(word, translation string, posIndex uint8, articleIndex uint16) {
	b.addWordOneDirection(word, translation, posIndex, articleIndex)
	b.addWordOneDirection(translation, word, posIndex, articleIndex)
}

func (b *Builder) addWordOneDirection(word, translation string, posIndex uint8, articleIndex uint16) {
	cur := 0

	for _, ch := range word {
		cur = b.findOrInsertChild(cur, ch)
	}
	cur = b.findOrInsertChild(cur, 0)

	b.nodes[cur].terminator.variants = append(b.nodes[cur].terminator.variants, variant{
		pos:          posIndex,
		articleIndex: articleIndex,
		translation:  translation,
	})
}

// findOrInsertChild returns the index of parent's child whose character
// is ch, inserting a new one at the head of parent's child list if none
// exists yet. ch == 0 denotes the terminator child.
func (b *Builder) findOrInsertChild(parent int, ch rune) int {
	child := b.nodes[parent].firstChild
	for child != 0 {
		if b.nodes[child].char() == ch {
			return child
		}
		child = b.nodes[child].nextSib
	}

	newNode := node{nextSib: b.nodes[parent].firstChild}
	if ch == 0 {
		newNode.kind = kindTerminator
	} else {
		newNode.kind = kindChar
		newNode.ch = ch
	}

	b.nodes = append(b.nodes, newNode)
	newIndex := len(b.nodes) - 1
	b.nodes[parent].firstChild = newIndex

	return newIndex
}

// IntoDictionary runs the full serialisation pipeline — sort children,
// compute payloads, compute sizes, emit bytes — and writes the resulting
// dictionary file (4-byte length header followed by the trie) to output.
// It consumes the builder: calling any method on it afterwards is
// undefined.
func (b *Builder) IntoDictionary(output io.Writer) error {
	b.sortAllChildren()
	if err := b.computeAllPayloads(); err != nil {
		return err
	}
	b.computeSizes()

	var trie bytes.Buffer
	if err := b.writeNodes(&trie); err != nil {
		return err
	}

	var header [4]byte
	putUint32LE(header[:], uint32(trie.Len()))

	if _, err := output.Write(header[:]); err != nil {
		return err
	}
	_, err := output.Write(trie.Bytes())
	return err
}

func putUint32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// sortAllChildren reorders every node's child list ascending by
// character, with the terminator ('\0') sorting first, so sibling
// order on disk matches the read side's expectations.
func (b *Builder) sortAllChildren() {
	var scratch []int
	for i := range b.nodes {
		scratch = scratch[:0]

		child := b.nodes[i].firstChild
		for child != 0 {
			scratch = append(scratch, child)
			child = b.nodes[child].nextSib
		}

		sortByChar(scratch, func(idx int) rune { return b.nodes[idx].char() })

		b.nodes[i].firstChild = 0
		for j := len(scratch) - 1; j >= 0; j-- {
			c := scratch[j]
			b.nodes[c].nextSib = b.nodes[i].firstChild
			b.nodes[i].firstChild = c
		}
	}
}

// sortByChar sorts indices in place ascending by their character, using
// a straightforward insertion sort: child lists are small (bounded by
// alphabet fan-out), so this avoids pulling in sort.Slice's reflection
// overhead for a hot path.
func sortByChar(indices []int, charOf func(int) rune) {
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && charOf(indices[j-1]) > charOf(indices[j]); j-- {
			indices[j-1], indices[j] = indices[j], indices[j-1]
		}
	}
}

func (b *Builder) nChildren(parent int) int {
	count := 0
	child := b.nodes[parent].firstChild
	for child != 0 {
		count++
		child = b.nodes[child].nextSib
	}
	return count
}
