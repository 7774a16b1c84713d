// Package pos defines the closed inventory of part-of-speech tags used
// throughout the dictionary, the remap table that collapses minor source
// tags onto it, and the POS-pair priority table used to pick the best
// translation variant for a given preceding context.
package pos

import (
	"sort"
	"strings"
)

// Names is the fixed, lexicographically sorted inventory of 39 BNC-style
// part-of-speech tags. The StartOfSentence sentinel is not listed here;
// it takes the index just past the end (NPOS-1). Consumers look up a
// tag's index with Index.
var Names = [...]string{
	"AJ0", "AJC", "AJS", "AT0", "AV0", "AVP", "AVQ", "CJC", "CJS",
	"CJT", "CRD", "DPS", "DT0", "DTQ", "EX0", "ITJ", "NN0", "NN1",
	"NN2", "NP0", "ORD", "PNI", "PNP", "PNQ", "PNX", "POS", "PRE",
	"PRF", "PRP", "TO0", "UNC", "VM0", "VVB", "VVD", "VVG",
	"VVN", "VVZ", "XX0", "ZZ0",
}

// NPOS is the total number of POS slots, including the sentinel
// (len(Names) + 1, checked in init).
const NPOS = 40

// StartOfSentence is the sentinel index meaning "no preceding word
// context" — either at the very start of the input or right after a
// sentence-ending '.'.
const StartOfSentence = NPOS - 1

// Well-known tag indices referenced directly by the transliterator's
// capitalisation rules and by the priority table.
const (
	NP0 = 19 // proper noun
	PNP = 22 // personal pronoun
	VVB = 32 // base form verb
)

func init() {
	if len(Names)+1 != NPOS {
		panic("pos: NPOS does not match the Names table")
	}
	if Names[NP0] != "NP0" || Names[PNP] != "PNP" || Names[VVB] != "VVB" {
		panic("pos: Names table does not match the hard-coded indices")
	}
}

// Index looks up the index of a POS tag name via binary search over the
// sorted Names table. ok is false if name is not a recognised tag (the
// sentinel is not looked up by name and is never returned here).
func Index(name string) (index uint8, ok bool) {
	i := sort.Search(len(Names), func(i int) bool { return Names[i] >= name })
	if i < len(Names) && Names[i] == name {
		return uint8(i), true
	}
	return 0, false
}

// remap collapses source tags that the core treats as synonyms of a
// canonical tag: auxiliary-verb forms of "to be"/"to do"/"to have" onto
// the corresponding plain verb tag, a stray typo code onto NP0, and the
// "infinitive" verb form onto the "base form" one. The table must stay
// sorted by source tag for the binary search in Remap.
var remapTable = [...][2]string{
	{"P0", "NP0"},
	{"VBB", "VVB"},
	{"VBD", "VVD"},
	{"VBG", "VVG"},
	{"VBI", "VVB"},
	{"VBN", "VVN"},
	{"VBZ", "VVZ"},
	{"VDB", "VVB"},
	{"VDD", "VVD"},
	{"VDG", "VVG"},
	{"VDI", "VVB"},
	{"VDN", "VVN"},
	{"VDZ", "VVZ"},
	{"VHB", "VVB"},
	{"VHD", "VVD"},
	{"VHG", "VVG"},
	{"VHI", "VVB"},
	{"VHN", "VVN"},
	{"VHZ", "VVZ"},
	{"VVI", "VVB"},
}

func init() {
	for i := 1; i < len(remapTable); i++ {
		if remapTable[i-1][0] >= remapTable[i][0] {
			panic("pos: remapTable is not sorted")
		}
	}
}

// Remap resolves a raw POS string (possibly a "+"-joined compound, of
// which only the first component is significant for trie payload
// purposes) to a canonical tag index. ok is false if the tag (after
// remapping) is not in the inventory.
func Remap(rawTag string) (index uint8, ok bool) {
	first := rawTag
	if i := strings.IndexByte(rawTag, '+'); i >= 0 {
		first = rawTag[:i]
	}

	tag := first
	i := sort.Search(len(remapTable), func(i int) bool { return remapTable[i][0] >= first })
	if i < len(remapTable) && remapTable[i][0] == first {
		tag = remapTable[i][1]
	}

	return Index(tag)
}
