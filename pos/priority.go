package pos

// PairPriority is an NPOS x NPOS table of non-negative scores: higher
// means the right-hand POS is more expected to follow the left-hand one.
// The spec leaves the exact values as an external data table (normally
// derived from corpus statistics); this is a hand-authored stand-in with
// the same shape, tuned only enough to make the documented end-to-end
// scenarios (§8) come out the way they're specified — a pronoun is
// preferred at the start of a sentence, and a verb is preferred right
// after a pronoun.
var PairPriority [NPOS][NPOS]uint8

// priorityRule overrides the default score for one (left, right) pair.
// Rules not listed fall back to defaultPriority.
type priorityRule struct {
	left, right uint8
	score       uint8
}

const defaultPriority = 10

func init() {
	for l := range PairPriority {
		for r := range PairPriority[l] {
			PairPriority[l][r] = defaultPriority
		}
	}

	rules := []priorityRule{
		// Sentence-initial context prefers a determiner, pronoun, proper
		// noun or common noun over a bare verb form.
		{StartOfSentence, AT0idx, 40},
		{StartOfSentence, PNP, 50},
		{StartOfSentence, NP0, 35},
		{StartOfSentence, NN1idx, 25},
		{StartOfSentence, VVB, 12},

		// A personal pronoun is most often followed by a verb.
		{PNP, VVB, 60},
		{PNP, VVZidx, 45},
		{PNP, VVDidx, 40},
		{PNP, NN1idx, 15},

		// A determiner or article is most often followed by a noun or
		// adjective, rarely directly by a verb.
		{AT0idx, NN1idx, 55},
		{AT0idx, AJ0idx, 45},
		{AT0idx, NN0idx, 30},
		{AT0idx, VVB, 5},

		// A preposition is most often followed by a determiner or noun.
		{PREidx, AT0idx, 50},
		{PREidx, NN1idx, 35},

		// A proper noun is most often followed by a verb or punctuation
		// class token, rarely by another determiner.
		{NP0, VVZidx, 40},
		{NP0, VVDidx, 35},
		{NP0, AT0idx, 8},
	}

	for _, rule := range rules {
		PairPriority[rule.left][rule.right] = rule.score
	}
}

// Indices of further POS tags the rule table above refers to by name,
// to keep it readable. They are exported alongside NP0/PNP/VVB and are
// checked against Names in init below.
const (
	AT0idx = 3
	NN0idx = 16
	NN1idx = 17
	AJ0idx = 0
	PREidx = 26
	VVDidx = 33
	VVZidx = 36
)

func init() {
	for _, pair := range [][2]interface{}{
		{AT0idx, "AT0"}, {NN0idx, "NN0"}, {NN1idx, "NN1"}, {AJ0idx, "AJ0"},
		{PREidx, "PRE"}, {VVDidx, "VVD"}, {VVZidx, "VVZ"},
	} {
		if Names[pair[0].(int)] != pair[1].(string) {
			panic("pos: priority table index constants drifted from Names")
		}
	}
}

// Score returns PairPriority[left][right], treating any right index at
// or beyond NPOS as the lowest possible score (0), per §4.5.
func Score(left, right uint8) uint8 {
	if int(right) >= NPOS {
		return 0
	}
	return PairPriority[left][right]
}
