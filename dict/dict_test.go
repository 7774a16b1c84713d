package dict

import (
	"bytes"
	"sort"
	"testing"

	"readlex/trie"
)

func build(t *testing.T, add func(b *trie.Builder)) *Dictionary {
	t.Helper()
	b := trie.NewBuilder()
	add(b)

	var out bytes.Buffer
	if err := b.IntoDictionary(&out); err != nil {
		t.Fatalf("IntoDictionary: %v", err)
	}

	d, err := Open(out.Bytes())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return d
}

func TestRoundTripSingleWord(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 5, 42)
	})

	pos, ok, err := d.FindWord("cat")
	if err != nil || !ok {
		t.Fatalf("FindWord(cat) = (%d, %v, %v)", pos, ok, err)
	}

	v, err := d.ExtractVariant(pos)
	if err != nil {
		t.Fatalf("ExtractVariant: %v", err)
	}
	if v.POS != 5 || v.ArticleIndex != 42 {
		t.Errorf("variant = %+v, want POS=5 ArticleIndex=42", v)
	}

	translation, err := v.Translation.Translation()
	if err != nil {
		t.Fatalf("Translation: %v", err)
	}
	if translation != "kat" {
		t.Errorf("translation = %q, want kat", translation)
	}

	if _, ok, err := v.IntoNextOffset(); err != nil || ok {
		t.Errorf("IntoNextOffset = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestRoundTripIsBidirectional(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 5, 42)
	})

	pos, ok, err := d.FindWord("kat")
	if err != nil || !ok {
		t.Fatalf("FindWord(kat) = (%d, %v, %v)", pos, ok, err)
	}

	v, err := d.ExtractVariant(pos)
	if err != nil {
		t.Fatalf("ExtractVariant: %v", err)
	}
	translation, err := v.Translation.Translation()
	if err != nil {
		t.Fatalf("Translation: %v", err)
	}
	if translation != "cat" {
		t.Errorf("translation = %q, want cat", translation)
	}
}

func TestMultipleVariantsAtOneTerminator(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("a", "x", 1, 10)
		b.AddWord("a", "y", 2, 20)
	})

	pos, ok, err := d.FindWord("a")
	if err != nil || !ok {
		t.Fatalf("FindWord(a) = (%d, %v, %v)", pos, ok, err)
	}

	first, err := d.ExtractVariant(pos)
	if err != nil {
		t.Fatalf("ExtractVariant first: %v", err)
	}
	if first.POS != 1 {
		t.Errorf("first variant POS = %d, want 1 (insertion order preserved)", first.POS)
	}

	nextPos, ok, err := first.IntoNextOffset()
	if err != nil || !ok {
		t.Fatalf("IntoNextOffset = (%d, %v, %v), want a second variant", nextPos, ok, err)
	}

	second, err := d.ExtractVariant(nextPos)
	if err != nil {
		t.Fatalf("ExtractVariant second: %v", err)
	}
	if second.POS != 2 || second.ArticleIndex != 20 {
		t.Errorf("second variant = %+v, want POS=2 ArticleIndex=20", second)
	}

	if _, ok, err := second.IntoNextOffset(); err != nil || ok {
		t.Errorf("second.IntoNextOffset = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestFindWordMissing(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 0, 0)
	})

	if _, ok, err := d.FindWord("dog"); err != nil || ok {
		t.Errorf("FindWord(dog) = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestFindPrefixRejectsNul(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 0, 0)
	})

	if _, ok, err := d.FindPrefix("c\x00t"); err != nil || ok {
		t.Errorf("FindPrefix with NUL = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}

func TestSearchUnderPrefix(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 0, 1)
		b.AddWord("car", "kar", 0, 2)
		b.AddWord("cart", "kart", 0, 3)
		b.AddWord("dog", "dog", 0, 4)
	})

	results, err := d.Search("ca", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Search(ca) returned %d results, want 3: %+v", len(results), results)
	}
	for _, r := range results {
		if r.Word != "car" && r.Word != "cart" && r.Word != "cat" {
			t.Errorf("unexpected word %q in results", r.Word)
		}
	}
}

func TestSearchRespectsCapacity(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 0, 1)
		b.AddWord("car", "kar", 0, 2)
		b.AddWord("cart", "kart", 0, 3)
	})

	results, err := d.Search("ca", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("Search(ca, capacity=1) returned %d results, want 1", len(results))
	}
}

func TestSearchNegativeCapacityIsUnlimited(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 0, 1)
		b.AddWord("car", "kar", 0, 2)
		b.AddWord("cart", "kart", 0, 3)
	})

	results, err := d.Search("ca", -1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Errorf("Search(ca, -1) returned %d results, want 3", len(results))
	}
}

func TestSearchMissingPrefix(t *testing.T) {
	d := build(t, func(b *trie.Builder) {
		b.AddWord("cat", "kat", 0, 1)
	})

	results, err := d.Search("zz", 10)
	if err != nil || len(results) != 0 {
		t.Errorf("Search(zz) = (%v, %v), want (nil, nil)", results, err)
	}
}

func TestEnumerationCompleteness(t *testing.T) {
	words := []string{"cat", "car", "cart", "dog", "do"}

	d := build(t, func(b *trie.Builder) {
		for i, w := range words {
			b.AddWord(w, w, uint8(i), uint16(i))
		}
	})

	w := d.Walker()
	var seen []string
	for {
		word, _, ok, err := w.Next()
		if err != nil {
			t.Fatalf("Walker.Next: %v", err)
		}
		if !ok {
			break
		}
		seen = append(seen, word)
	}

	if !sort.StringsAreSorted(seen) {
		t.Errorf("words not enumerated in ascending order: %v", seen)
	}

	seenSet := map[string]bool{}
	for _, s := range seen {
		seenSet[s] = true
	}
	for _, w := range words {
		if !seenSet[w] {
			t.Errorf("word %q missing from enumeration", w)
		}
	}
}
