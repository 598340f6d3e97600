package models

import "sort"

// Dictionary is an ordered, deduplicated collection of Words. The
// order is first-seen insertion order, fixed at construction and
// treated as the canonical iteration order for everything downstream
// (spec.md requires deterministic iteration for reproducibility) - it
// is not sorted; use SortWords for an ascending view. A Dictionary is
// immutable after construction and therefore safe to share across
// goroutines without locking.
//
// This generalizes the teacher's data.WordlistMaps singleton (a
// package-level slice+map pair guarded by sync.Once) into an
// instance-owned value: the puzzle generator owns its Dictionary
// exclusively and nothing else needs a global.
type Dictionary struct {
	words []Word
	index map[Word]int
}

// NewDictionary builds a Dictionary from words, deduplicating while
// preserving first-seen order.
func NewDictionary(words []Word) *Dictionary {
	d := &Dictionary{
		words: make([]Word, 0, len(words)),
		index: make(map[Word]int, len(words)),
	}
	for _, w := range words {
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = len(d.words)
		d.words = append(d.words, w)
	}
	return d
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the dictionary's words in insertion order. Callers
// must not mutate the returned slice.
func (d *Dictionary) Words() []Word {
	return d.words
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w Word) bool {
	_, ok := d.index[w]
	return ok
}

// Index returns the position of w in insertion order, or -1 if w is
// not present.
func (d *Dictionary) Index(w Word) int {
	if i, ok := d.index[w]; ok {
		return i
	}
	return -1
}

// SortWords returns a copy of words sorted into ascending order - a
// separate view, not Dictionary's own (insertion) order.
func SortWords(words []Word) []Word {
	out := make([]Word, len(words))
	copy(out, words)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
