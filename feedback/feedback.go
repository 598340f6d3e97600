// Package feedback implements the two-pass, multiset-aware marking
// that turns a (guess, answer) pair into per-position tiles, and the
// corresponding word/feedback consistency check. Both functions are
// pure and total: every five-letter (guess, answer) pair produces a
// well-defined Feedback, and every (word, Feedback) pair produces a
// well-defined boolean.
package feedback

import "github.com/cortlandwarner/wordpuzzlegen/models"

// Derive computes the feedback for guess against answer.
//
// First pass marks every position where guess[i] == answer[i] as
// Exact and decrements an ephemeral multiset of answer's letters.
// Second pass marks the remaining positions Present (if the guess
// letter still has a positive count in the multiset) or Absent,
// decrementing on a Present match. This is what makes duplicated
// letters behave correctly: of two guessed l's against one answer l,
// exactly one gets Exact/Present and the other gets Absent.
func Derive(guess, answer models.Word) models.Feedback {
	var remaining [26]int8
	for _, c := range answer {
		remaining[c-'a']++
	}

	var entries [models.WordLen]models.TileEntry
	var isExact [models.WordLen]bool

	for i := 0; i < models.WordLen; i++ {
		if guess[i] == answer[i] {
			entries[i] = models.TileEntry{Letter: guess[i], Position: i, Tile: models.Exact}
			isExact[i] = true
			remaining[guess[i]-'a']--
		}
	}

	for i := 0; i < models.WordLen; i++ {
		if isExact[i] {
			continue
		}
		idx := guess[i] - 'a'
		if remaining[idx] > 0 {
			entries[i] = models.TileEntry{Letter: guess[i], Position: i, Tile: models.Present}
			remaining[idx]--
		} else {
			entries[i] = models.TileEntry{Letter: guess[i], Position: i, Tile: models.Absent}
		}
	}

	return models.Feedback{Guess: guess, Entries: entries}
}

// Satisfies reports whether word is consistent with fb: every Exact
// tile matches word's letter at that position, every Present tile's
// letter occurs in word but not at that position, and every Absent
// tile's letter does not appear in word more times than the Exact and
// Present tiles already require. An Absent tile caps a letter's count,
// it does not forbid the letter outright.
func Satisfies(word models.Word, fb models.Feedback) bool {
	wordCounts := word.LetterCounts()
	var required [26]int8

	for _, e := range fb.Entries {
		if e.Tile != models.Exact {
			continue
		}
		if word[e.Position] != e.Letter {
			return false
		}
		required[e.Letter-'a']++
	}

	for _, e := range fb.Entries {
		if e.Tile != models.Present {
			continue
		}
		if word[e.Position] == e.Letter {
			return false
		}
		idx := e.Letter - 'a'
		if wordCounts[idx] == 0 {
			return false
		}
		required[idx]++
	}

	for _, e := range fb.Entries {
		if e.Tile != models.Absent {
			continue
		}
		if word[e.Position] == e.Letter {
			return false
		}
		idx := e.Letter - 'a'
		if wordCounts[idx] > required[idx] {
			return false
		}
	}

	for i := 0; i < 26; i++ {
		if required[i] > 0 && wordCounts[i] < required[i] {
			return false
		}
	}

	return true
}
