// Package candidates implements the constraint-satisfaction filter
// that narrows a dictionary (or a prior candidate set) down to the
// words consistent with one or more feedback sets.
package candidates

import (
	"github.com/cortlandwarner/wordpuzzlegen/feedback"
	"github.com/cortlandwarner/wordpuzzlegen/models"
)

// preparedFeedback extracts the cheap-to-check fast tests for one
// feedback set (green positions, per-letter minimum counts, yellow
// forbidden positions) so Find can reject most words before paying
// for the full feedback.Satisfies check.
type preparedFeedback struct {
	fb                 models.Feedback
	greenLetter        [models.WordLen]int8 // letter index, or -1
	yellowLetter       [26]bool
	yellowForbiddenPos [models.WordLen]int8 // letter index, or -1
	required           [26]int8
}

func prepare(fb models.Feedback) preparedFeedback {
	p := preparedFeedback{fb: fb}
	for i := range p.greenLetter {
		p.greenLetter[i] = -1
		p.yellowForbiddenPos[i] = -1
	}
	for _, e := range fb.Entries {
		idx := int8(e.Letter - 'a')
		switch e.Tile {
		case models.Exact:
			p.greenLetter[e.Position] = idx
			p.required[idx]++
		case models.Present:
			p.yellowLetter[idx] = true
			p.yellowForbiddenPos[e.Position] = idx
			p.required[idx]++
		}
	}
	return p
}

// fastReject applies the cheap pre-filters in cheap-to-expensive
// order: green positions first (most restrictive), then required
// letter minimum counts, then yellow presence, then yellow forbidden
// positions. It reports true if w can be rejected without running the
// full consistency check.
func (p preparedFeedback) fastReject(w models.Word) bool {
	for pos, letterIdx := range p.greenLetter {
		if letterIdx >= 0 && w[pos] != byte(letterIdx)+'a' {
			return true
		}
	}

	wordCounts := w.LetterCounts()

	for l := 0; l < 26; l++ {
		if p.required[l] > 0 && wordCounts[l] < p.required[l] {
			return true
		}
	}

	for l := 0; l < 26; l++ {
		if p.yellowLetter[l] && wordCounts[l] == 0 {
			return true
		}
	}

	for pos, letterIdx := range p.yellowForbiddenPos {
		if letterIdx >= 0 && w[pos] == byte(letterIdx)+'a' {
			return true
		}
	}

	return false
}

// Find returns the words satisfying every feedback in feedbacks.
// When seed is non-nil it is used as the starting candidate set
// (incremental filtering); otherwise the search starts from dict's
// full word list. Returned order is always ascending (alphabetical)
// order via models.SortWords, independent of seed's order and of the
// Dictionary's insertion order, so callers can rely on deterministic
// output.
func Find(feedbacks []models.Feedback, seed []models.Word, dict *models.Dictionary) []models.Word {
	var working []models.Word
	switch {
	case seed != nil:
		working = seed
	case dict != nil:
		working = dict.Words()
	}

	for _, fb := range feedbacks {
		if len(working) == 0 {
			break
		}
		prepared := prepare(fb)
		next := make([]models.Word, 0, len(working))
		for _, w := range working {
			if prepared.fastReject(w) {
				continue
			}
			if feedback.Satisfies(w, fb) {
				next = append(next, w)
			}
		}
		working = next
	}

	return models.SortWords(working)
}
