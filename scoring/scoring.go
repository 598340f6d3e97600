// Package scoring computes the letter/position frequency tables and
// per-word informativeness scores that the puzzle search uses to pick
// promising guesses, and the frequency-driven answer-eligibility and
// curated-subset reductions that keep the search fast on large
// dictionaries.
//
// Grounded on _examples/original_source/puzzle_generator.py's
// LetterFrequencyAnalyzer and PuzzleGenerator.__init__ /
// _select_curated_words, carried over verbatim in formula but
// restructured as pure functions over an explicit models.Dictionary
// instead of analyzer static methods plus instance state.
package scoring

import (
	"math"
	"math/rand"
	"sort"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

// Tuning constants named per spec.md §9, instead of scattered magic
// numbers.
const (
	// PositionWeight doubles a letter's position-specific frequency
	// contribution to word_score.
	PositionWeight = 2.0
	// MinLetterFreq floors a letter's contribution to word_score: any
	// letter whose global frequency is below this value (including one
	// that never appears in the dictionary) contributes this value.
	MinLetterFreq = 0.01
	// FrequencyBoostDivisor and FrequencyBoostCap bound the optional
	// word_score multiplier derived from an observed usage frequency.
	FrequencyBoostDivisor = 100.0
	FrequencyBoostCap     = 10.0
	// FrequencyBoostWeight scales the capped ratio before adding it to 1.
	FrequencyBoostWeight = 0.5

	// CuratedTopRatio and CuratedRandomRatio split a curated subset
	// between highest-scoring words and uniformly random padding.
	CuratedTopRatio    = 0.7
	CuratedRandomRatio = 0.3

	// AnswerFrequencyPercentile is the percentile of observed positive
	// frequencies used as the answer-eligibility threshold, alongside
	// the caller-supplied floor.
	AnswerFrequencyPercentile = 0.2
)

// ComputeTables builds letter and per-position frequency tables from
// every word in dict. Called once at Generator construction time; the
// result is never mutated afterward.
func ComputeTables(dict *models.Dictionary) models.ScoringTables {
	var letterCounts [26]int64
	var totalLetters int64
	var posCounts [models.WordLen][26]int64

	words := dict.Words()
	for _, w := range words {
		for pos := 0; pos < models.WordLen; pos++ {
			idx := w[pos] - 'a'
			letterCounts[idx]++
			totalLetters++
			posCounts[pos][idx]++
		}
	}

	tables := models.ScoringTables{
		LetterFreq: make(map[byte]float64, 26),
	}
	for l := 0; l < 26; l++ {
		if letterCounts[l] == 0 {
			continue
		}
		tables.LetterFreq[byte(l)+'a'] = float64(letterCounts[l]) / float64(totalLetters)
	}

	n := float64(len(words))
	for pos := 0; pos < models.WordLen; pos++ {
		tables.PositionFreq[pos] = make(map[byte]float64, 26)
		for l := 0; l < 26; l++ {
			if posCounts[pos][l] == 0 || n == 0 {
				continue
			}
			tables.PositionFreq[pos][byte(l)+'a'] = float64(posCounts[pos][l]) / n
		}
	}

	return tables
}

// Score computes word_score(w): the doubled position-frequency sum
// plus the distinct-letter frequency sum, optionally boosted by an
// observed usage frequency. freq may be nil, in which case no boost is
// applied.
func Score(w models.Word, t models.ScoringTables, freq models.FrequencyMap) float64 {
	var base float64
	var seen [26]bool

	for pos := 0; pos < models.WordLen; pos++ {
		letter := w[pos]
		if pf, ok := t.PositionFreq[pos][letter]; ok {
			base += PositionWeight * pf
		}
		idx := letter - 'a'
		if !seen[idx] {
			seen[idx] = true
			lf := t.LetterFreq[letter]
			if lf < MinLetterFreq {
				lf = MinLetterFreq
			}
			base += lf
		}
	}

	if freq == nil {
		return base
	}
	if wf, ok := freq[w]; ok {
		boost := wf / FrequencyBoostDivisor
		if boost > FrequencyBoostCap {
			boost = FrequencyBoostCap
		}
		return base * (1.0 + FrequencyBoostWeight*boost)
	}
	return base
}

// ComputeScores scores every word in dict against t and freq.
func ComputeScores(dict *models.Dictionary, t models.ScoringTables, freq models.FrequencyMap) models.WordScore {
	scores := make(models.WordScore, dict.Len())
	for _, w := range dict.Words() {
		scores[w] = Score(w, t, freq)
	}
	return scores
}

// SelectCurated reduces dict to a size-word subset: the top
// ⌊CuratedTopRatio·size⌋ words by score, padded with uniformly random
// picks from the remainder up to size, then re-sorted ascending to
// produce a valid Dictionary order. If dict already has size or fewer
// words, dict is returned unchanged.
func SelectCurated(dict *models.Dictionary, scores models.WordScore, size int, rng *rand.Rand) *models.Dictionary {
	words := dict.Words()
	if len(words) <= size {
		return dict
	}

	ranked := make([]models.Word, len(words))
	copy(ranked, words)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	topCount := int(float64(size) * CuratedTopRatio)
	if topCount > len(ranked) {
		topCount = len(ranked)
	}

	selected := make(map[models.Word]bool, size)
	result := make([]models.Word, 0, size)
	for _, w := range ranked[:topCount] {
		selected[w] = true
		result = append(result, w)
	}

	var remainder []models.Word
	for _, w := range ranked[topCount:] {
		remainder = append(remainder, w)
	}
	rng.Shuffle(len(remainder), func(i, j int) {
		remainder[i], remainder[j] = remainder[j], remainder[i]
	})

	want := size - len(result)
	if want > len(remainder) {
		want = len(remainder)
	}
	result = append(result, remainder[:want]...)

	return models.NewDictionary(models.SortWords(result))
}

// AnswerCandidates returns the words in dict eligible to be chosen as
// an answer: those with no known frequency, or with frequency at or
// above the larger of minFreq and the 20th-percentile of observed
// positive frequencies. If freq is empty, or no word passes the
// threshold, every word in dict is eligible.
func AnswerCandidates(dict *models.Dictionary, freq models.FrequencyMap, minFreq float64) []models.Word {
	words := dict.Words()
	if len(freq) == 0 {
		return append([]models.Word(nil), words...)
	}

	var positive []float64
	for _, w := range words {
		if f, ok := freq[w]; ok && f > 0 {
			positive = append(positive, f)
		}
	}

	threshold := minFreq
	if len(positive) > 0 {
		sort.Float64s(positive)
		idx := int(math.Floor(float64(len(positive)) * AnswerFrequencyPercentile))
		if idx >= len(positive) {
			idx = len(positive) - 1
		}
		if positive[idx] > threshold {
			threshold = positive[idx]
		}
	}

	var out []models.Word
	for _, w := range words {
		f, known := freq[w]
		if !known || f >= threshold {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return append([]models.Word(nil), words...)
	}
	return out
}

// WeightedChoice picks one word from candidates, weighted by freq(w)+1
// so unknown or zero-frequency words still have a non-zero chance.
// Panics if candidates is empty - a caller-level invariant violation,
// matching models.MustWord's convention for programming errors rather
// than user input.
func WeightedChoice(candidates []models.Word, freq models.FrequencyMap, rng *rand.Rand) models.Word {
	if len(candidates) == 0 {
		panic("scoring: WeightedChoice called with no candidates")
	}

	weights := make([]float64, len(candidates))
	var total float64
	for i, w := range candidates {
		weights[i] = freq[w] + 1.0
		total += weights[i]
	}

	target := rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}
