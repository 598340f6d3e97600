// Package puzzle implements the constraint-based puzzle search: an
// outer randomized-trial loop around an inner greedy guess-selection
// step, producing four guesses whose combined feedback uniquely (or
// as close to uniquely as max_attempts allows) identifies an answer.
//
// Grounded on _examples/original_source/puzzle_generator.py's
// PuzzleGenerator.generate_puzzle, restructured as a Generator value
// built once (like the teacher's InformationGainStrategy) instead of
// an object carrying mutable per-call caches.
package puzzle

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/cortlandwarner/wordpuzzlegen/candidates"
	"github.com/cortlandwarner/wordpuzzlegen/feedback"
	"github.com/cortlandwarner/wordpuzzlegen/logger"
	"github.com/cortlandwarner/wordpuzzlegen/models"
	"github.com/cortlandwarner/wordpuzzlegen/scoring"
)

var log = logger.New()

// entropySeed returns a fresh seed for an entropy-sourced *rand.Rand,
// used whenever a caller leaves Options.Rand / GenerateOptions.Rand
// nil rather than threading an explicit seed through.
func entropySeed() int64 { return time.Now().UnixNano() }

// Tuning constants named per spec.md §9.
const (
	// DefaultMaxAttempts is the outer-loop trial budget when
	// GenerateOptions.MaxAttempts is zero.
	DefaultMaxAttempts = 500

	// TopPoolSize and RandomPoolSize bound the candidate-guess pool
	// considered at each inner-loop step: a top-scored pool for the
	// first half of attempts, a uniform random pool for the second.
	TopPoolSize    = 300
	RandomPoolSize = 400

	// ScoredCandidateLimit bounds how many of the dictionary's
	// highest-scoring words are pre-sorted once at construction time,
	// from which TopPoolSize is sliced per attempt.
	ScoredCandidateLimit = 500

	// LetterOverlapCutoff: guesses 1 and 2 (k<3) skip any candidate
	// whose letters overlap the already-used letter set by more than
	// this many letters, forcing early exploration.
	LetterOverlapCutoff = 3

	// PruningMinCandidates: the reduction-floor prune below only
	// applies once the surviving candidate set exceeds this size.
	PruningMinCandidates = 20
	// PruningMinReductionRatio: a candidate guess is skipped (once
	// PruningMinCandidates applies) if it reduces the candidate set by
	// less than this fraction.
	PruningMinReductionRatio = 0.1

	// Score formula weights: score = InfoGainWeight*info_gain +
	// GreenWeight*green_count + YellowWeight*yellow_count +
	// FrequencyWeight*word_score - DiversityWeight*letter_overlap.
	InfoGainWeight   = 20.0
	GreenWeight      = 5.0
	YellowWeight     = 2.0
	FrequencyWeight  = 100.0
	DiversityWeight  = 20.0
	NumGuessesPerPuz = 4
)

var (
	// ErrEmptyDictionary is returned by NewGenerator when the loaded
	// dictionary has no words - a configuration error.
	ErrEmptyDictionary = errors.New("puzzle: dictionary is empty")
	// ErrAnswerNotInDictionary is returned by GeneratePuzzle when an
	// explicit answer is not a member of the generator's dictionary.
	ErrAnswerNotInDictionary = errors.New("puzzle: answer not in dictionary")
	// ErrNoGuessesFound is returned when not a single trial assembled
	// four guesses: a dictionary too small to supply distinct guesses,
	// or a context cancelled before any trial completed.
	ErrNoGuessesFound = errors.New("puzzle: no trial produced four guesses")
)

// Options configures Generator construction, mirroring spec.md §6's
// construction parameters.
type Options struct {
	Dictionary         *models.Dictionary
	Frequencies        models.FrequencyMap
	UseCurated         bool
	CuratedSize        int
	MinAnswerFrequency float64
	// Rand seeds the curated-subset random padding at construction
	// time. Nil means a fresh entropy-seeded source.
	Rand *rand.Rand
}

// GenerateOptions configures a single GeneratePuzzle call.
type GenerateOptions struct {
	// Answer, if the zero Word, is chosen via frequency-weighted
	// random selection from the generator's answer candidates.
	Answer models.Word
	// MaxAttempts defaults to DefaultMaxAttempts when zero.
	MaxAttempts int
	// Rand seeds this call's trial randomness. Nil means a fresh
	// entropy-seeded source, matching spec.md §5's "no hidden global
	// random state" requirement. A *rand.Rand is not safe for
	// concurrent use, so concurrent GeneratePuzzle calls must not share
	// one.
	Rand *rand.Rand
}

// Generator owns a dictionary, its frequency data, and precomputed
// scoring tables, built once and never mutated afterward - the same
// read-only-after-construction shape as the teacher's
// InformationGainStrategy.
type Generator struct {
	dict             *models.Dictionary
	freq             models.FrequencyMap
	tables           models.ScoringTables
	scores           models.WordScore
	answerCandidates []models.Word
	minAnswerFreq    float64

	sortedByScore []models.Word
	topPool       []models.Word

	finder *candidates.CachedFinder
	log    *logger.Logger
}

// NewGenerator builds a Generator from opts. The dictionary, curated
// subset (if requested), scoring tables, and answer-candidate list are
// all computed once here; GeneratePuzzle never mutates them.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Dictionary == nil || opts.Dictionary.Len() == 0 {
		return nil, ErrEmptyDictionary
	}

	dict := opts.Dictionary
	tables := scoring.ComputeTables(dict)
	scores := scoring.ComputeScores(dict, tables, opts.Frequencies)

	if opts.UseCurated && opts.CuratedSize > 0 && dict.Len() > opts.CuratedSize {
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewSource(entropySeed()))
		}
		dict = scoring.SelectCurated(dict, scores, opts.CuratedSize, rng)
		tables = scoring.ComputeTables(dict)
		scores = scoring.ComputeScores(dict, tables, opts.Frequencies)
	}

	answerCandidates := scoring.AnswerCandidates(dict, opts.Frequencies, opts.MinAnswerFrequency)

	sortedByScore := append([]models.Word(nil), dict.Words()...)
	sort.SliceStable(sortedByScore, func(i, j int) bool {
		return scores[sortedByScore[i]] > scores[sortedByScore[j]]
	})
	topLimit := ScoredCandidateLimit
	if topLimit > len(sortedByScore) {
		topLimit = len(sortedByScore)
	}
	topPool := sortedByScore[:topLimit]

	finder, err := candidates.NewCachedFinder(1024)
	if err != nil {
		return nil, err
	}

	return &Generator{
		dict:             dict,
		freq:             opts.Frequencies,
		tables:           tables,
		scores:           scores,
		answerCandidates: answerCandidates,
		minAnswerFreq:    opts.MinAnswerFrequency,
		sortedByScore:    sortedByScore,
		topPool:          topPool,
		finder:           finder,
		log:              log,
	}, nil
}

// Dictionary returns the generator's (possibly curated) working
// dictionary.
func (g *Generator) Dictionary() *models.Dictionary { return g.dict }

// trial holds the mutable state of a single outer-loop attempt.
type trial struct {
	guesses      []models.Word
	feedbacks    []models.Feedback
	usedLetters  uint32
	candidates   []models.Word // nil means "not yet narrowed, full dictionary"
	haveNarrowed bool
}

// GeneratePuzzle runs the outer randomized-trial loop, returning the
// best puzzle found within opts.MaxAttempts attempts. It returns
// immediately on the first trial that uniquely identifies the answer.
func (g *Generator) GeneratePuzzle(ctx context.Context, opts GenerateOptions) (models.Puzzle, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(entropySeed()))
	}

	answer := opts.Answer
	var zero models.Word
	if answer == zero {
		if len(g.answerCandidates) == 0 {
			return models.Puzzle{}, ErrEmptyDictionary
		}
		answer = scoring.WeightedChoice(g.answerCandidates, g.freq, rng)
	} else if g.dict.Index(answer) < 0 {
		return models.Puzzle{}, ErrAnswerNotInDictionary
	}

	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var bestTrial *trial
	bestRemaining := g.dict.Len() + 1

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			break
		}

		pool := g.candidatePool(attempt, maxAttempts, rng)
		t := g.runTrial(answer, pool)

		if len(t.guesses) < NumGuessesPerPuz {
			g.log.Debug("trial abandoned: fewer than four guesses found", "attempt", attempt, "guessesFound", len(t.guesses))
			continue
		}

		final := g.finalCandidates(t)
		if len(final) == 1 && final[0] == answer {
			g.log.Info("puzzle generated", "attempts", attempt+1, "candidatesRemaining", len(final))
			return buildPuzzle(answer, t, final), nil
		}

		if len(final) < bestRemaining {
			bestRemaining = len(final)
			t.candidates = final
			bestTrial = t
		} else {
			g.log.Debug("trial bested by an earlier attempt", "attempt", attempt, "candidatesRemaining", len(final), "bestRemaining", bestRemaining)
		}
	}

	if bestTrial == nil {
		return models.Puzzle{}, ErrNoGuessesFound
	}

	g.log.Info("puzzle generated (best effort)", "attempts", maxAttempts, "candidatesRemaining", len(bestTrial.candidates))
	return buildPuzzle(answer, bestTrial, bestTrial.candidates), nil
}

// candidatePool returns the guess pool to draw from for this attempt:
// the top-scored pool for the first half of attempts, a uniform
// random sample for the second, per spec.md §4.4.
func (g *Generator) candidatePool(attempt, maxAttempts int, rng *rand.Rand) []models.Word {
	if attempt < maxAttempts/2 {
		limit := TopPoolSize
		if limit > len(g.topPool) {
			limit = len(g.topPool)
		}
		return g.topPool[:limit]
	}

	words := g.dict.Words()
	n := RandomPoolSize
	if n > len(words) {
		n = len(words)
	}
	sample := make([]models.Word, len(words))
	copy(sample, words)
	rng.Shuffle(len(sample), func(i, j int) { sample[i], sample[j] = sample[j], sample[i] })
	return sample[:n]
}

// runTrial assembles up to NumGuessesPerPuz guesses via the inner
// greedy step. Once the candidate set has narrowed to exactly
// {answer}, the remaining guesses are still chosen the same way; they
// leave that set unchanged.
func (g *Generator) runTrial(answer models.Word, pool []models.Word) *trial {
	t := &trial{}

	for k := 0; k < NumGuessesPerPuz; k++ {
		best, bestFb, _, _, found := g.selectGuess(answer, pool, t, k)
		if !found {
			break
		}

		t.guesses = append(t.guesses, best)
		t.feedbacks = append(t.feedbacks, bestFb)
		t.usedLetters |= best.DistinctLetters()
		t.candidates = g.finder.FindIncremental(bestFb, g.seedFor(t))
		t.haveNarrowed = true
	}

	return t
}

// seedFor returns the seed candidate set to filter from for the next
// incremental step: the full dictionary word list before any guess has
// narrowed the set, else the current candidates.
func (g *Generator) seedFor(t *trial) []models.Word {
	if !t.haveNarrowed {
		return g.dict.Words()
	}
	return t.candidates
}

// selectGuess runs the inner greedy step for guess k: scans pool for
// the highest-scoring admissible guess, applying the letter-overlap
// exploration cutoff (k<2) and the reduction-floor prune.
func (g *Generator) selectGuess(
	answer models.Word,
	pool []models.Word,
	t *trial,
	k int,
) (best models.Word, bestFb models.Feedback, bestRemaining int, bestScore float64, found bool) {
	bestScore = -1
	bestRemaining = g.dict.Len() + 1

	currentSize := g.dict.Len()
	if t.haveNarrowed {
		currentSize = len(t.candidates)
	}

	already := make(map[models.Word]bool, len(t.guesses))
	for _, w := range t.guesses {
		already[w] = true
	}

	for _, guess := range pool {
		if guess == answer || already[guess] {
			continue
		}

		overlapMask := t.usedLetters & guess.DistinctLetters()
		overlap := popcount(overlapMask)
		if k < 2 && overlap > LetterOverlapCutoff {
			continue
		}

		fb := feedback.Derive(guess, answer)
		remainingWords := g.finder.FindIncremental(fb, g.seedFor(t))
		remaining := len(remainingWords)
		if remaining == 0 {
			continue
		}

		if k > 0 && t.haveNarrowed && currentSize > PruningMinCandidates {
			reduction := currentSize - remaining
			if float64(reduction) < float64(currentSize)*PruningMinReductionRatio {
				continue
			}
		}

		greenCount, yellowCount := 0, 0
		for _, e := range fb.Entries {
			switch e.Tile {
			case models.Exact:
				greenCount++
			case models.Present:
				yellowCount++
			}
		}

		infoGain := currentSize - remaining
		constraintScore := float64(greenCount)*GreenWeight + float64(yellowCount)*YellowWeight
		frequencyBonus := g.scores[guess] * FrequencyWeight
		diversityPenalty := float64(overlap) * DiversityWeight

		score := float64(infoGain)*InfoGainWeight + constraintScore + frequencyBonus - diversityPenalty

		if score > bestScore || (score == bestScore && remaining < bestRemaining) {
			bestScore = score
			best = guess
			bestFb = fb
			bestRemaining = remaining
			found = true
		}
	}

	return best, bestFb, bestRemaining, bestScore, found
}

// finalCandidates returns the candidate set surviving all of t's
// guesses.
func (g *Generator) finalCandidates(t *trial) []models.Word {
	if !t.haveNarrowed {
		return g.dict.Words()
	}
	return t.candidates
}

func buildPuzzle(answer models.Word, t *trial, final []models.Word) models.Puzzle {
	p := models.Puzzle{Answer: answer, CandidatesRemaining: len(final)}
	for i := 0; i < NumGuessesPerPuz && i < len(t.guesses); i++ {
		p.Guesses[i] = t.guesses[i]
		p.Feedbacks[i] = t.feedbacks[i]
	}
	if len(final) > 1 {
		p.ValidAnswers = final
	} else {
		p.ValidAnswers = []models.Word{answer}
	}
	return p
}

func popcount(mask uint32) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}
