// Package csvexport writes a batch of generated puzzles to CSV, the
// same output shape as original_source/generate_puzzle_csv.py:
// one row per puzzle with puzzle_id, answer, a JSON-encoded guesses
// array, and a JSON-encoded valid_answers array.
//
// Grounded on generate_puzzle_csv.py's generate_puzzles_csv (row
// shape, field names, running summary) and on
// bent101-go-wordle-solving/api/wordle.go for the schollz/progressbar
// v3 usage idiom (progressbar.Default(total)), which cmd/puzzlegen
// drives through ProgressFunc; this package does not import it.
package csvexport

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"

	"github.com/cortlandwarner/wordpuzzlegen/models"
	"github.com/cortlandwarner/wordpuzzlegen/puzzle"
)

var csvHeader = []string{"puzzle_id", "answer", "guesses_json", "valid_answers_json"}

// jsonGuessRow mirrors one element of the Python script's guesses_json
// array: a word plus its constraint list.
type jsonGuessRow struct {
	Word        string   `json:"word"`
	Constraints []string `json:"constraints"`
}

// ProgressFunc is called once after each puzzle attempt (successful or
// not) with the number completed so far and the batch total. It lets
// a CLI drive a progress bar without WriteBatch depending on any
// particular rendering.
type ProgressFunc func(done, total int)

// BatchOptions configures a batch export run. Seed seeds a single
// top-level *rand.Rand that a fresh, independently-seeded *rand.Rand
// is derived from for every puzzle, so a whole batch run is
// reproducible from one number without puzzles sharing generator
// state.
type BatchOptions struct {
	Seed        int64
	MaxAttempts int
	Progress    ProgressFunc
}

// BatchResult reports how a batch export went, supplementing the
// Python original's terminal summary print with a structured count a
// CLI can log or branch on.
type BatchResult struct {
	Requested     int
	Written       int
	Perfect       int
	BestEffort    int
	Failed        int
	UniqueAnswers int
}

// WriteBatch generates n puzzles from gen and writes them as CSV rows
// to w. A puzzle that fails to generate at all is logged by the
// caller (WriteBatch only counts it) and skipped, matching the Python
// script's try/except-continue loop - a batch export should not abort
// because one attempt ran dry.
func WriteBatch(ctx context.Context, w io.Writer, gen *puzzle.Generator, n int, opts BatchOptions) (BatchResult, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return BatchResult{}, err
	}

	seedRng := rand.New(rand.NewSource(opts.Seed))
	seen := make(map[models.Word]bool)
	result := BatchResult{Requested: n}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		puzzleRng := rand.New(rand.NewSource(seedRng.Int63()))
		p, err := gen.GeneratePuzzle(ctx, puzzle.GenerateOptions{
			MaxAttempts: opts.MaxAttempts,
			Rand:        puzzleRng,
		})
		if err != nil {
			result.Failed++
			if opts.Progress != nil {
				opts.Progress(i+1, n)
			}
			continue
		}

		if err := writeRow(cw, i+1, p); err != nil {
			return result, err
		}
		seen[p.Answer] = true
		result.Written++
		if p.Perfect() {
			result.Perfect++
		} else {
			result.BestEffort++
		}

		if opts.Progress != nil {
			opts.Progress(i+1, n)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return result, err
	}

	result.UniqueAnswers = len(seen)
	return result, nil
}

func writeRow(cw *csv.Writer, puzzleID int, p models.Puzzle) error {
	guessRows := make([]jsonGuessRow, len(p.Feedbacks))
	for i, fb := range p.Feedbacks {
		row := jsonGuessRow{Word: fb.Guess.String(), Constraints: make([]string, len(fb.Entries))}
		for j, e := range fb.Entries {
			row.Constraints[j] = e.Tile.String()
		}
		guessRows[i] = row
	}
	guessesJSON, err := json.Marshal(guessRows)
	if err != nil {
		return err
	}

	validAnswers := p.ValidAnswers
	if len(validAnswers) == 0 {
		validAnswers = []models.Word{p.Answer}
	}
	validStrs := make([]string, len(validAnswers))
	for i, w := range validAnswers {
		validStrs[i] = w.String()
	}
	validJSON, err := json.Marshal(validStrs)
	if err != nil {
		return err
	}

	return cw.Write([]string{
		fmt.Sprintf("%d", puzzleID),
		p.Answer.String(),
		string(guessesJSON),
		string(validJSON),
	})
}
