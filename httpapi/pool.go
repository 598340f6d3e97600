package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

// jsonGuessRow mirrors csvexport's row-level guess encoding; kept as
// a private duplicate rather than an import of csvexport so httpapi
// only depends on the CSV *wire shape*, not on the export package's
// batch-run machinery.
type jsonGuessRow struct {
	Word        string   `json:"word"`
	Constraints []string `json:"constraints"`
}

// Pool holds a set of pre-generated puzzles loaded from a csvexport
// CSV file, and hands them out without repeats until exhausted - the
// Go equivalent of server.py's puzzles_db + served_puzzle_ids pair.
type Pool struct {
	mu      sync.Mutex
	puzzles []models.Puzzle
	served  map[int]bool
}

// LoadPool reads a csvexport-produced CSV file into a Pool.
func LoadPool(r io.Reader) (*Pool, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Pool{served: make(map[int]bool)}, nil
	}

	puzzles := make([]models.Puzzle, 0, len(records)-1)
	for _, row := range records[1:] {
		if len(row) != 4 {
			continue
		}
		p, err := parseRow(row)
		if err != nil {
			continue
		}
		puzzles = append(puzzles, p)
	}
	return &Pool{puzzles: puzzles, served: make(map[int]bool)}, nil
}

func parseRow(row []string) (models.Puzzle, error) {
	answer, err := models.NewWord(row[1])
	if err != nil {
		return models.Puzzle{}, err
	}

	var guessRows []jsonGuessRow
	if err := json.Unmarshal([]byte(row[2]), &guessRows); err != nil {
		return models.Puzzle{}, err
	}
	var validStrs []string
	if err := json.Unmarshal([]byte(row[3]), &validStrs); err != nil {
		return models.Puzzle{}, err
	}

	p := models.Puzzle{Answer: answer}
	for i, gr := range guessRows {
		if i >= len(p.Guesses) {
			break
		}
		guess, err := models.NewWord(gr.Word)
		if err != nil {
			return models.Puzzle{}, err
		}
		p.Guesses[i] = guess
		fb := models.Feedback{Guess: guess}
		for j, c := range gr.Constraints {
			if j >= len(fb.Entries) {
				break
			}
			var tile models.Tile
			switch c {
			case "green":
				tile = models.Exact
			case "yellow":
				tile = models.Present
			default:
				tile = models.Absent
			}
			fb.Entries[j] = models.TileEntry{Letter: guess[j], Position: j, Tile: tile}
		}
		p.Feedbacks[i] = fb
	}
	p.ValidAnswers = make([]models.Word, 0, len(validStrs))
	for _, s := range validStrs {
		w, err := models.NewWord(s)
		if err != nil {
			continue
		}
		p.ValidAnswers = append(p.ValidAnswers, w)
	}
	p.CandidatesRemaining = len(p.ValidAnswers)
	return p, nil
}

// Len returns the number of puzzles in the pool.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.puzzles)
}

// ErrPoolExhausted is returned by Take when every puzzle in the pool
// has already been served, mirroring server.py's 503 "no new puzzle
// available" response.
var ErrPoolExhausted = fmt.Errorf("httpapi: puzzle pool exhausted")

// Take returns a random unserved puzzle from the pool, marking it
// served, favoring unserved puzzles exactly as server.py's get_puzzle
// does via `unserved_ids = all_puzzle_ids - served_puzzle_ids`. Once
// every puzzle has been served it returns ErrPoolExhausted; callers
// that want puzzles to cycle again can call Reset.
func (p *Pool) Take(rng *rand.Rand) (models.Puzzle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.puzzles) == 0 {
		return models.Puzzle{}, ErrPoolExhausted
	}

	var unserved []int
	for i := range p.puzzles {
		if !p.served[i] {
			unserved = append(unserved, i)
		}
	}
	if len(unserved) == 0 {
		return models.Puzzle{}, ErrPoolExhausted
	}

	idx := unserved[rng.Intn(len(unserved))]
	p.served[idx] = true
	return p.puzzles[idx], nil
}

// Reset clears served-puzzle tracking so the whole pool can be
// handed out again.
func (p *Pool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.served = make(map[int]bool)
}
