package httpapi

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/cortlandwarner/wordpuzzlegen/csvexport"
	"github.com/cortlandwarner/wordpuzzlegen/puzzle"
	"github.com/cortlandwarner/wordpuzzlegen/wordlist"
)

func testPool(t *testing.T, n int) *Pool {
	t.Helper()
	dict, err := wordlist.Embedded()
	if err != nil {
		t.Fatalf("failed to load embedded dictionary: %v", err)
	}
	gen, err := puzzle.NewGenerator(puzzle.Options{Dictionary: dict})
	if err != nil {
		t.Fatalf("failed to build generator: %v", err)
	}

	var buf strings.Builder
	if _, err := csvexport.WriteBatch(context.Background(), &buf, gen, n, csvexport.BatchOptions{Seed: 5, MaxAttempts: 50}); err != nil {
		t.Fatalf("failed to write batch: %v", err)
	}

	pool, err := LoadPool(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("failed to load pool: %v", err)
	}
	return pool
}

func TestLoadPoolRoundTripsCSV(t *testing.T) {
	pool := testPool(t, 3)
	if pool.Len() != 3 {
		t.Fatalf("expected 3 puzzles in pool, got %d", pool.Len())
	}
}

func TestPoolTakeNeverRepeatsUntilExhausted(t *testing.T) {
	pool := testPool(t, 3)
	rng := rand.New(rand.NewSource(1))

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		p, err := pool.Take(rng)
		if err != nil {
			t.Fatalf("unexpected error on take %d: %v", i, err)
		}
		key := p.Answer.String()
		if seen[key] {
			t.Errorf("puzzle for answer %s served twice before exhaustion", key)
		}
		seen[key] = true
	}

	if _, err := pool.Take(rng); err != ErrPoolExhausted {
		t.Errorf("expected ErrPoolExhausted after serving all puzzles, got %v", err)
	}

	pool.Reset()
	if _, err := pool.Take(rng); err != nil {
		t.Errorf("expected a puzzle to be available after reset, got %v", err)
	}
}

func TestLoadPoolEmptyCSV(t *testing.T) {
	pool, err := LoadPool(strings.NewReader("puzzle_id,answer,guesses_json,valid_answers_json\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pool.Len() != 0 {
		t.Errorf("expected empty pool, got %d", pool.Len())
	}
	if _, err := pool.Take(rand.New(rand.NewSource(1))); err != ErrPoolExhausted {
		t.Errorf("expected ErrPoolExhausted for empty pool, got %v", err)
	}
}
