// Command puzzlegen is the CLI batch generator, the Go equivalent of
// original_source/generate_puzzle_csv.py's command-line surface
// (`-n`/`-o`/`--curated` argparse flags), rebuilt on the stdlib flag
// package in the style of eaburns-wordle/wordle.go's flag.String
// usage - no CLI framework appears anywhere in the example pack.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/cortlandwarner/wordpuzzlegen/csvexport"
	"github.com/cortlandwarner/wordpuzzlegen/logger"
	"github.com/cortlandwarner/wordpuzzlegen/models"
	"github.com/cortlandwarner/wordpuzzlegen/puzzle"
	"github.com/cortlandwarner/wordpuzzlegen/wordlist"
)

const defaultCuratedSize = 2000

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logger.New()

	if len(args) == 0 || args[0] != "generate" {
		fmt.Fprintln(os.Stderr, "usage: puzzlegen generate -n 30 -o puzzles.csv [--full-list] [--wordlist path] [--frequencies path]")
		return 1
	}

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	num := fs.Int("n", 30, "number of puzzles to generate")
	output := fs.String("o", "puzzles.csv", "output CSV file path")
	fullList := fs.Bool("full-list", false, "use the full word list instead of the curated subset")
	wordlistPath := fs.String("wordlist", "", "path to a dictionary file (defaults to the bundled word list)")
	freqPath := fs.String("frequencies", "", "path to a word,frequency CSV (optional)")
	seed := fs.Int64("seed", 1, "top-level RNG seed for the batch")
	maxAttempts := fs.Int("max-attempts", puzzle.DefaultMaxAttempts, "max search attempts per puzzle")
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}

	dict, freq, err := loadWordData(*wordlistPath, *freqPath)
	if err != nil {
		log.Error("failed to load word data", "error", err.Error())
		return 1
	}

	gen, err := puzzle.NewGenerator(puzzle.Options{
		Dictionary:  dict,
		Frequencies: freq,
		UseCurated:  !*fullList,
		CuratedSize: defaultCuratedSize,
	})
	if err != nil {
		log.Error("failed to build generator", "error", err.Error())
		return 1
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Error("failed to create output file", "path", *output, "error", err.Error())
		return 1
	}
	defer f.Close()

	log.Info("generating puzzles", "count", *num, "output", *output, "fullList", *fullList)
	bar := progressbar.Default(int64(*num))
	result, err := csvexport.WriteBatch(context.Background(), f, gen, *num, csvexport.BatchOptions{
		Seed:        *seed,
		MaxAttempts: *maxAttempts,
		Progress:    func(done, total int) { bar.Set(done) },
	})
	if err != nil {
		log.Error("batch export failed", "error", err.Error())
		return 1
	}

	log.Info("batch export complete",
		"written", result.Written,
		"perfect", result.Perfect,
		"bestEffort", result.BestEffort,
		"failed", result.Failed,
		"uniqueAnswers", result.UniqueAnswers,
	)

	if result.Failed > 0 || result.BestEffort > 0 {
		return 2
	}
	return 0
}

// loadWordData resolves the dictionary and optional frequency map from
// CLI-supplied paths, falling back to the bundled embedded word list
// when no path is given so the CLI is runnable with zero
// configuration (wordlist.Embedded carries no frequency data, so freq
// stays nil in that case and scoring falls back to its unboosted
// formula).
func loadWordData(wordlistPath, freqPath string) (*models.Dictionary, models.FrequencyMap, error) {
	var dict *models.Dictionary
	var err error
	if wordlistPath != "" {
		dict, err = wordlist.LoadWordlist(wordlistPath)
	} else {
		dict, err = wordlist.Embedded()
	}
	if err != nil {
		return nil, nil, err
	}

	var freq models.FrequencyMap
	if freqPath != "" {
		freq, err = wordlist.LoadFrequencies(freqPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return dict, freq, nil
}
