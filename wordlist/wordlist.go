// Package wordlist loads the dictionary and optional frequency data a
// Generator is built from, and bundles a small embedded fallback
// wordlist for zero-config runs and tests.
//
// Named wordlist rather than dictionary to avoid colliding with
// models.Dictionary; responsibility corresponds to the teacher's
// data.WordlistMaps, but as file-parsing functions returning plain
// values instead of a sync.Once-guarded package singleton - spec.md §5
// requires the generator's data to be owned per-instance, not shared
// through hidden global state.
package wordlist

import (
	"bufio"
	"embed"
	"os"
	"strconv"
	"strings"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

//go:embed embedded_words.txt
var embeddedFS embed.FS

// LoadWordlist parses a dictionary file: plain text, UTF-8, one word
// per line. Lines are trimmed and lowercased; only lines that are
// exactly five ASCII letters are retained. Duplicates are discarded;
// the returned Dictionary preserves the file's line order as its own
// insertion order, it does not sort the words.
func LoadWordlist(path string) (*models.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseWordlist(f)
}

func parseWordlist(f *os.File) (*models.Dictionary, error) {
	var words []models.Word
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w, ok := parseWordLine(scanner.Text()); ok {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models.NewDictionary(words), nil
}

func parseWordLine(line string) (models.Word, bool) {
	s := strings.ToLower(strings.TrimSpace(line))
	w, err := models.NewWord(s)
	if err != nil {
		return models.Word{}, false
	}
	return w, true
}

// LoadFrequencies parses an optional frequency file: one record per
// line in "word,frequency" form. Malformed lines are silently
// skipped. A missing file is non-fatal - callers get a nil map and
// the generator falls back to default scoring.
func LoadFrequencies(path string) (models.FrequencyMap, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	freq := make(models.FrequencyMap)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		idx := strings.LastIndex(line, ",")
		if idx < 0 {
			continue
		}
		word, freqStr := line[:idx], line[idx+1:]
		w, ok := parseWordLine(word)
		if !ok {
			continue
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(freqStr), 64)
		if err != nil || val < 0 {
			continue
		}
		freq[w] = val
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return freq, nil
}

// Embedded returns the bundled fallback dictionary, used when no
// wordlist path is configured and for tests that need a realistic but
// self-contained word set. It carries no frequency data.
func Embedded() (*models.Dictionary, error) {
	f, err := embeddedFS.Open("embedded_words.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []models.Word
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w, ok := parseWordLine(scanner.Text()); ok {
			words = append(words, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models.NewDictionary(words), nil
}
