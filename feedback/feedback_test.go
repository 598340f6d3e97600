package feedback

import (
	"testing"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

// tileString renders a Feedback as a G/Y/B string for table comparison,
// in the style of the teacher's feedbackToString helper.
func tileString(fb models.Feedback) string {
	s := make([]byte, models.WordLen)
	for i, e := range fb.Entries {
		switch e.Tile {
		case models.Exact:
			s[i] = 'G'
		case models.Present:
			s[i] = 'Y'
		default:
			s[i] = 'B'
		}
	}
	return string(s)
}

func TestDeriveTable(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		guess    string
		expected string
	}{
		{"All Green", "slate", "slate", "GGGGG"},
		{"All Black", "slate", "xyzzz", "BBBBB"},
		{"Mixed", "slate", "steal", "GYYYY"},
		{"Yellow Letters", "slate", "least", "YYGYY"},
		{"Duplicate Green", "round", "robot", "GGBBB"},
		{"Duplicate Yellow", "speed", "erase", "YBBYY"},
		{"Duplicate Two Guess One", "erase", "speed", "YBYYB"},
		{"Duplicate Two Guess Two", "geese", "eerie", "YGBBG"},
		{"Duplicate Three Guess One", "speed", "eeeee", "BBGGB"},
		{"Duplicate Three Guess Two", "geese", "eeeee", "BGGBG"},
		{"Green Priority", "sleet", "llama", "BGBBB"},
		{"Multiple Duplicates", "abaca", "aabba", "GYYBG"},
		{"All Same Letter", "abaca", "aaaaa", "GBGBG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guess := models.MustWord(tt.guess)
			answer := models.MustWord(tt.answer)
			fb := Derive(guess, answer)
			if got := tileString(fb); got != tt.expected {
				t.Errorf("Derive(%s, %s) = %s, want %s",
					tt.guess, tt.answer, got, tt.expected)
			}
		})
	}
}

func TestDeriveConcreteScenarios(t *testing.T) {
	fb := Derive(models.MustWord("crane"), models.MustWord("slate"))
	want := []models.Tile{models.Absent, models.Absent, models.Exact, models.Absent, models.Exact}
	for i, w := range want {
		if fb.Entries[i].Tile != w {
			t.Errorf("crane/slate position %d: expected %v, got %v", i, w, fb.Entries[i].Tile)
		}
	}

	fb = Derive(models.MustWord("eerie"), models.MustWord("rebel"))
	wantEerie := []models.Tile{
		models.Present, // first e takes rebel's still-unmatched e at position 3
		models.Exact,   // second e lines up with rebel's e at position 1
		models.Present, // r is present but not at position 2
		models.Absent,  // i is absent
		models.Absent,  // final e: both of rebel's e's are already matched
	}
	for i, w := range wantEerie {
		if fb.Entries[i].Tile != w {
			t.Errorf("eerie/rebel position %d: expected %v, got %v", i, w, fb.Entries[i].Tile)
		}
	}
}

// TestSelfMatchIsAllExact covers property 1 of spec.md §8: deriving
// feedback for a word against itself yields all-Exact tiles, and the
// word trivially satisfies that feedback.
func TestSelfMatchIsAllExact(t *testing.T) {
	words := []string{"crane", "slate", "lulls", "abaca", "eerie"}
	for _, s := range words {
		w := models.MustWord(s)
		fb := Derive(w, w)
		for i, e := range fb.Entries {
			if e.Tile != models.Exact {
				t.Errorf("%s: position %d expected Exact, got %v", s, i, e.Tile)
			}
		}
		if !Satisfies(w, fb) {
			t.Errorf("%s does not satisfy its own self-feedback", s)
		}
	}
}

// TestPresenceSymmetry covers property 2: the count of Exact+Present
// tiles for a letter equals min(count in guess, count in answer).
func TestPresenceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"lulls", "glass"},
		{"speed", "erase"},
		{"abaca", "aabba"},
		{"geese", "eerie"},
	}
	for _, pair := range pairs {
		guess := models.MustWord(pair[0])
		answer := models.MustWord(pair[1])
		fb := Derive(guess, answer)

		guessCounts := guess.LetterCounts()
		answerCounts := answer.LetterCounts()

		var matched [26]int
		for _, e := range fb.Entries {
			if e.Tile == models.Exact || e.Tile == models.Present {
				matched[e.Letter-'a']++
			}
		}

		for l := 0; l < 26; l++ {
			want := int(guessCounts[l])
			if int(answerCounts[l]) < want {
				want = int(answerCounts[l])
			}
			if matched[l] != want {
				t.Errorf("%s/%s letter %c: expected %d matched, got %d",
					pair[0], pair[1], 'a'+byte(l), want, matched[l])
			}
		}
	}
}

// TestSelfConsistency covers property 3: the answer itself always
// satisfies the feedback derived against it.
func TestSelfConsistency(t *testing.T) {
	dict := []string{"crane", "slate", "round", "robot", "speed", "erase", "geese", "eerie", "lulls", "glass"}
	for _, g := range dict {
		for _, a := range dict {
			guess := models.MustWord(g)
			answer := models.MustWord(a)
			fb := Derive(guess, answer)
			if !Satisfies(answer, fb) {
				t.Errorf("answer %s does not satisfy feedback derived from guess %s", a, g)
			}
		}
	}
}

// TestDuplicateLetterLaw covers property 4: guess=lulls, answer=glass
// (a single l) must mark exactly one of lulls' three l's non-Absent.
func TestDuplicateLetterLaw(t *testing.T) {
	fb := Derive(models.MustWord("lulls"), models.MustWord("glass"))
	nonAbsentLs := 0
	for i, e := range fb.Entries {
		if e.Letter != 'l' {
			continue
		}
		if fb.Entries[i].Tile != models.Absent {
			nonAbsentLs++
		}
	}
	if nonAbsentLs != 1 {
		t.Errorf("expected exactly one non-Absent l, got %d", nonAbsentLs)
	}
}

func TestSatisfiesAppleScenarios(t *testing.T) {
	fb := models.Feedback{
		Guess: models.MustWord("apple"),
		Entries: [5]models.TileEntry{
			{Letter: 'a', Position: 0, Tile: models.Exact},
			{Letter: 'p', Position: 1, Tile: models.Present},
			{Letter: 'p', Position: 2, Tile: models.Exact},
			{Letter: 'l', Position: 3, Tile: models.Exact},
			{Letter: 'e', Position: 4, Tile: models.Exact},
		},
	}

	// The Present p at position 1 rules out a p in that slot, and apple
	// has one there, so apple is not consistent with this set either.
	if Satisfies(models.MustWord("apple"), fb) {
		t.Error("expected apple not to satisfy constraints (Present p at position 1 excludes p there)")
	}
	if Satisfies(models.MustWord("apply"), fb) {
		t.Error("expected apply not to satisfy constraints (position 4 is y, not e)")
	}
}

func TestSatisfiesAbsentCapsNotForbids(t *testing.T) {
	// guess "sassy" against answer "glass": s appears in the answer,
	// so an Absent tile on a second s must cap the allowed count, not
	// forbid the letter outright.
	fb := Derive(models.MustWord("sassy"), models.MustWord("glass"))
	if !Satisfies(models.MustWord("glass"), fb) {
		t.Error("expected glass to satisfy the feedback derived with it as the answer")
	}
}
