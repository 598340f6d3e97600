package models

import "testing"

func makeFeedback(guess string, tiles [5]Tile) Feedback {
	w := MustWord(guess)
	fb := Feedback{Guess: w}
	for i, t := range tiles {
		fb.Entries[i] = TileEntry{Letter: w[i], Position: i, Tile: t}
	}
	return fb
}

func TestPuzzlePerfect(t *testing.T) {
	answer := MustWord("crane")
	p := Puzzle{
		Answer:              answer,
		ValidAnswers:        []Word{answer},
		CandidatesRemaining: 1,
	}
	if !p.Perfect() {
		t.Error("expected puzzle to be perfect")
	}

	p.CandidatesRemaining = 2
	p.ValidAnswers = []Word{answer, MustWord("slate")}
	if p.Perfect() {
		t.Error("expected puzzle not to be perfect")
	}
}

func TestPuzzleJSONRoundTrip(t *testing.T) {
	p := Puzzle{
		Answer: MustWord("crane"),
		Guesses: [4]Word{
			MustWord("slate"), MustWord("round"), MustWord("gismo"), MustWord("pouch"),
		},
		ValidAnswers:        []Word{MustWord("crane")},
		CandidatesRemaining: 1,
	}
	p.Feedbacks[0] = makeFeedback("slate", [5]Tile{Absent, Absent, Exact, Absent, Exact})
	p.Feedbacks[1] = makeFeedback("round", [5]Tile{Present, Absent, Absent, Absent, Absent})
	p.Feedbacks[2] = makeFeedback("gismo", [5]Tile{Absent, Absent, Absent, Absent, Absent})
	p.Feedbacks[3] = makeFeedback("pouch", [5]Tile{Absent, Absent, Absent, Absent, Absent})

	data, err := p.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}

	var got Puzzle
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if got.Answer != p.Answer {
		t.Errorf("expected answer %s, got %s", p.Answer, got.Answer)
	}
	if got.CandidatesRemaining != p.CandidatesRemaining {
		t.Errorf("expected candidates remaining %d, got %d",
			p.CandidatesRemaining, got.CandidatesRemaining)
	}
	for i := range p.Guesses {
		if got.Guesses[i] != p.Guesses[i] {
			t.Errorf("guess %d: expected %s, got %s", i, p.Guesses[i], got.Guesses[i])
		}
		for j := range p.Feedbacks[i].Entries {
			want := p.Feedbacks[i].Entries[j]
			have := got.Feedbacks[i].Entries[j]
			if want.Tile != have.Tile || want.Position != have.Position {
				t.Errorf("guess %d entry %d: expected %+v, got %+v", i, j, want, have)
			}
		}
	}
}
