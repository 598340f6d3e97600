package models

import "encoding/json"

// Puzzle is the result artefact of a generation run: an answer, four
// annotated guesses, and the set of candidates the four guesses
// narrow the dictionary down to. Puzzle is perfect when ValidAnswers
// is exactly {Answer} and CandidatesRemaining is 1; otherwise it is a
// best-effort result.
type Puzzle struct {
	Answer              Word
	Guesses             [4]Word
	Feedbacks           [4]Feedback
	ValidAnswers        []Word
	CandidatesRemaining int
}

// Perfect reports whether the puzzle uniquely identifies its answer.
func (p Puzzle) Perfect() bool {
	return p.CandidatesRemaining == 1 && len(p.ValidAnswers) == 1 && p.ValidAnswers[0] == p.Answer
}

// jsonPuzzle is the wire shape described in spec.md §6.
type jsonPuzzle struct {
	Answer              string      `json:"answer"`
	Guesses             []jsonGuess `json:"guesses"`
	ValidAnswers        []string    `json:"valid_answers"`
	CandidatesRemaining int         `json:"candidates_remaining"`
}

// MarshalJSON implements json.Marshaler per spec.md §6's output
// schema (the puzzle_id field is the shells' concern, not the core's,
// and is added by whichever caller assigns one).
func (p Puzzle) MarshalJSON() ([]byte, error) {
	jp := jsonPuzzle{
		Answer:              p.Answer.String(),
		Guesses:             make([]jsonGuess, len(p.Feedbacks)),
		ValidAnswers:        make([]string, len(p.ValidAnswers)),
		CandidatesRemaining: p.CandidatesRemaining,
	}
	for i, fb := range p.Feedbacks {
		jp.Guesses[i] = fb.toJSONGuess()
	}
	for i, w := range p.ValidAnswers {
		jp.ValidAnswers[i] = w.String()
	}
	return json.Marshal(jp)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Puzzle) UnmarshalJSON(data []byte) error {
	var jp jsonPuzzle
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	answer, err := NewWord(jp.Answer)
	if err != nil {
		return err
	}
	p.Answer = answer
	p.CandidatesRemaining = jp.CandidatesRemaining
	p.ValidAnswers = make([]Word, len(jp.ValidAnswers))
	for i, s := range jp.ValidAnswers {
		w, err := NewWord(s)
		if err != nil {
			return err
		}
		p.ValidAnswers[i] = w
	}
	for i, jg := range jp.Guesses {
		if i >= len(p.Guesses) {
			break
		}
		guess, err := NewWord(jg.Word)
		if err != nil {
			return err
		}
		p.Guesses[i] = guess
		var fb Feedback
		fb.Guess = guess
		for j, jt := range jg.Constraints {
			if j >= WordLen {
				break
			}
			var tile Tile
			switch jt.Type {
			case "green":
				tile = Exact
			case "yellow":
				tile = Present
			default:
				tile = Absent
			}
			fb.Entries[j] = TileEntry{
				Letter:   jt.Letter[0],
				Position: jt.Position,
				Tile:     tile,
			}
		}
		p.Feedbacks[i] = fb
	}
	return nil
}
