package models

// Tile is the per-position feedback classification for a guess
// letter against an answer.
type Tile int

const (
	// Absent means this letter contributes no further matches at this
	// position beyond what Exact/Present already account for. It does
	// NOT mean the letter is absent from the answer outright.
	Absent Tile = iota
	// Present means the letter occurs in the answer but not at this
	// position.
	Present
	// Exact means the letter is correct at this position.
	Exact
)

// String returns the wire representation used by the CSV/HTTP shells:
// "gray", "yellow", or "green".
func (t Tile) String() string {
	switch t {
	case Exact:
		return "green"
	case Present:
		return "yellow"
	default:
		return "gray"
	}
}

// TileEntry is one position's worth of feedback for a guess.
type TileEntry struct {
	Letter   byte
	Position int
	Tile     Tile
}

// Feedback is the full five-tile annotation of one guess against one
// answer. It doubles as the spec's ConstraintSet: once derived, it
// already carries the duplicate-letter counting semantics needed by
// the candidate filter.
type Feedback struct {
	Guess   Word
	Entries [WordLen]TileEntry
}

// jsonTileEntry is the wire shape of a single constraint tile.
type jsonTileEntry struct {
	Letter   string `json:"letter"`
	Position int    `json:"position"`
	Type     string `json:"type"`
}

// jsonGuess is the wire shape of one guess-with-constraints entry in
// Puzzle's JSON encoding.
type jsonGuess struct {
	Word        string          `json:"word"`
	Constraints []jsonTileEntry `json:"constraints"`
}

func (fb Feedback) toJSONGuess() jsonGuess {
	jg := jsonGuess{
		Word:        fb.Guess.String(),
		Constraints: make([]jsonTileEntry, WordLen),
	}
	for i, e := range fb.Entries {
		jg.Constraints[i] = jsonTileEntry{
			Letter:   string(e.Letter),
			Position: e.Position,
			Type:     e.Tile.String(),
		}
	}
	return jg
}
