package models

import "testing"

func TestNewWordValid(t *testing.T) {
	w, err := NewWord("crane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.String() != "crane" {
		t.Errorf("expected crane, got %s", w.String())
	}
}

func TestNewWordInvalid(t *testing.T) {
	tests := []string{"", "four", "sixsix", "CRANE", "cr4ne", "cr-ne"}
	for _, s := range tests {
		if _, err := NewWord(s); err == nil {
			t.Errorf("expected error for %q, got nil", s)
		}
	}
}

func TestMustWordPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid word")
		}
	}()
	MustWord("bad")
}

func TestWordLess(t *testing.T) {
	a := MustWord("apple")
	b := MustWord("beach")
	if !a.Less(b) {
		t.Error("expected apple < beach")
	}
	if b.Less(a) {
		t.Error("expected beach not less than apple")
	}
}

func TestWordLetterCounts(t *testing.T) {
	w := MustWord("lulls")
	counts := w.LetterCounts()
	if counts['l'-'a'] != 3 {
		t.Errorf("expected 3 l's, got %d", counts['l'-'a'])
	}
	if counts['u'-'a'] != 1 {
		t.Errorf("expected 1 u, got %d", counts['u'-'a'])
	}
	if counts['s'-'a'] != 1 {
		t.Errorf("expected 1 s, got %d", counts['s'-'a'])
	}
}

func TestWordDistinctLetters(t *testing.T) {
	w := MustWord("lulls")
	mask := w.DistinctLetters()
	for _, c := range []byte{'l', 'u', 's'} {
		if mask&(1<<uint(c-'a')) == 0 {
			t.Errorf("expected letter %c set in mask", c)
		}
	}
	if mask&(1<<uint('a'-'a')) != 0 {
		t.Error("expected letter a not set in mask")
	}
}

func TestWordJSONRoundTrip(t *testing.T) {
	w := MustWord("slate")
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var got Word
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if got != w {
		t.Errorf("expected %v, got %v", w, got)
	}
}
