package httpapi

import (
	"testing"
	"time"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

func TestSessionStorePutGet(t *testing.T) {
	s := NewSessionStore()
	sess := &Session{Answer: models.MustWord("crane"), CreatedAt: time.Now()}
	s.Put("abc", sess)

	got := s.Get("abc")
	if got == nil || got.Answer != models.MustWord("crane") {
		t.Fatalf("expected to retrieve stored session, got %+v", got)
	}
	if s.Get("missing") != nil {
		t.Error("expected nil for unknown session id")
	}
}

func TestSessionStoreRecordGuess(t *testing.T) {
	s := NewSessionStore()
	s.Put("abc", &Session{Answer: models.MustWord("crane"), CreatedAt: time.Now()})

	s.RecordGuess("abc", GuessAttempt{Guess: models.MustWord("slate"), Correct: false, Timestamp: time.Now()})
	s.RecordGuess("abc", GuessAttempt{Guess: models.MustWord("crane"), Correct: true, Timestamp: time.Now()})

	sess := s.Get("abc")
	if len(sess.Guesses) != 2 {
		t.Fatalf("expected 2 recorded guesses, got %d", len(sess.Guesses))
	}
	if !sess.Guesses[1].Correct {
		t.Error("expected second guess to be marked correct")
	}
}

func TestSessionStoreSweepRemovesExpired(t *testing.T) {
	s := NewSessionStore()
	s.Put("old", &Session{Answer: models.MustWord("crane"), CreatedAt: time.Now().Add(-2 * time.Hour)})
	s.Put("fresh", &Session{Answer: models.MustWord("slate"), CreatedAt: time.Now()})

	removed := s.Sweep(time.Hour)
	if removed != 1 {
		t.Errorf("expected 1 session removed, got %d", removed)
	}
	if s.Get("old") != nil {
		t.Error("expected expired session to be swept")
	}
	if s.Get("fresh") == nil {
		t.Error("expected fresh session to survive sweep")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 remaining session, got %d", s.Len())
	}
}
