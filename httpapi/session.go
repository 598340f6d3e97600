// Package httpapi serves puzzles over HTTP for interactive play,
// supplementing the distilled spec's trivial serving note with the
// original's actual session model: an answer is minted server-side
// and never trusted to (or leaked to) the client ahead of a correct
// guess.
//
// Grounded on original_source/server.py's get_puzzle/check_answer
// handlers and active_puzzles/cleanup_old_puzzles session model, and
// on de-upayan-wordle-ai/backend/handlers/suggest.go's handler shape
// (package-level logger, per-request tagging, uuid session IDs).
package httpapi

import (
	"sync"
	"time"

	"github.com/cortlandwarner/wordpuzzlegen/models"
)

// Session is one in-flight puzzle: the answer the server minted,
// never sent to the client, plus bookkeeping for expiry and replay.
type Session struct {
	Answer    models.Word
	Puzzle    models.Puzzle
	CreatedAt time.Time
	Guesses   []GuessAttempt
}

// GuessAttempt records one checked guess, mirroring server.py's
// puzzle_data['guesses'] append in check_answer.
type GuessAttempt struct {
	Guess     models.Word
	Correct   bool
	Timestamp time.Time
}

// SessionStore is an in-memory map of session ID to Session, guarded
// by a RWMutex - the Go equivalent of server.py's global
// active_puzzles dict, translated to an instance (no package-level
// mutable global, per spec.md §5) so a server can run more than one
// independent store if it ever needs to.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Put registers a new session under id.
func (s *SessionStore) Put(id string, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

// Get returns the session for id, or nil if it does not exist (never
// created or already swept).
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// RecordGuess appends a guess attempt to the session's history.
func (s *SessionStore) RecordGuess(id string, attempt GuessAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.Guesses = append(sess.Guesses, attempt)
	}
}

// Len returns the number of live sessions, mostly useful for tests and
// health/metrics reporting.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep removes sessions older than maxAge, the equivalent of
// server.py's cleanup_old_puzzles (there: a fixed one-hour window;
// here: caller-supplied, driven by a ticker goroutine in
// cmd/puzzleserver). Returns the number of sessions removed.
func (s *SessionStore) Sweep(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
