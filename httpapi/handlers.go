package httpapi

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cortlandwarner/wordpuzzlegen/logger"
	"github.com/cortlandwarner/wordpuzzlegen/models"
	"github.com/cortlandwarner/wordpuzzlegen/puzzle"
)

var log = logger.New()

// Server wires a Pool, a *puzzle.Generator (used only when the pool
// runs dry, server.py has no equivalent fallback but generating
// on-demand keeps the service usable without a pre-built CSV) and a
// SessionStore into the two play endpoints.
type Server struct {
	Pool      *Pool
	Generator *puzzle.Generator
	Sessions  *SessionStore
	Rand      *rand.Rand
}

// guessResponse is one guess row in GetPuzzle's response body: the
// word plus a flat five-element constraint array, matching
// server.py's get_puzzle response shape exactly
// (constraint_array = ['gray']*5, overwritten by position).
type guessResponse struct {
	Word        string   `json:"word"`
	Constraints []string `json:"constraints"`
}

type getPuzzleResponse struct {
	PuzzleID string          `json:"puzzle_id"`
	Guesses  []guessResponse `json:"guesses"`
}

// GetPuzzle handles GET /api/puzzle: serves an unserved puzzle from
// the pool (generating one on demand if the pool is empty or
// exhausted), mints a session ID, and stores the answer server-side -
// the response never includes it.
func (s *Server) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	log.Info("GetPuzzle called", "method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := s.nextPuzzle(r.Context())
	if err != nil {
		log.Warn("no puzzle available", "error", err.Error())
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "No new puzzle available at the moment. Please try again later.",
		})
		return
	}

	sessionID := uuid.New().String()
	s.Sessions.Put(sessionID, &Session{
		Answer:    p.Answer,
		Puzzle:    p,
		CreatedAt: time.Now(),
	})

	resp := getPuzzleResponse{PuzzleID: sessionID, Guesses: make([]guessResponse, 0, len(p.Feedbacks))}
	for _, fb := range p.Feedbacks {
		var zero models.Word
		if fb.Guess == zero {
			continue
		}
		constraints := make([]string, len(fb.Entries))
		for i, e := range fb.Entries {
			constraints[i] = e.Tile.String()
		}
		resp.Guesses = append(resp.Guesses, guessResponse{Word: fb.Guess.String(), Constraints: constraints})
	}

	log.WithTag(sessionID).Info("puzzle served", "guessCount", len(resp.Guesses))
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) nextPuzzle(ctx context.Context) (models.Puzzle, error) {
	if s.Pool != nil {
		p, err := s.Pool.Take(s.rng())
		if err == nil {
			return p, nil
		}
	}
	if s.Generator == nil {
		return models.Puzzle{}, ErrPoolExhausted
	}
	return s.Generator.GeneratePuzzle(ctx, puzzle.GenerateOptions{Rand: s.rng()})
}

func (s *Server) rng() *rand.Rand {
	if s.Rand != nil {
		return s.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

type checkRequest struct {
	PuzzleID string `json:"puzzle_id"`
	Guess    string `json:"guess"`
}

type checkResponse struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
	Answer  string `json:"answer,omitempty"`
}

// CheckAnswer handles POST /api/check: validates the guess is five
// letters and (if the generator's dictionary is available) a real
// word, looks up the session's answer server-side, records the
// attempt, and reveals the answer only once correct - ported from
// server.py's check_answer, in Go idiom (explicit validation chain
// instead of nested try/except).
func (s *Server) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	log.Info("CheckAnswer called", "method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, checkResponse{Message: "Invalid request format"})
		return
	}

	sessionLog := log.WithTag(req.PuzzleID)

	if req.PuzzleID == "" {
		writeJSON(w, http.StatusBadRequest, checkResponse{Message: "Puzzle ID required"})
		return
	}

	guess := strings.ToLower(strings.TrimSpace(req.Guess))
	if guess == "" {
		writeJSON(w, http.StatusBadRequest, checkResponse{Message: "Guess is required"})
		return
	}
	guessWord, err := models.NewWord(guess)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, checkResponse{Message: "Guess must be exactly 5 letters"})
		return
	}

	if s.Generator != nil && !s.Generator.Dictionary().Contains(guessWord) {
		writeJSON(w, http.StatusBadRequest, checkResponse{
			Message: "\"" + strings.ToUpper(guess) + "\" is not a valid word",
		})
		return
	}

	sess := s.Sessions.Get(req.PuzzleID)
	if sess == nil {
		sessionLog.Warn("session not found or expired")
		writeJSON(w, http.StatusNotFound, checkResponse{
			Message: "Puzzle not found or expired. Please start a new puzzle.",
		})
		return
	}

	correct := guessWord == sess.Answer
	s.Sessions.RecordGuess(req.PuzzleID, GuessAttempt{Guess: guessWord, Correct: correct, Timestamp: time.Now()})

	resp := checkResponse{Correct: correct}
	if correct {
		resp.Message = "Correct!"
		resp.Answer = strings.ToUpper(sess.Answer.String())
	} else {
		resp.Message = "Try again!"
	}
	sessionLog.Debug("guess checked", "guess", guess, "correct", correct)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "error", err.Error())
	}
}
