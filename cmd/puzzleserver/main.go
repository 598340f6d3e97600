// Command puzzleserver starts the HTTP play server, wiring routes the
// way de-upayan-wordle-ai/backend/cmd/run.go wires handlers.SuggestStream
// onto a net/http ServeMux (http.NewServeMux) - no HTTP framework appears
// anywhere in the example pack, so net/http is the grounded choice.
package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/cortlandwarner/wordpuzzlegen/httpapi"
	"github.com/cortlandwarner/wordpuzzlegen/logger"
	"github.com/cortlandwarner/wordpuzzlegen/puzzle"
	"github.com/cortlandwarner/wordpuzzlegen/wordlist"
)

const sessionMaxAge = time.Hour

func main() {
	log := logger.New()

	addr := flag.String("addr", ":8080", "listen address")
	poolPath := flag.String("pool", "", "path to a csvexport-produced puzzle CSV (optional; puzzles are generated on demand if empty)")
	flag.Parse()

	dict, err := wordlist.Embedded()
	if err != nil {
		log.Error("failed to load embedded dictionary", "error", err.Error())
		os.Exit(1)
	}

	gen, err := puzzle.NewGenerator(puzzle.Options{Dictionary: dict})
	if err != nil {
		log.Error("failed to build generator", "error", err.Error())
		os.Exit(1)
	}

	var pool *httpapi.Pool
	if *poolPath != "" {
		f, err := os.Open(*poolPath)
		if err != nil {
			log.Error("failed to open puzzle pool", "path", *poolPath, "error", err.Error())
			os.Exit(1)
		}
		pool, err = httpapi.LoadPool(f)
		f.Close()
		if err != nil {
			log.Error("failed to load puzzle pool", "path", *poolPath, "error", err.Error())
			os.Exit(1)
		}
		log.Info("loaded puzzle pool", "path", *poolPath, "count", pool.Len())
	}

	server := &httpapi.Server{
		Pool:      pool,
		Generator: gen,
		Sessions:  httpapi.NewSessionStore(),
	}

	go sweepLoop(server.Sessions, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/puzzle", server.GetPuzzle)
	mux.HandleFunc("/api/check", server.CheckAnswer)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	log.Info("starting server", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Error("server error", "error", err.Error())
		os.Exit(1)
	}
}

// sweepLoop periodically evicts expired sessions, the equivalent of
// server.py's inline cleanup_old_puzzles call on every /api/puzzle
// request, run here on its own ticker instead so a quiet server still
// reclaims memory.
func sweepLoop(sessions *httpapi.SessionStore, log *logger.Logger) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		removed := sessions.Sweep(sessionMaxAge)
		if removed > 0 {
			log.Debug("swept expired sessions", "removed", removed)
		}
	}
}
