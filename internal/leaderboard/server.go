// Package leaderboard serves the score store over a small read-only JSON API.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/vovakirdan/high-flyer/internal/storage"
)

// MaxLimit is the most scores one request can ask for.
const MaxLimit = 100

// Scores is the part of the score store the leaderboard reads.
type Scores interface {
	Boards() ([]string, error)
	TopScores(board string, limit int) ([]storage.ScoreEntry, error)
	RecentScores(board string, limit int) ([]storage.ScoreEntry, error)
	HighScore(board string) (int, error)
	Stats(board string) (*storage.BoardStats, error)
}

// Entry is one score as served to clients.
type Entry struct {
	Rank      int       `json:"rank,omitempty"`
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// Best is the reply of the best-score endpoint.
type Best struct {
	Board string `json:"board"`
	Score int    `json:"score"`
}

// Stats is the reply of the stats endpoint.
type Stats struct {
	Board      string     `json:"board"`
	Rounds     int        `json:"rounds"`
	HighScore  int        `json:"high_score"`
	AvgScore   float64    `json:"avg_score"`
	TotalScore int64      `json:"total_score"`
	LastPlayed *time.Time `json:"last_played,omitempty"`
}

// Server handles leaderboard requests.
type Server struct {
	scores Scores
	logger *log.Logger
}

// NewServer creates a leaderboard over the given scores.
func NewServer(scores Scores, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{scores: scores, logger: logger}
}

// Router returns the HTTP routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/boards", s.listBoards).Methods(http.MethodGet)
	api.HandleFunc("/boards/{board}/scores", s.boardScores).Methods(http.MethodGet)
	api.HandleFunc("/boards/{board}/best", s.boardBest).Methods(http.MethodGet)
	api.HandleFunc("/boards/{board}/stats", s.boardStats).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, notFound("no such endpoint"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: "method not allowed"})
	})
	return r
}

// ListenAndServe serves the leaderboard on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Leaderboard listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("leaderboard: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("leaderboard: shutdown: %w", err)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "ok")
}

func (s *Server) listBoards(w http.ResponseWriter, _ *http.Request) {
	boards, err := s.scores.Boards()
	if err != nil {
		s.fail(w, "list boards", err)
		return
	}
	if boards == nil {
		boards = []string{}
	}
	writeSuccess(w, boards)
}

// boardScores serves ?limit=N (default 10) scores, ranked unless ?order=recent.
func (s *Server) boardScores(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, err)
		return
	}

	var entries []storage.ScoreEntry
	ranked := true
	switch order := r.URL.Query().Get("order"); order {
	case "", "top":
		entries, err = s.scores.TopScores(board, limit)
	case "recent":
		ranked = false
		entries, err = s.scores.RecentScores(board, limit)
	default:
		writeError(w, badRequest(fmt.Sprintf("unknown order %q", order)))
		return
	}
	if err != nil {
		s.fail(w, "query scores", err)
		return
	}

	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = Entry{Player: e.Player, Score: e.Score, CreatedAt: e.CreatedAt}
		if ranked {
			out[i].Rank = i + 1
		}
	}
	writeSuccess(w, out)
}

func (s *Server) boardBest(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]
	best, err := s.scores.HighScore(board)
	if err != nil {
		s.fail(w, "query best", err)
		return
	}
	writeSuccess(w, Best{Board: board, Score: best})
}

func (s *Server) boardStats(w http.ResponseWriter, r *http.Request) {
	board := mux.Vars(r)["board"]
	st, err := s.scores.Stats(board)
	if err != nil {
		s.fail(w, "query stats", err)
		return
	}

	out := Stats{
		Board:      st.Board,
		Rounds:     st.Rounds,
		HighScore:  st.HighScore,
		AvgScore:   st.AvgScore,
		TotalScore: st.TotalScore,
	}
	if !st.LastPlayed.IsZero() {
		out.LastPlayed = &st.LastPlayed
	}
	writeSuccess(w, out)
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	s.logger.Error("Leaderboard request failed", "op", op, "err", err)
	writeError(w, err)
}

// parseLimit reads the limit query value. Empty means 10; anything outside
// 1..MaxLimit is a bad request.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 10, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, badRequest(fmt.Sprintf("invalid limit %q", raw))
	}
	if n > MaxLimit {
		return 0, badRequest(fmt.Sprintf("limit must be 1..%d, got %d", MaxLimit, n))
	}
	return n, nil
}
