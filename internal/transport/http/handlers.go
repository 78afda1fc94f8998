package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"strings"

	"brainhub/internal/domain"
	"brainhub/internal/export"
)

const (
	defaultTopLimit  = 5
	defaultWordCount = 10
	maxBodySize      = 4096
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// LeaderboardResponse is the response for a board query
type LeaderboardResponse struct {
	Board   domain.Board        `json:"board"`
	Game    string              `json:"game,omitempty"`
	Entries []domain.ScoreEntry `json:"entries"`
}

// SubmitScoreResponse is the response for a score submission
type SubmitScoreResponse struct {
	Rank   int  `json:"rank"`
	Ranked bool `json:"ranked"`
}

// GamesResponse is the response for the games list
type GamesResponse struct {
	Games []string `json:"games"`
}

// DifficultiesResponse is the response for the tier list
type DifficultiesResponse struct {
	Difficulties []string `json:"difficulties"`
	Origin       string   `json:"origin"`
}

// WordsResponse is the response for a word sample
type WordsResponse struct {
	Difficulty string             `json:"difficulty"`
	Words      []domain.WordEntry `json:"words"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status           string `json:"status"`
	VocabularyLoaded bool   `json:"vocabularyLoaded"`
	FeedClients      int    `json:"feedClients"`
}

// handleGetLeaderboard handles GET /api/leaderboard/{board}
func (s *Server) handleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := domain.ParseBoard(r.PathValue("board"))
	if err != nil {
		s.sendError(w, http.StatusNotFound, "BOARD_NOT_FOUND", "Leaderboard not found")
		return
	}

	limit, err := queryInt(r, "limit", defaultTopLimit)
	if err != nil || limit < 1 || limit > domain.AllTimeCap {
		s.sendError(w, http.StatusBadRequest, "INVALID_LIMIT", "Limit must be between 1 and 100")
		return
	}
	game := strings.TrimSpace(r.URL.Query().Get("game"))

	s.sendSuccess(w, &LeaderboardResponse{
		Board:   board,
		Game:    game,
		Entries: s.leaderboard.GetTopPlayers(board, limit, game),
	})
}

// handleExportLeaderboard handles GET /api/leaderboard/{board}/export.xlsx
func (s *Server) handleExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := domain.ParseBoard(r.PathValue("board"))
	if err != nil {
		s.sendError(w, http.StatusNotFound, "BOARD_NOT_FOUND", "Leaderboard not found")
		return
	}

	snapshot := s.leaderboard.Snapshot()
	var buf bytes.Buffer
	if err := export.WriteBoardXLSX(&buf, board, snapshot.Entries(board)); err != nil {
		s.logger.Error("leaderboard export failed", "board", board, "error", err)
		s.sendError(w, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export leaderboard")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="leaderboard-`+string(board)+`.xlsx"`)
	w.Write(buf.Bytes())
}

// handleSubmitScore handles POST /api/scores
func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var sub domain.ScoreSubmission
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&sub); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a score submission")
		return
	}
	if err := sub.Validate(); err != nil {
		s.sendError(w, http.StatusBadRequest, "INVALID_SUBMISSION", err.Error())
		return
	}

	rank, err := s.leaderboard.AddScore(r.Context(), strings.TrimSpace(sub.Game), sub.PlayerName, sub.Score, sub.Difficulty)
	if err != nil && !errors.Is(err, domain.ErrNotRanked) {
		s.sendError(w, http.StatusInternalServerError, "RANK_UNAVAILABLE", "Score saved but rank could not be determined")
		return
	}

	s.sendSuccess(w, &SubmitScoreResponse{
		Rank:   rank,
		Ranked: rank > 0,
	})
}

// handleGetGames handles GET /api/games
func (s *Server) handleGetGames(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &GamesResponse{Games: s.leaderboard.GetAllGames()})
}

// handleGetDifficulties handles GET /api/vocabulary/difficulties
func (s *Server) handleGetDifficulties(w http.ResponseWriter, r *http.Request) {
	if !s.waitForVocabulary(w, r) {
		return
	}
	s.sendSuccess(w, &DifficultiesResponse{
		Difficulties: s.vocabulary.GetDifficulties(),
		Origin:       s.vocabulary.Origin(),
	})
}

// handleGetWords handles GET /api/vocabulary/words
func (s *Server) handleGetWords(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = "medium"
	}
	count, err := queryInt(r, "count", defaultWordCount)
	if err != nil || count < 0 {
		s.sendError(w, http.StatusBadRequest, "INVALID_COUNT", "Count must be a non-negative integer")
		return
	}

	if !s.waitForVocabulary(w, r) {
		return
	}
	s.sendSuccess(w, &WordsResponse{
		Difficulty: difficulty,
		Words:      s.vocabulary.GetWords(difficulty, count),
	})
}

// handleGetRandomWord handles GET /api/vocabulary/random
func (s *Server) handleGetRandomWord(w http.ResponseWriter, r *http.Request) {
	if !s.waitForVocabulary(w, r) {
		return
	}
	word, ok := s.vocabulary.GetRandomWord(r.URL.Query().Get("difficulty"))
	if !ok {
		s.sendError(w, http.StatusNotFound, "NO_WORDS", "No words available")
		return
	}
	s.sendSuccess(w, &word)
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := &HealthResponse{
		Status:           "ok",
		VocabularyLoaded: s.vocabulary.Loaded(),
	}
	if s.feed != nil {
		resp.FeedClients = s.feed.ClientCount()
	}
	s.sendSuccess(w, resp)
}

// handleStatic serves files from the site
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	s.serveFile(w, r, strings.TrimPrefix(r.URL.Path, "/"))
}

// handlePage serves the site pages, defaulting to index.html
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	if name == "" || strings.HasSuffix(name, "/") {
		name += "index.html"
	}
	s.serveFile(w, r, name)
}

func (s *Server) serveFile(w http.ResponseWriter, r *http.Request, name string) {
	if s.webFS == nil || !fs.ValidPath(name) {
		http.NotFound(w, r)
		return
	}

	file, err := s.webFS.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, stat.Name(), stat.ModTime(), seeker)
}

// waitForVocabulary blocks until the corpus is loaded. It reports false and
// writes an error when the request goes away first.
func (s *Server) waitForVocabulary(w http.ResponseWriter, r *http.Request) bool {
	if err := s.vocabulary.WaitForLoad(r.Context()); err != nil {
		s.sendError(w, http.StatusServiceUnavailable, "VOCABULARY_LOADING", "Vocabulary is still loading")
		return false
	}
	return true
}

// queryInt reads an integer query parameter, returning def when it is absent
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}
