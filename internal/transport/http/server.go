package http

import (
	"bufio"
	"context"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"brainhub/internal/app"
	"brainhub/internal/config"
	"brainhub/internal/transport/ws"
)

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	leaderboard *app.Leaderboard
	vocabulary  *app.VocabularyLoader
	feed        *ws.Hub
	config      *config.Config
	logger      *slog.Logger
	webFS       fs.FS
}

// NewServer creates a new HTTP server. webFS holds the site with index.html at its root.
func NewServer(cfg *config.Config, leaderboard *app.Leaderboard, vocabulary *app.VocabularyLoader, feed *ws.Hub, logger *slog.Logger, webFS fs.FS) *Server {
	s := &Server{
		leaderboard: leaderboard,
		vocabulary:  vocabulary,
		feed:        feed,
		config:      cfg,
		logger:      logger,
		webFS:       webFS,
	}

	s.server = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the routed handler wrapped in middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.setupRoutes(mux)
	return s.middleware(mux)
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	// Leaderboard
	mux.HandleFunc("GET /api/leaderboard/{board}", s.handleGetLeaderboard)
	mux.HandleFunc("GET /api/leaderboard/{board}/export.xlsx", s.handleExportLeaderboard)
	mux.HandleFunc("POST /api/scores", s.handleSubmitScore)
	mux.HandleFunc("GET /api/games", s.handleGetGames)

	// Vocabulary
	mux.HandleFunc("GET /api/vocabulary/difficulties", s.handleGetDifficulties)
	mux.HandleFunc("GET /api/vocabulary/words", s.handleGetWords)
	mux.HandleFunc("GET /api/vocabulary/random", s.handleGetRandomWord)

	mux.HandleFunc("GET /api/health", s.handleHealth)

	// WebSocket
	if s.feed != nil {
		mux.Handle("GET /ws", ws.NewHandler(s.feed, s.logger))
	}

	// Static files and pages
	mux.HandleFunc("GET /static/", s.handleStatic)
	mux.HandleFunc("GET /vocabulary.json", s.handleStatic)
	mux.HandleFunc("GET /", s.handlePage)
}

// middleware wraps the handler with logging and other middleware
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Add CORS headers
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		// Wrap response writer to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		// Log request (skip static files in production)
		if s.config.IsDevelopment() || !isStaticRequest(r.URL.Path) {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration", time.Since(start),
			)
		}
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker for WebSocket support
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, http.ErrNotSupported
}

// Flush implements http.Flusher
func (rw *responseWriter) Flush() {
	if flusher, ok := rw.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// isStaticRequest checks if the request is for a static file
func isStaticRequest(path string) bool {
	return strings.HasPrefix(path, "/static/") || path == "/vocabulary.json"
}
