package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-rater/internal/db"
	"github.com/jonathan/resume-rater/internal/fetch"
	"github.com/jonathan/resume-rater/internal/jobdesc"
	"github.com/jonathan/resume-rater/internal/matching"
	"github.com/jonathan/resume-rater/internal/resume"
	"github.com/jonathan/resume-rater/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	db         *db.DB
	log        *zap.Logger
	jwtService *JWTService

	jobs    *jobdesc.Extractor
	resumes *resume.Extractor
	scorer  *matching.Scorer

	useBrowser bool
}

// Config holds server configuration. DatabaseURL and JWTSecret are optional:
// without a database the report endpoints are disabled, and without a secret
// the API runs unauthenticated.
type Config struct {
	Port               int
	DatabaseURL        string
	JWTSecret          string
	JWTExpirationHours int
	UseBrowser         bool
	Weights            matching.Config
	Logger             *zap.Logger
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		log:        log,
		jobs:       jobdesc.New(nil),
		resumes:    resume.New(nil),
		scorer:     matching.NewScorer(cfg.Weights),
		useBrowser: cfg.UseBrowser,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.EnsureSchema(ctx); err != nil {
			database.Close()
			return nil, err
		}
		s.db = database
	}

	if cfg.JWTSecret != "" {
		s.jwtService = NewJWTService(cfg.JWTSecret, cfg.JWTExpirationHours)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	api := http.NewServeMux()
	api.HandleFunc("POST /v1/analyze/job", s.handleAnalyzeJob)
	api.HandleFunc("POST /v1/analyze/resume", s.handleAnalyzeResume)
	api.HandleFunc("POST /v1/match", s.handleMatch)
	api.HandleFunc("GET /v1/reports", s.handleListReports)
	api.HandleFunc("GET /v1/reports/{id}", s.handleGetReport)

	var apiHandler http.Handler = api
	if s.jwtService != nil {
		apiHandler = middleware.Auth(s.jwtService.AsTokenValidator())(api)
	}
	mux.Handle("/v1/", apiHandler)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the server's root handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until an interrupt or
// SIGTERM triggers graceful shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// fetchJobText retrieves and extracts a posting from a URL.
func (s *Server) fetchJobText(ctx context.Context, url string) (string, error) {
	opts := fetch.DefaultOptions()
	opts.UseBrowser = s.useBrowser
	opts.Logger = s.log

	page, err := fetch.JobPosting(ctx, url, opts)
	if err != nil {
		return "", &ErrFetchFailed{URL: url, Cause: err}
	}
	return page.Text, nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("elapsed", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// respondError maps a typed error to its HTTP status.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
