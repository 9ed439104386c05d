// Package api exposes the analysis pipeline over HTTP.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	chi "github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/Holmfrior/Technopreneurship/pkg/buildinfo"
	"github.com/Holmfrior/Technopreneurship/pkg/pipeline"
)

// Config controls server behavior.
type Config struct {
	// Rate is the sustained request rate per second; Burst is the
	// token-bucket capacity. A zero Rate disables limiting.
	Rate  float64
	Burst int
}

// Server wires the pipeline runner into an HTTP router.
type Server struct {
	router  chi.Router
	runner  *pipeline.Runner
	logger  *log.Logger
	limiter *rate.Limiter
}

// NewServer builds a server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		router: chi.NewRouter(),
		runner: runner,
		logger: logger,
	}
	if cfg.Rate > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.Rate), burst)
	}
	s.routes()
	return s
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) routes() {
	s.router.Use(s.requestID)
	s.router.Use(s.logRequests)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": buildinfo.Version,
		})
	})

	s.router.Group(func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/api/analyze", s.handleAnalyze)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "status", status, "error", err)
	} else {
		s.logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
