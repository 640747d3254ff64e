package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"reelplan/internal/config"
	"reelplan/internal/plan"
	"reelplan/internal/platform/logger"
	"reelplan/internal/platform/metrics"
	"reelplan/internal/storage"
)

// Server wires handlers, sessions, metrics, and persistence together.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metrics.Metrics
	sessions *SessionStore
	runs     *storage.RunStore
	catalog  plan.Catalog
	limiter  *rate.Limiter
}

func New(cfg *config.Config, log *slog.Logger, m *metrics.Metrics, runs *storage.RunStore, catalog plan.Catalog) *Server {
	return &Server{
		cfg:      cfg,
		logger:   log,
		metrics:  m,
		sessions: NewSessionStore(),
		runs:     runs,
		catalog:  catalog,
		limiter: rate.NewLimiter(
			rate.Limit(cfg.Limits.RateLimit.RequestsPerSecond),
			cfg.Limits.RateLimit.BurstSize,
		),
	}
}

// Router assembles the HTTP surface.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(logger.RequestLogger(s.logger))
	r.Use(metrics.RequestMiddleware(s.metrics))
	r.Use(s.rateLimit)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler(func() {
		s.metrics.SetActiveSessions(s.sessions.Len())
	}))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/intake", s.handleIntake)
		r.Post("/pipeline", s.handlePipeline)
		r.Post("/pipeline/batch", s.handleBatch)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/status", s.handleStatus)
				r.Get("/events", s.handleEvents)
				r.Delete("/", s.handleDeleteSession)
				r.Post("/vrd", s.handleSetVRD)
				r.Post("/clarifications", s.handleClarifications)
				r.Post("/script", s.handleGenerateScript)
				r.Post("/shots", s.handleGenerateShots)
				r.Post("/plan", s.handleGeneratePlan)
			})
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
