package api

import (
	"log/slog"
	"net/http"

	"github.com/amprasad/studyplanner/internal/config"
	"github.com/amprasad/studyplanner/internal/pipeline"
	"github.com/amprasad/studyplanner/internal/planner"
	"github.com/amprasad/studyplanner/internal/vectorstore"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for the study planner.
type Server struct {
	router       chi.Router
	planner      *planner.Planner
	orchestrator *pipeline.Orchestrator
	index        *vectorstore.PostgresIndex
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. index may be nil when
// the vector side channel is disabled.
func NewServer(p *planner.Planner, orch *pipeline.Orchestrator, index *vectorstore.PostgresIndex, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		planner:      p,
		orchestrator: orch,
		index:        index,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/schedule/upload", s.handleUpload)
		r.Post("/api/schedule/generate", s.handleGenerate)
		r.Post("/api/schedule/batch", s.handleBatch)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/headings/search", s.handleHeadingSearch)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
