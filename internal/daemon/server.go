package daemon

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"frameview/internal/config"
	"frameview/internal/store"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Server owns the shell state and exposes the UI page plus the JSON API the
// page talks to.
type Server struct {
	mu        sync.RWMutex
	cfg       config.Config
	log       *slog.Logger
	store     store.FrameStore
	extractor *ExtractorClient
	state     AppState
}

func NewServer(cfg config.Config, log *slog.Logger, st store.FrameStore, extractor *ExtractorClient) *Server {
	if extractor == nil {
		extractor = NewExtractorClient(cfg.BackendURL,
			time.Duration(cfg.ExtractTimeoutSeconds)*time.Second,
			time.Duration(cfg.ProbeTimeoutSeconds)*time.Second)
	}
	return &Server{
		cfg:       cfg,
		log:       log,
		store:     st,
		extractor: extractor,
		state:     AppState{View: ViewIdle},
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Logging
	r.Use(logRequestMiddleware(s.log))

	// CORS to allow a locally served page on another port during development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger docs
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// UI and health
	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)

	// JSON API consumed by the served page
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/extract", s.handleExtract)
		r.Get("/frames", s.handleFrames)
		r.Delete("/frames/{frameID}", s.handleDeleteFrame)
		r.Post("/reset", s.handleReset)
	})

	return r
}
