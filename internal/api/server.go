package api

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/todmy/doc-comparer/internal/compare"
	"github.com/todmy/doc-comparer/internal/extract"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server wires the comparison service and the extractor behind the HTTP
// surface: an upload form, a results view, and a JSON endpoint.
type Server struct {
	router         *chi.Mux
	comparer       *compare.Service
	extractor      extract.Extractor
	logger         zerolog.Logger
	maxUploadBytes int64
	tmpl           *template.Template
}

// ServerConfig carries the server's collaborators.
type ServerConfig struct {
	Comparer       *compare.Service
	Extractor      extract.Extractor
	Logger         zerolog.Logger
	MaxUploadBytes int64
}

// NewServer creates the HTTP server and registers its routes.
func NewServer(cfg ServerConfig) *Server {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "https://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s := &Server{
		router:         r,
		comparer:       cfg.Comparer,
		extractor:      cfg.Extractor,
		logger:         cfg.Logger,
		maxUploadBytes: cfg.MaxUploadBytes,
		tmpl:           template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// Upload form and comparison flow
	s.router.Get("/", s.handleIndex)
	s.router.Post("/compare", s.handleCompare)
	s.router.Get("/results/{comparisonID}", s.handleResults)

	// Machine-readable result
	s.router.Get("/api/comparison/{comparisonID}", s.handleGetComparison)
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
