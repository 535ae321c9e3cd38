package web

import (
	"context"
	"embed"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Mayi21/tool-sites/internal/cache"
	"github.com/Mayi21/tool-sites/internal/ports"
	"github.com/Mayi21/tool-sites/internal/tools"
)

//go:embed static
var staticFS embed.FS

// Server serves the tool pages and their JSON endpoints.
type Server struct {
	router   *http.ServeMux
	port     string
	registry *tools.Registry
	cache    *cache.Cache
	prefs    ports.PreferenceRepository
	history  ports.HistoryRepository
	usage    ports.UsageRepository
	metrics  ports.MetricsExporter
}

// NewServer wires the registry, cache, repositories, and metrics exporter
// into a routed HTTP server.
func NewServer(
	port string,
	registry *tools.Registry,
	resultCache *cache.Cache,
	prefs ports.PreferenceRepository,
	history ports.HistoryRepository,
	usage ports.UsageRepository,
	metrics ports.MetricsExporter,
) *Server {
	s := &Server{
		router:   http.NewServeMux(),
		port:     port,
		registry: registry,
		cache:    resultCache,
		prefs:    prefs,
		history:  history,
		usage:    usage,
		metrics:  metrics,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /tools/{name}", s.handleToolGet)
	s.router.HandleFunc("POST /tools/{name}", s.handleToolPost)
	s.router.HandleFunc("GET /history", s.handleHistoryPage)
	s.router.HandleFunc("GET /language/{lang}", s.handleLanguage)

	s.router.HandleFunc("GET /api/history", s.handleAPIHistory)
	s.router.HandleFunc("GET /api/preferences", s.handleGetPreferences)
	s.router.HandleFunc("POST /api/preferences", s.handleUpdatePreferences)
	s.router.HandleFunc("POST /api/favorites/{name}", s.handleToggleFavorite)
	s.router.HandleFunc("GET /api/stats/tools", s.handleToolStats)

	s.router.Handle("GET /static/", http.FileServer(http.FS(staticFS)))
	s.router.HandleFunc("GET /health", s.handleHealth)
}

// ServeHTTP makes the server usable directly in tests via httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s", s.port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
