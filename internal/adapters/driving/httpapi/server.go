package httpapi

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/blogsearch/internal/core/domain"
	"github.com/custodia-labs/blogsearch/internal/core/ports/driving"
	"github.com/custodia-labs/blogsearch/internal/logger"
)

// SessionFactory creates a fresh search session over the configured index.
type SessionFactory func() driving.SearchService

// Server routes API requests to the active search session.
type Server struct {
	factory SessionFactory

	mu      sync.RWMutex
	session driving.SearchService

	router *gin.Engine
}

// NewServer creates a server with one session from factory.
func NewServer(factory SessionFactory) (*Server, error) {
	if factory == nil {
		return nil, ErrMissingSearchService
	}
	session := factory()
	if session == nil {
		return nil, ErrMissingSearchService
	}

	s := &Server{
		factory: factory,
		session: session,
	}
	s.router = s.routes()
	return s, nil
}

// Session returns the active session.
func (s *Server) Session() driving.SearchService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Reload builds a fresh session and loads it. The new session replaces
// the active one only once its index has loaded; otherwise the active
// session keeps serving. The previous session is dropped once its
// in-flight requests finish.
func (s *Server) Reload(ctx context.Context) driving.SearchService {
	session := s.factory()
	if session == nil {
		logger.Warn("Reload skipped: no session created")
		return s.Session()
	}

	if state := session.Load(ctx); state != domain.Loaded {
		logger.Warn("Reload failed (%s), keeping the active index", state)
		return s.Session()
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	logger.Info("Index reloaded (%d articles)", session.Stats().Articles)
	return session
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves the API on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("Listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/search", s.handleSearch)
	api.GET("/stats", s.handleStats)

	return r
}
