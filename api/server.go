package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
	"github.com/killallgit/news-finder/internal/services/cleanup"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	sessionCleanup     *cleanup.Service
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string) *Server {
	// Create Gin engine with recovery middleware only
	engine := gin.New()
	engine.Use(gin.Recovery())

	server := &Server{
		engine:       engine,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}

	return server
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// SetSessionCleanup hands the idle session purge to the server so it stops on shutdown
func (s *Server) SetSessionCleanup(svc *cleanup.Service) {
	s.sessionCleanup = svc
}

// SetTimeouts overrides the default read and write timeouts
func (s *Server) SetTimeouts(read, write time.Duration) {
	if read > 0 {
		s.httpServer.ReadTimeout = read
	}
	if write > 0 {
		s.httpServer.WriteTimeout = write
	}
}

// SetMaxHeaderBytes overrides the default request header limit
func (s *Server) SetMaxHeaderBytes(n int) {
	if n > 0 {
		s.httpServer.MaxHeaderBytes = n
	}
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}

	if err := ensureConfig(s.dependencies); err != nil {
		return err
	}

	// Setup global middleware
	s.setupMiddleware()

	// Setup routes
	if err := s.setupRoutes(); err != nil {
		return err
	}

	return nil
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	cfg := s.dependencies.Config

	if cfg.Logging.JSON {
		s.engine.Use(JSONLogger())
	} else {
		s.engine.Use(gin.Logger())
	}

	// Global CORS
	s.engine.Use(CORS(cfg.Security.CORSOrigins))

	// Global request size limit
	s.engine.Use(RequestSizeLimit())
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sessionCleanup != nil {
		s.sessionCleanup.Stop()
	}

	// Stop the rate limiter cleanup goroutine
	close(s.cleanupStop)

	return s.httpServer.Shutdown(ctx)
}
