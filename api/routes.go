package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/news-finder/api/finder"
	"github.com/killallgit/news-finder/api/health"
	"github.com/killallgit/news-finder/api/middleware"
	"github.com/killallgit/news-finder/api/search"
	"github.com/killallgit/news-finder/api/session"
	"github.com/killallgit/news-finder/api/types"
	"github.com/killallgit/news-finder/api/version"
	_ "github.com/killallgit/news-finder/docs/swagger"
	finderService "github.com/killallgit/news-finder/internal/services/finder"
	"github.com/killallgit/news-finder/internal/services/newsapi"
	"github.com/killallgit/news-finder/internal/services/sessions"
	"github.com/killallgit/news-finder/pkg/config"
)

// RegisterRoutes registers all routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if err := ensureConfig(deps); err != nil {
		return err
	}
	cfg := deps.Config

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// Initialize the news client if not set
	if deps.NewsClient == nil {
		deps.NewsClient = newsapi.NewClient(newsapi.Config{
			APIKey:    cfg.NewsAPI.APIKey,
			Endpoint:  cfg.NewsAPI.Endpoint,
			UserAgent: cfg.NewsAPI.UserAgent,
			Timeout:   cfg.NewsAPI.Timeout,
		})
	}

	// Every route that reaches the news endpoint shares one per-client budget
	searchLimit := func(c *gin.Context) { c.Next() }
	if cfg.RateLimiting.Enabled {
		searchLimit = PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized,
			cfg.RateLimiting.SearchRPS, cfg.RateLimiting.SearchBurst)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	searchGroup := v1.Group("/search")
	searchGroup.Use(searchLimit, middleware.ETag())
	search.RegisterRoutes(searchGroup, deps)

	// Session-backed routes need the store
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.Finder == nil {
			deps.Finder = finderService.NewService(
				sessions.NewRepository(deps.DB.DB),
				deps.NewsClient,
				finderService.WithSearchTimeout(cfg.NewsAPI.Timeout),
			)
		}

		sessionMiddleware := Sessions(cfg.Sessions.CookieName, cfg.Sessions.SecureCookie)

		sessionGroup := v1.Group("/session", sessionMiddleware, middleware.NoStore())
		session.RegisterRoutes(sessionGroup, deps, searchLimit)

		pages := engine.Group("/", sessionMiddleware, middleware.NoStore())
		finder.RegisterRoutes(pages, deps, searchLimit)
	}

	return nil
}

// ensureConfig loads the global configuration into deps when none was supplied
func ensureConfig(deps *types.Dependencies) error {
	if deps.Config != nil {
		return nil
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	deps.Config = cfg
	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Details: gin.H{"path": c.Request.URL.Path},
		})
	}
}
