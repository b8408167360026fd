package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/news-finder/api"
	"github.com/killallgit/news-finder/api/types"
	"github.com/killallgit/news-finder/internal/database"
	"github.com/killallgit/news-finder/internal/services/cleanup"
	"github.com/killallgit/news-finder/internal/services/finder"
	"github.com/killallgit/news-finder/internal/services/newsapi"
	"github.com/killallgit/news-finder/internal/services/sessions"
	"github.com/killallgit/news-finder/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the News Finder web server",
	Long: `Start the News Finder web server with the configured settings.

The server renders the search form and results pages, keeps one session
per browser, and exposes a JSON search API.

Example:
  news-finder serve
  news-finder serve --port 9090
  news-finder serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	// Use config values if flags not provided
	host := serverHost
	if host == "" {
		host = cfg.Server.Host
	}
	port := serverPort
	if port == 0 {
		port = cfg.Server.Port
	}
	address := fmt.Sprintf("%s:%d", host, port)

	db, err := database.InitializeWithMigrations(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := sessions.NewRepository(db.DB)
	newsClient := newsapi.NewClient(newsapi.Config{
		APIKey:    cfg.NewsAPI.APIKey,
		Endpoint:  cfg.NewsAPI.Endpoint,
		UserAgent: cfg.NewsAPI.UserAgent,
		Timeout:   cfg.NewsAPI.Timeout,
	})
	finderSvc := finder.NewService(repo, newsClient, finder.WithSearchTimeout(cfg.NewsAPI.Timeout))
	sessionCleanup := cleanup.NewService(repo, cfg.Sessions.IdleTTL, cfg.Sessions.CleanupInterval)

	server := api.NewServer(address)
	server.SetTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	server.SetMaxHeaderBytes(cfg.Server.MaxHeaderBytes)
	server.SetDependencies(&types.Dependencies{
		DB:         db,
		Finder:     finderSvc,
		NewsClient: newsClient,
		Config:     cfg,
		Build:      buildInfo(),
	})
	server.SetSessionCleanup(sessionCleanup)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Stop on interrupt, SIGTERM or when the command context ends
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionCleanup.Start(ctx)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] News Finder listening on %s", address)

	var runErr error
	select {
	case <-ctx.Done():
		log.Println("[INFO] Shutting down server...")
	case runErr = <-serverErr:
		log.Printf("[ERROR] %v", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Println("[INFO] Server gracefully stopped")
	return runErr
}
