package cmd

import (
	"fmt"
	"time"

	"github.com/killallgit/news-finder/internal/database"
	"github.com/killallgit/news-finder/internal/models"
	"github.com/killallgit/news-finder/internal/services/sessions"
	"github.com/killallgit/news-finder/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the session store",
	Long: `Manage the SQLite session store used by the web server.

These commands only matter when database.path points to a file; the
default in-memory store is created fresh on every start.

Available subcommands:
  up      - Create or update the session schema
  status  - Show the schema and session count
  purge   - Remove sessions idle for longer than the configured TTL`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the session schema",
	Long: `Create or update the session schema in the configured store.

Running it against an up-to-date store changes nothing.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows store status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session store status",
	Long: `Display the current status of the session store.

Shows the configured path, whether the sessions table exists and
how many sessions it holds.`,
	RunE: runMigrateStatus,
}

// migratePurgeCmd removes idle sessions
var migratePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove idle sessions",
	Long: `Remove sessions that have not been used for longer than the idle TTL.

The server does this periodically; this command runs it once.`,
	RunE: runMigratePurge,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	migrateCmd.AddCommand(migratePurgeCmd)

	migratePurgeCmd.Flags().Duration("idle-ttl", 0, "idle time after which a session is removed (0 = sessions.idle_ttl)")
}

func openStore() (*database.DB, *config.Config, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Session schema is up to date (%s)\n", cfg.Database.Path)
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Session Store Status")
	fmt.Fprintln(out, "==================================================")
	fmt.Fprintf(out, "Path:      %s\n", cfg.Database.Path)

	if !db.Migrator().HasTable(&models.Session{}) {
		fmt.Fprintln(out, "Schema:    missing (run 'migrate up')")
		return nil
	}

	var count int64
	if err := db.Model(&models.Session{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting sessions: %w", err)
	}

	fmt.Fprintln(out, "Schema:    present")
	fmt.Fprintf(out, "Sessions:  %d\n", count)
	return nil
}

func runMigratePurge(cmd *cobra.Command, args []string) error {
	db, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	ttl, _ := cmd.Flags().GetDuration("idle-ttl")
	if ttl <= 0 {
		ttl = cfg.Sessions.IdleTTL
	}

	if err := db.AutoMigrate(); err != nil {
		return err
	}

	removed, err := sessions.NewRepository(db.DB).PurgeIdle(cmd.Context(), time.Now().Add(-ttl))
	if err != nil {
		return fmt.Errorf("purging sessions: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d session(s) idle for more than %v\n", removed, ttl)
	return nil
}
