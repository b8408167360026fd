package cmd

import (
	"os"

	"github.com/killallgit/news-finder/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "news-finder",
	Short: "News Finder server and CLI",
	Long: `News Finder - search news articles about a topic in many languages

Serves a small web form that queries NewsAPI and shows the matching
articles as cards, and offers the same search from the command line.

Features:
  • Keyword search with scope, date range, language and sort order
  • Per-browser session state kept in SQLite
  • Stateless JSON search API with Swagger docs`,
	SilenceUsage:      true,
	PersistentPreRunE: initCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Add persistent flags for logging configuration
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.json", rootCmd.PersistentFlags().Lookup("json-logs"))
}

// initCommand loads the configuration for commands that need it
func initCommand(cmd *cobra.Command, args []string) error {
	// Version output never depends on config
	if cmd.Name() == "version" {
		return nil
	}

	if err := config.Init(); err != nil {
		return err
	}

	setupLogging(config.GetString("logging.level"), config.GetBool("logging.json"), cmd.ErrOrStderr())
	return nil
}
