package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "github.com/killallgit/news-finder/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. NEWSFINDER_SERVER_PORT
const EnvPrefix = "NEWSFINDER"

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		initErr = load("./config/settings.yaml")
	})

	return initErr
}

// load sets defaults, wires environment overrides and reads the optional config file
func load(path string) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The API key is commonly exported without the prefix
	if err := viper.BindEnv("newsapi.api_key", EnvPrefix+"_NEWSAPI_API_KEY", "NEWS_API_KEY"); err != nil {
		return fmt.Errorf("binding api key env: %w", err)
	}

	configPath := filepath.Clean(path)
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !os.IsNotExist(err) && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a validated struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConfigInvalid, "error unmarshaling config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// validate checks the merged settings once at load time
func validate() error {
	if _, err := GetConfig(); err != nil {
		return err
	}
	return validateAPIKey()
}

// validateAPIKey rejects placeholder keys in production. Elsewhere a missing key
// only warns: the endpoint answers with an authorization error that the UI
// reports like any other failed search.
func validateAPIKey() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	key := viper.GetString("newsapi.api_key")
	for _, placeholder := range placeholders {
		if key == placeholder {
			if isProduction {
				return apperrors.ConfigError("newsapi.api_key", "cannot use placeholder values in production")
			}
			log.Println("[WARN] News API key is not configured; searches will be rejected by the endpoint")
			break
		}
	}

	return nil
}

// Validate checks the settings every command relies on and fills in
// missing rate limits
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.NewsAPI.Endpoint == "" {
		return apperrors.ConfigRequiredError("newsapi.endpoint")
	}

	if c.RateLimiting.SearchRPS <= 0 {
		c.RateLimiting.SearchRPS = 5
	}
	if c.RateLimiting.SearchBurst <= 0 {
		c.RateLimiting.SearchBurst = 10
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// News API defaults
	viper.SetDefault("newsapi.endpoint", "https://newsapi.org/v2/everything")
	viper.SetDefault("newsapi.timeout", 15*time.Second)
	viper.SetDefault("newsapi.user_agent", "NewsFinder/1.0")

	// Session store defaults; the in-memory DSN keeps nothing on disk
	viper.SetDefault("database.path", ":memory:")
	viper.SetDefault("database.verbose", false)
	viper.SetDefault("sessions.cookie_name", "news_finder_session")
	viper.SetDefault("sessions.secure_cookie", false)
	viper.SetDefault("sessions.idle_ttl", 24*time.Hour)
	viper.SetDefault("sessions.cleanup_interval", 10*time.Minute)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{"*"})

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.json", false)
}
