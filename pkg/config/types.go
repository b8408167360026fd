package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	NewsAPI      NewsAPIConfig   `mapstructure:"newsapi"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Sessions     SessionsConfig  `mapstructure:"sessions"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// NewsAPIConfig contains settings for the news search endpoint
type NewsAPIConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	Endpoint  string        `mapstructure:"endpoint"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// DatabaseConfig contains session store settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// SessionsConfig contains browser session settings
type SessionsConfig struct {
	CookieName      string        `mapstructure:"cookie_name"`
	SecureCookie    bool          `mapstructure:"secure_cookie"`
	IdleTTL         time.Duration `mapstructure:"idle_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig contains per-client rate limiting settings
type RateLimitConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	SearchRPS   int  `mapstructure:"search_rps"`
	SearchBurst int  `mapstructure:"search_burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}
