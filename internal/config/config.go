// Package config handles loading application configuration from environment
// variables. All config is centralized here so no other package reads env
// vars directly. Sensible defaults are provided for development.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Config holds all application configuration. Populated from environment
// variables at startup. Passed to other packages via dependency injection.
type Config struct {
	// Env is the runtime environment: "development" or "production".
	Env string

	// Port is the HTTP listen port (default: 8080).
	Port int

	// BaseURL is the public-facing URL used for links and redirects.
	BaseURL string

	// LogLevel controls log verbosity: "debug", "info", "warn", "error".
	LogLevel string

	// MigrationsPath is the directory holding the *.up.sql/*.down.sql files.
	MigrationsPath string

	// Database holds MariaDB connection settings.
	Database DatabaseConfig

	// Redis holds Redis connection settings.
	Redis RedisConfig

	// Backend holds settings for the organization/team backend API.
	Backend BackendConfig

	// Selection holds settings for the per-session priority selection.
	Selection SelectionConfig

	// Forms holds settings for the form relay endpoints.
	Forms FormsConfig
}

// DatabaseConfig holds MariaDB connection parameters. Individual fields
// (Host, User, Password, Name) are read from separate env vars so
// container orchestrators can manage each independently.
// If DATABASE_URL is set, it takes precedence over the individual fields.
type DatabaseConfig struct {
	// Host is the MariaDB address in host:port format (default: "localhost:3306").
	// If no port is specified, 3306 is appended automatically.
	Host string

	// User is the MariaDB username (default: "teamcal").
	User string

	// Password is the MariaDB password (default: "teamcal").
	Password string

	// Name is the database name (default: "teamcal").
	Name string

	// dsnOverride is set when DATABASE_URL is provided, bypassing individual fields.
	dsnOverride string

	// MaxOpenConns is the maximum number of open connections in the pool.
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections in the pool.
	MaxIdleConns int

	// ConnMaxLifetime is how long a connection can be reused.
	ConnMaxLifetime time.Duration
}

// DSN returns the go-sql-driver/mysql connection string. If DATABASE_URL was
// set, it is returned as-is. Otherwise the DSN is built from the individual
// Host/User/Password/Name fields using the driver's Config.FormatDSN()
// to safely handle special characters in passwords.
func (d DatabaseConfig) DSN() string {
	if d.dsnOverride != "" {
		return d.dsnOverride
	}
	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = ensurePort(d.Host, "3306")
	cfg.DBName = d.Name
	cfg.ParseTime = true
	// golang-migrate runs multi-statement files.
	cfg.MultiStatements = true
	return cfg.FormatDSN()
}

// ensurePort appends the default port if the host string doesn't include one.
// Allows users to set DB_HOST=mydb (gets :3306) or DB_HOST=mydb:3307 (as-is).
func ensurePort(host, defaultPort string) string {
	_, _, err := net.SplitHostPort(host)
	if err != nil {
		return net.JoinHostPort(host, defaultPort)
	}
	return host
}

// RedisConfig holds Redis connection parameters.
type RedisConfig struct {
	// URL is the Redis connection URL (e.g., "redis://localhost:6379").
	URL string
}

// BackendConfig points at the API that owns users, orgs and teams.
type BackendConfig struct {
	// URL is the backend base URL (e.g., "http://127.0.0.1:8000").
	URL string

	// Timeout bounds every backend request.
	Timeout time.Duration
}

// SelectionConfig holds settings for the stored priority selection.
type SelectionConfig struct {
	// TTL is how long an untouched selection survives in Redis.
	TTL time.Duration
}

// FormsConfig holds settings for the login/signup relay.
type FormsConfig struct {
	// RateLimit is the number of login/signup attempts allowed per client IP
	// within RateWindow.
	RateLimit int

	// RateWindow is the window RateLimit applies to.
	RateWindow time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// Returns an error if required variables are missing or malformed.
func Load() (*Config, error) {
	cfg := &Config{
		Env:            getEnv("ENV", "development"),
		Port:           getEnvInt("PORT", 8080),
		BaseURL:        getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),

		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost:3306"),
			User:            getEnv("DB_USER", "teamcal"),
			Password:        getEnv("DB_PASSWORD", "teamcal"),
			Name:            getEnv("DB_NAME", "teamcal"),
			dsnOverride:     getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},

		Backend: BackendConfig{
			URL:     getEnv("BACKEND_URL", ""),
			Timeout: getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
		},

		Selection: SelectionConfig{
			TTL: getEnvDuration("SELECTION_TTL", 720*time.Hour),
		},

		Forms: FormsConfig{
			RateLimit:  getEnvInt("FORM_RATE_LIMIT", 10),
			RateWindow: getEnvDuration("FORM_RATE_WINDOW", time.Minute),
		},
	}

	// Validate required fields in production. Case-insensitive check catches
	// common variants like "Production", "prod", etc.
	envLower := strings.ToLower(cfg.Env)
	if envLower == "production" || envLower == "prod" {
		if cfg.Backend.URL == "" {
			return nil, fmt.Errorf("BACKEND_URL is required in production")
		}
	}

	// Local development talks to the backend's default uvicorn address.
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = "http://127.0.0.1:8000"
	}

	u, err := url.Parse(cfg.Backend.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("BACKEND_URL must be an absolute http(s) URL, got %q", cfg.Backend.URL)
	}

	if cfg.Forms.RateLimit < 1 {
		return nil, fmt.Errorf("FORM_RATE_LIMIT must be at least 1, got %d", cfg.Forms.RateLimit)
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Env)
	return env == "development" || env == "dev"
}

// --- Helper functions for reading environment variables ---

// getEnv reads a string env var or returns the default.
func getEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvInt reads an integer env var or returns the default.
func getEnvInt(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvDuration reads a duration env var (e.g., "720h") or returns the default.
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
