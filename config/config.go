package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Database  DatabaseConfig  `json:"database"`
	Auth      AuthConfig      `json:"auth"`
	Storage   StorageConfig   `json:"storage"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Logging   LoggingConfig   `json:"logging"`
}

type ServerConfig struct {
	Port           int           `json:"port" env:"SERVER_PORT" default:"9300"`
	ReadTimeout    time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout   time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout    time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	AllowedOrigins []string      `json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"blog"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	Name              string        `json:"name" env:"DB_NAME" default:"blog"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	TokenSecret     string `json:"-" env:"AUTH_TOKEN_SECRET"`
	TokenSecretFile string `json:"-" env:"AUTH_TOKEN_SECRET_FILE"`
	TokenIssuer     string `json:"token_issuer" env:"AUTH_TOKEN_ISSUER" default:"blog-backend"`
	TokenAudience   string `json:"token_audience" env:"AUTH_TOKEN_AUDIENCE" default:"blog-frontend"`
}

type StorageConfig struct {
	ThumbnailDir   string `json:"thumbnail_dir" env:"STORAGE_THUMBNAIL_DIR" default:"uploads/thumbnails"`
	MaxUploadBytes int64  `json:"max_upload_bytes" env:"STORAGE_MAX_UPLOAD_BYTES" default:"5242880"`
}

type RateLimitConfig struct {
	Enabled        bool          `json:"enabled" env:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerSec float64       `json:"requests_per_sec" env:"RATE_LIMIT_RPS" default:"20"`
	Burst          int           `json:"burst" env:"RATE_LIMIT_BURST" default:"40"`
	ClientTTL      time.Duration `json:"client_ttl" env:"RATE_LIMIT_CLIENT_TTL" default:"10m"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values. A .env file is honored when present.
func NewConfig() (*Config, error) {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load token secret from file if configured (Docker Secrets support)
	if config.Auth.TokenSecretFile != "" {
		content, err := os.ReadFile(config.Auth.TokenSecretFile)
		if err == nil {
			config.Auth.TokenSecret = strings.TrimSpace(string(content))
		}
		// On read failure fall back to the env var value, if any.
	}

	return config, nil
}

// DSN builds the libpq-style connection string for the database.
func (c *DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + c.Host,
		"port=" + strconv.Itoa(c.Port),
		"user=" + c.User,
		"dbname=" + c.Name,
		"sslmode=" + c.SSLMode,
	}
	if c.Password != "" {
		parts = append(parts, "password="+c.Password)
	}
	return strings.Join(parts, " ")
}
