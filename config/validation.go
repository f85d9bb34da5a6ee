package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateStorageConfig(&config.Storage); err != nil {
		return fmt.Errorf("storage config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" {
		return fmt.Errorf("database host must not be empty")
	}

	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("database port must be between 1 and 65535, got %d", config.Port)
	}

	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateStorageConfig(config *StorageConfig) error {
	if strings.TrimSpace(config.ThumbnailDir) == "" {
		return fmt.Errorf("thumbnail directory must not be empty")
	}

	if config.MaxUploadBytes < 1 {
		return fmt.Errorf("max upload bytes must be positive, got %d", config.MaxUploadBytes)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.RequestsPerSec <= 0 {
		return fmt.Errorf("requests per second must be positive, got %v", config.RequestsPerSec)
	}

	if config.Burst < 1 {
		return fmt.Errorf("burst must be at least 1, got %d", config.Burst)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[strings.ToLower(config.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	return nil
}
