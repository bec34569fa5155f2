// Package config provides configuration management for the fairsplit admin console.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultBaseURL is the fairsplit server the original dashboard talks to.
const DefaultBaseURL = "https://fairsplit-server.onrender.com"

// Config holds all application configuration.
type Config struct {
	API       APIConfig
	AuthStore AuthStoreConfig
	Logging   LoggingConfig
}

// APIConfig holds remote API configuration.
type APIConfig struct {
	BaseURL string
	// Timeout bounds each HTTP call. Zero means no timeout, matching the
	// original dashboard which configured none.
	Timeout time.Duration
	// RequestsPerSecond throttles outgoing calls when > 0. Zero disables the
	// limiter.
	RequestsPerSecond float64
}

// AuthStoreConfig selects where the token pair and admin identity persist.
type AuthStoreConfig struct {
	// Backend is one of "file", "redis", "memory".
	Backend string
	// FilePath is the JSON file used by the file backend.
	FilePath string
	Redis    RedisConfig
}

// RedisConfig holds redis configuration for the shared token store backend.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (*Config, error) {
	// .env file is optional - environment variables can be set directly
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	config := &Config{
		API: APIConfig{
			BaseURL:           getEnv("FAIRSPLIT_API_URL", DefaultBaseURL),
			Timeout:           getEnvAsDuration("FAIRSPLIT_API_TIMEOUT", 0),
			RequestsPerSecond: getEnvAsFloat("FAIRSPLIT_API_RPS", 0),
		},
		AuthStore: AuthStoreConfig{
			Backend:  getEnv("AUTH_STORE_BACKEND", "file"),
			FilePath: getEnv("AUTH_STORE_FILE", defaultAuthFile()),
			Redis: RedisConfig{
				Host:     getEnv("REDIS_HOST", "localhost"),
				Port:     getEnv("REDIS_PORT", "6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
			},
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return config, nil
}

// defaultAuthFile places the auth file under the user's home directory.
func defaultAuthFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".fairsplit-admin/auth.json"
	}
	return filepath.Join(home, ".fairsplit-admin", "auth.json")
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat gets an environment variable as a float with a default value.
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration with a default value.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
