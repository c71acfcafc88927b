package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort       int
	DatabasePath     string
	BackendURL       string // Base URL of the inventory backend API
	ValidateSchedule string // Cron expression for background token validation
	HTTPTimeout      time.Duration
	AppEnv           string
}

// Load loads configuration from a .env file (if present) and environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	timeoutStr := getEnv("HTTP_TIMEOUT_SECONDS", "10")
	timeoutSec, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:       port,
		DatabasePath:     getEnv("DATABASE_PATH", "./console.db"),
		BackendURL:       getEnv("BACKEND_URL", "http://localhost:8081"),
		ValidateSchedule: getEnv("VALIDATE_SCHEDULE", "*/5 * * * *"),
		HTTPTimeout:      time.Duration(timeoutSec) * time.Second,
		AppEnv:           getEnv("APP_ENV", "development"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
