package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Remote enrollment API configuration
	EnrollmentAPIBaseURL string        `json:"enrollment_api_base_url"`
	EnrollmentAPIToken   string        `json:"enrollment_api_token"`
	EnrollmentAPITimeout time.Duration `json:"enrollment_api_timeout"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is read first when present.
func LoadConfig() error {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	apiTimeout, err := time.ParseDuration(getEnvOrDefault("ENROLLMENT_API_TIMEOUT", "30s"))
	if err != nil {
		return fmt.Errorf("invalid ENROLLMENT_API_TIMEOUT: %w", err)
	}

	baseURL := os.Getenv("ENROLLMENT_API_BASE_URL")
	if baseURL == "" {
		return fmt.Errorf("ENROLLMENT_API_BASE_URL environment variable is required")
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Remote enrollment API configuration
		EnrollmentAPIBaseURL: baseURL,
		EnrollmentAPIToken:   getEnvOrDefault("ENROLLMENT_API_TOKEN", ""),
		EnrollmentAPITimeout: apiTimeout,

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
