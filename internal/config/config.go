package config

import (
	"os"
	"strconv"

	"study-desk/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort          string
	GenerationAPIURL    string
	GenerationAPIKey    string
	MaxFileSize         int64
	LogLevel            string
	ExtractMode         string
	DefaultNumCards     int
	DefaultNumQuestions int
	RequestTimeoutSec   int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:          getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		GenerationAPIURL:    getEnvOrDefault("GENERATION_API_URL", "http://localhost:3001/api"),
		GenerationAPIKey:    getEnvOrDefault("GENERATION_API_KEY", ""),
		MaxFileSize:         getEnvInt64OrDefault("MAX_FILE_SIZE", 15*1024*1024), // 15MB default
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		ExtractMode:         getEnvOrDefault("EXTRACT_MODE", string(domain.SelectAllPages)),
		DefaultNumCards:     getEnvIntOrDefault("DEFAULT_NUM_CARDS", 5),
		DefaultNumQuestions: getEnvIntOrDefault("DEFAULT_NUM_QUESTIONS", 5),
		RequestTimeoutSec:   getEnvIntOrDefault("REQUEST_TIMEOUT_SEC", 60),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetGenerationAPIURL returns the base URL of the generation service
func (c *AppConfig) GetGenerationAPIURL() string {
	return c.GenerationAPIURL
}

// GetGenerationAPIKey returns the API key forwarded to the generation service
func (c *AppConfig) GetGenerationAPIKey() string {
	return c.GenerationAPIKey
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetExtractMode returns the page selector used for extraction
func (c *AppConfig) GetExtractMode() string {
	return c.ExtractMode
}

// GetDefaultNumCards returns the default flashcard count per generation
func (c *AppConfig) GetDefaultNumCards() int {
	return c.DefaultNumCards
}

// GetDefaultNumQuestions returns the default quiz question count per generation
func (c *AppConfig) GetDefaultNumQuestions() int {
	return c.DefaultNumQuestions
}

// GetRequestTimeoutSec returns the generation request timeout in seconds
func (c *AppConfig) GetRequestTimeoutSec() int {
	return c.RequestTimeoutSec
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
