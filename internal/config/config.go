package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the assistant connection settings. The core economy needs
// none of this; a missing endpoint simply disables remote calls and the
// adapters degrade to their local fallbacks.
type Config struct {
	AssistantEndpoint string
	AssistantModel    string
	AssistantAPIKey   string
	RequestTimeout    time.Duration
}

// Load reads configuration from the environment, picking up a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AssistantEndpoint: getEnv("UNROT_AI_ENDPOINT", ""),
		AssistantModel:    getEnv("UNROT_AI_MODEL", "gemini-3-flash-preview"),
		AssistantAPIKey:   getEnv("UNROT_AI_KEY", ""),
		RequestTimeout:    10 * time.Second,
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
