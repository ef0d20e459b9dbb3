// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	AI        AIConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Analytics AnalyticsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// AIConfig holds generative AI delegate configuration. An empty APIKey
// runs the service in heuristic-only mode.
type AIConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// CacheConfig holds the Redis result cache configuration. An empty URL
// disables caching.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// RateLimitConfig holds rate limiting configuration for the AI endpoints.
type RateLimitConfig struct {
	MaxAttempts    int
	WindowDuration time.Duration
}

// AnalyticsConfig holds tuning knobs for the deterministic engines.
type AnalyticsConfig struct {
	MonthsOfHistory int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		AI: AIConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
			Timeout: getEnvAsDuration("GEMINI_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      getEnvAsDuration("CACHE_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			MaxAttempts:    getEnvAsInt("AI_RATE_LIMIT_MAX_ATTEMPTS", 30),
			WindowDuration: getEnvAsDuration("AI_RATE_LIMIT_WINDOW", 1*time.Minute),
		},
		Analytics: AnalyticsConfig{
			MonthsOfHistory: getEnvAsInt("ANALYTICS_MONTHS_OF_HISTORY", 3),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
