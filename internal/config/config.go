// Package config provides environment-driven configuration for interactome.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values.
type Config struct {
	Port          string
	ListenHost    string
	CORSOrigins   []string
	LogLevel      string
	LogFormat     string
	ScoringConfig string
	MinConfidence float64
	TopHubs       int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOrDefault("PORT", "3040"),
		ListenHost:    envOrDefault("LISTEN_HOST", "127.0.0.1"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "text"),
		ScoringConfig: envOrDefault("SCORING_CONFIG", ""),
	}

	minConfidence, err := strconv.ParseFloat(envOrDefault("MIN_CONFIDENCE", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("MIN_CONFIDENCE must be a number: %w", err)
	}
	cfg.MinConfidence = minConfidence

	topHubs, err := strconv.Atoi(envOrDefault("TOP_HUBS", "5"))
	if err != nil {
		return nil, fmt.Errorf("TOP_HUBS must be an integer: %w", err)
	}
	cfg.TopHubs = topHubs

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:3000")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
