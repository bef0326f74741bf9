package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
// Note: this is a stateless configuration - the arranger core keeps no
// database; sessions live in memory for the lifetime of the process
type Config struct {
	// Environment
	Environment string
	Port        string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Arranger defaults
	MinChordNotes    int // minimum unique pitch classes for recognition
	SplitPoint       int // left-hand/right-hand split (MIDI note)
	GroupToleranceMS int // note grouping window for chord gestures
}

func Load() *Config {
	return &Config{
		Environment:      getEnv("ENVIRONMENT", "development"),
		Port:             getEnv("PORT", "8080"),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		MinChordNotes:    getEnvInt("ARRANGER_MIN_CHORD_NOTES", 3),
		SplitPoint:       getEnvInt("ARRANGER_SPLIT_POINT", 60),
		GroupToleranceMS: getEnvInt("ARRANGER_GROUP_TOLERANCE_MS", 30),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
