// Package config loads runtime settings from environment variables,
// with an optional .env file for local use.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything tunable at startup. The parsing core never
// reads it directly; values are passed in explicitly.
type Config struct {
	// StateFile is the YAML snapshot path.
	StateFile string
	// DefaultCategory is the classifier fallback.
	DefaultCategory string
	// CycleSplitDay is the day-of-month boundary between the salary
	// cycle and the advance cycle.
	CycleSplitDay int
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads the configuration. A missing .env file is not an error;
// OS environment variables always win.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StateFile:       getEnv("PLANFIN_STATE_FILE", "planfin.yaml"),
		DefaultCategory: getEnv("PLANFIN_DEFAULT_CATEGORY", ""),
		CycleSplitDay:   getEnvInt("PLANFIN_CYCLE_SPLIT_DAY", 20),
		LogLevel:        getEnv("PLANFIN_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
