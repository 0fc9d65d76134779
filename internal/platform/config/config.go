package config

import (
	"os"
	"strconv"
)

// Config captures process level configuration for the cpfcheck CLI.
type Config struct {
	Development bool
	Workers     int
	Output      string
	Logging     Logging
}

// Logging selects the slog handler and level.
type Logging struct {
	Level  string
	Format string
}

// DefaultWorkers bounds batch validation fan-out when CPF_WORKERS is unset.
const DefaultWorkers = 4

// FromEnv builds a Config from environment variables so main stays lean.
// Flags parsed later take precedence over these values.
func FromEnv() Config {
	workers := DefaultWorkers
	if raw := os.Getenv("CPF_WORKERS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			workers = n
		}
	}

	development, _ := strconv.ParseBool(os.Getenv("CPF_DEVELOPMENT"))

	return Config{
		Development: development,
		Workers:     workers,
		Output:      envOr("CPF_OUTPUT", "yaml"),
		Logging: Logging{
			Level:  envOr("CPF_LOG_LEVEL", "info"),
			Format: envOr("CPF_LOG_FORMAT", "text"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
