package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"tabprof/internal/errors"
)

// Config holds the ingestion and profiling options
type Config struct {
	Ingest IngestConfig
}

// IngestConfig holds file-ingestion settings
type IngestConfig struct {
	// TypeThreshold is the fraction of non-empty cells that must parse
	// as a candidate type before a column is inferred as that type.
	TypeThreshold float64

	// DateLayouts are the layouts tried, in order, when inferring
	// datetime columns from raw text.
	DateLayouts []string

	// ExcelSheet restricts Excel ingestion to one sheet when set.
	ExcelSheet string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Ingest: IngestConfig{
			TypeThreshold: 0.8, // 80% of values must parse successfully
			DateLayouts: []string{
				"2006-01-02",
				"2006-01-02 15:04:05",
				"2006/01/02",
				"01/02/2006",
				"02-Jan-2006",
			},
		},
	}
}

// Load reads configuration from the environment, with .env support,
// falling back to defaults for anything unset.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Default()
	cfg.Ingest.TypeThreshold = getEnvFloatOrDefault("TABPROF_TYPE_THRESHOLD", cfg.Ingest.TypeThreshold)
	cfg.Ingest.ExcelSheet = getEnvOrDefault("TABPROF_EXCEL_SHEET", cfg.Ingest.ExcelSheet)
	if layouts := os.Getenv("TABPROF_DATE_LAYOUTS"); layouts != "" {
		cfg.Ingest.DateLayouts = splitAndTrim(layouts)
	}

	if cfg.Ingest.TypeThreshold <= 0 || cfg.Ingest.TypeThreshold > 1 {
		return cfg, errors.ConfigInvalid("TABPROF_TYPE_THRESHOLD must be in (0, 1]")
	}
	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
