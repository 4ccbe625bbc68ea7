package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabasePath string
	SourcesPath  string
	GeminiAPIKey string
	GeminiModel  string
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("newsbalance", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")
	fs.StringVar(&cfg.SourcesPath, "s", "", "Feed sources YAML file (default: embedded)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.GeminiAPIKey, "gemini-key", "", "Gemini API key (prefer env)")
	fs.StringVar(&cfg.GeminiModel, "gemini-model", "", "Gemini model name")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8000 // default
		}
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("NEWS_DB_PATH")
	}
	if cfg.DatabasePath == "" {
		return Config{}, errors.New("database path required (use -d or NEWS_DB_PATH env)")
	}

	if cfg.SourcesPath == "" {
		cfg.SourcesPath = os.Getenv("NEWS_SOURCES")
	}

	// The Gemini key is optional: without it the crawler still runs and
	// stores articles with in-band enrichment-failure text.
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = os.Getenv("GEMINI_MODEL")
	}

	return cfg, nil
}
