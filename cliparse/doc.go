// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DatabasePath: SQLite database file path (required)
  - SourcesPath: Feed sources YAML file (optional; embedded default)
  - GeminiAPIKey: Gemini API key (optional; crawler degrades without it)
  - GeminiModel: Gemini model name (optional)

# CLI Flags

	-p            Server port
	-d            Database file path
	-s            Feed sources YAML file
	-gemini-key   Gemini API key (prefer env)
	-gemini-model Gemini model name

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	NEWS_DB_PATH  → -d
	NEWS_SOURCES  → -s
	GEMINI_API_KEY → -gemini-key
	GEMINI_MODEL   → -gemini-model

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error only when the database path is missing. The
Gemini key is deliberately optional: crawler runs without it store articles
with in-band enrichment-failure text instead of aborting. The resolved key is
passed to the enrichment client as a value; no other package reads
environment state.
*/
package cliparse
