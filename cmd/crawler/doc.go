// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the news crawler.

The crawler runs one ingestion pass and exits: it fetches each configured RSS
feed, downloads every article page, extracts the body text, asks Gemini for a
one-sentence summary and a political-leaning call, and inserts the result.
Articles already in the store (same URL) are skipped, so the crawler is safe
to run on a schedule.

# Running

	NEWS_DB_PATH=news.db GEMINI_API_KEY=... go run ./cmd/crawler

Or with flags:

	go run ./cmd/crawler -d news.db -s sources.yaml

# Configuration

Required settings:

  - NEWS_DB_PATH (-d): SQLite database file path

Optional settings:

  - NEWS_SOURCES (-s): Feed sources YAML file (default: embedded list)
  - GEMINI_API_KEY (-gemini-key): Enables enrichment; without it articles
    are stored with in-band failure text in summary and leaning fields
  - GEMINI_MODEL (-gemini-model): Overrides the default model

A .env file in the working directory is loaded if present.
*/
package main
