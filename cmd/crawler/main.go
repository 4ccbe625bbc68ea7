package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/newsbalance/cliparse"
	"github.com/danielhkuo/newsbalance/config"
	"github.com/danielhkuo/newsbalance/crawler"
	"github.com/danielhkuo/newsbalance/enrich"
	"github.com/danielhkuo/newsbalance/store"
)

func main() {
	// Load .env if present; real env variables win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Load feed sources (embedded default when no file is given)
	sources, err := config.LoadSources(cfg.SourcesPath)
	if err != nil {
		slog.Error("failed to load sources", "path", cfg.SourcesPath, "error", err)
		os.Exit(1)
	}
	enabled := sources.Enabled()
	if len(enabled) == 0 {
		slog.Error("no enabled sources configured")
		os.Exit(1)
	}

	// Prepare storage before crawling
	st := store.New(cfg.DatabasePath)
	if err := st.Migrate(ctx); err != nil {
		slog.Error("database migration failed", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	// Without an API key the crawler still runs; articles are stored with
	// in-band enrichment-failure text instead of summaries.
	var enricher enrich.Enricher
	gemini, err := enrich.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	switch {
	case err == nil:
		enricher = gemini
	case errors.Is(err, enrich.ErrNotConfigured):
		slog.Warn("gemini api key not set, enrichment disabled")
		enricher = enrich.Disabled{}
	default:
		slog.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}

	report, err := crawler.New(st, enricher).Run(ctx, enabled)
	if err != nil {
		slog.Error("crawl aborted", "run_id", report.RunID, "error", err)
		os.Exit(1)
	}

	slog.Info("crawl finished",
		"run_id", report.RunID,
		"candidates", report.CandidatesSeen,
		"inserted", report.Inserted,
		"skipped_duplicate", report.SkippedDuplicate,
		"skipped_no_body", report.SkippedNoBody,
		"skipped_fetch_error", report.SkippedFetchError,
		"feed_errors", report.FeedErrors,
	)
}
