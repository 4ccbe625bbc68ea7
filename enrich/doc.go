// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package enrich calls the text-analysis provider for article summarization and
political-leaning classification.

# Enricher

The crawler depends on the Enricher interface, not on Gemini directly:

	type Enricher interface {
		Summarize(ctx context.Context, text string) (string, error)
		ClassifyLeaning(ctx context.Context, text string) (string, error)
	}

Implementations return errors; the crawler converts failures to in-band field
text ("summary failed: ...") so a partially enriched article is still stored.

# Gemini

The production implementation uses the Gemini API:

	enricher, err := enrich.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)

The API key arrives pre-validated from configuration; this package never
reads environment variables. Prompts ask for a one-sentence Korean summary
and a 진보/중도/보수 classification with a one-sentence reason; the answer is
free text and is normalized downstream (models.NormalizeLeaning).

# Disabled

When no key is configured the crawler runs with enrich.Disabled, whose calls
all fail with ErrNotConfigured. Ingestion still proceeds; rows carry the
in-band failure text until a configured re-crawl of new articles.
*/
package enrich
