// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package crawler implements the news ingestion pipeline.

# Pipeline

One Run processes every enabled feed source sequentially:

 1. Fetch the feed. A transport failure or bad status zeroes that source's
    candidates (counted in FeedErrors) without crashing the run.
 2. Parse entries into (title, url) candidates; incomplete entries are
    dropped silently.
 3. For each candidate: fetch the page (one attempt, bounded by
    DefaultTimeout); on failure, log and skip. Extract the body via the
    source's CSS selector; an empty body skips the candidate.
 4. Summarize and classify the body. Enrichment failures become in-band
    field text ("summary failed: ...") rather than aborting — a partially
    enriched article is still stored, and re-running is cheap.
 5. InsertArticleIfAbsent: duplicates on url are tallied as skips, never
    treated as errors. URL dedup is the pipeline's only resumability
    mechanism; there is no other persistent state.

# Report

	report, err := crawler.New(st, enricher).Run(ctx, sources.Enabled())

Report carries run counters (candidates_seen, inserted, skipped_duplicate,
skipped_no_body, skipped_fetch_error, feed_errors) plus a RunID that tags
every log line of the run. Running twice against an unchanged feed yields
inserted == 0 on the second run.

The returned error is reserved for store-level failures; everything
item-local is a counter and a log line.
*/
package crawler
