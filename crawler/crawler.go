// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/newsbalance/config"
	"github.com/danielhkuo/newsbalance/enrich"
	"github.com/danielhkuo/newsbalance/extract"
	"github.com/danielhkuo/newsbalance/feed"
	"github.com/danielhkuo/newsbalance/models"
	"github.com/danielhkuo/newsbalance/store"
)

// Report summarizes one ingestion run. Duplicates are expected on re-runs
// and are not errors; only FeedErrors indicates sources that produced zero
// candidates.
type Report struct {
	RunID             string `json:"run_id"`
	CandidatesSeen    int    `json:"candidates_seen"`
	Inserted          int    `json:"inserted"`
	SkippedDuplicate  int    `json:"skipped_duplicate"`
	SkippedNoBody     int    `json:"skipped_no_body"`
	SkippedFetchError int    `json:"skipped_fetch_error"`
	FeedErrors        int    `json:"feed_errors"`
}

// Crawler runs the ingestion pipeline: feed fetch, body fetch, enrichment,
// deduplicated insert. One sequential pass, one attempt per item.
type Crawler struct {
	store    store.Store
	enricher enrich.Enricher
	fetcher  *feed.Fetcher
	client   *http.Client
}

// DefaultTimeout bounds each feed and page fetch. A hung remote must not
// hang the run.
const DefaultTimeout = 15 * time.Second

func New(st store.Store, enricher enrich.Enricher) *Crawler {
	return &Crawler{
		store:    st,
		enricher: enricher,
		fetcher:  feed.NewFetcher(),
		client:   &http.Client{Timeout: DefaultTimeout},
	}
}

// Run crawls every enabled source and returns the aggregate report. Failures
// local to one feed item never abort the run; a failed feed fetch only zeroes
// that source's candidates. The returned error is reserved for store-level
// failures (e.g. the database file disappearing mid-run).
func (c *Crawler) Run(ctx context.Context, sources []config.Source) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	log := slog.With("run_id", report.RunID)

	for _, src := range sources {
		candidates, err := c.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			log.Error("feed unavailable", "source", src.Name, "error", err)
			report.FeedErrors++
			continue
		}
		log.Info("feed fetched", "source", src.Name, "candidates", len(candidates))

		extractor := extract.New(src.Selector)
		for _, cand := range candidates {
			report.CandidatesSeen++
			if err := c.ingest(ctx, log, extractor, cand, &report); err != nil {
				return report, err
			}
		}
	}

	log.Info("run complete",
		"candidates_seen", report.CandidatesSeen,
		"inserted", report.Inserted,
		"skipped_duplicate", report.SkippedDuplicate,
		"skipped_no_body", report.SkippedNoBody,
		"skipped_fetch_error", report.SkippedFetchError,
		"feed_errors", report.FeedErrors,
	)
	return report, nil
}

// ingest processes one candidate. Item-local failures update counters and
// return nil; only store failures propagate.
func (c *Crawler) ingest(ctx context.Context, log *slog.Logger, extractor *extract.Extractor, cand feed.Candidate, report *Report) error {
	body, err := c.fetchBody(ctx, extractor, cand.URL)
	if err != nil {
		log.Warn("article fetch failed", "url", cand.URL, "error", err)
		report.SkippedFetchError++
		return nil
	}
	if body == "" {
		log.Warn("no article body found", "url", cand.URL)
		report.SkippedNoBody++
		return nil
	}

	// Enrichment failures become in-band field text: a partially enriched
	// article is worth storing, and a re-run is cheap.
	summary, err := c.enricher.Summarize(ctx, body)
	if err != nil {
		summary = fmt.Sprintf("summary failed: %v", err)
	}
	leaning, err := c.enricher.ClassifyLeaning(ctx, body)
	if err != nil {
		leaning = fmt.Sprintf("leaning analysis failed: %v", err)
	}
	label := models.NormalizeLeaning(leaning)

	article := models.Article{
		Title:            cand.Title,
		URL:              cand.URL,
		Content:          &body,
		Summary:          &summary,
		PoliticalLeaning: &leaning,
		LeaningLabel:     &label,
	}
	inserted, err := c.store.InsertArticleIfAbsent(ctx, &article)
	if err != nil {
		return fmt.Errorf("failed to store article %s: %w", cand.URL, err)
	}
	if inserted {
		report.Inserted++
		log.Info("article stored", "id", article.ID, "url", cand.URL, "leaning_label", label)
	} else {
		report.SkippedDuplicate++
	}
	return nil
}

// fetchBody retrieves the article page and extracts its body text.
func (c *Crawler) fetchBody(ctx context.Context, extractor *extract.Extractor, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return extractor.BodyText(resp.Body)
}
