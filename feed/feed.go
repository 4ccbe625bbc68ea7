// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Candidate is a feed entry worth crawling: a title and the article URL.
type Candidate struct {
	Title string
	URL   string
}

// Fetcher fetches and parses one RSS feed into candidates.
type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Fetch retrieves the feed document and parses its entries. A transport
// failure or non-success status fails the whole call; the run then proceeds
// with zero candidates from this feed. Entries missing a title or link are
// discarded silently.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Candidate, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("feed unavailable: %w", err)
	}

	candidates := make([]Candidate, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.Link)
		if title == "" || link == "" {
			continue
		}
		candidates = append(candidates, Candidate{Title: title, URL: link})
	}
	return candidates, nil
}
