// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package feed fetches RSS feeds and extracts crawl candidates.

# Fetching

Fetcher wraps a gofeed parser:

	candidates, err := feed.NewFetcher().Fetch(ctx, source.URL)

A transport failure or non-success HTTP status fails the call; the crawler
logs it and continues with zero candidates from that feed, never crashing the
run.

# Candidates

Each feed item yields a Candidate{Title, URL}. Items missing either field are
discarded silently; everything else about the entry (description, publish
date) is ignored, since the article body is fetched separately.
*/
package feed
