// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package enrich

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by the Disabled enricher for every call.
var ErrNotConfigured = errors.New("gemini api key not configured")

// Enricher produces the summary and political-leaning classification for an
// article body. Implementations return errors rather than in-band text; the
// crawler decides how failures appear in stored rows.
type Enricher interface {
	Summarize(ctx context.Context, text string) (string, error)
	ClassifyLeaning(ctx context.Context, text string) (string, error)
}

// Disabled is the enricher used when no API key is configured. Every call
// fails with ErrNotConfigured, so articles are still stored with in-band
// failure text instead of aborting the run.
type Disabled struct{}

func (Disabled) Summarize(ctx context.Context, text string) (string, error) {
	return "", ErrNotConfigured
}

func (Disabled) ClassifyLeaning(ctx context.Context, text string) (string, error) {
	return "", ErrNotConfigured
}
