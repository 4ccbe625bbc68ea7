// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultSelector matches the article body container used by Yonhap News TV
// article pages.
const DefaultSelector = "#articleBody"

// Extractor pulls the article body text out of a fetched HTML page using a
// per-source CSS selector.
type Extractor struct {
	selector string
}

func New(selector string) *Extractor {
	if selector == "" {
		selector = DefaultSelector
	}
	return &Extractor{selector: selector}
}

// BodyText returns the trimmed text of the first element matching the
// selector. An empty result means the page has no extractable body and the
// candidate should be skipped.
func (e *Extractor) BodyText(html io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return "", fmt.Errorf("failed to parse article page: %w", err)
	}

	text := doc.Find(e.selector).First().Text()
	// Collapse runs of whitespace left behind by nested markup.
	return strings.Join(strings.Fields(text), " "), nil
}
