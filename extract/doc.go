// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package extract pulls article body text out of fetched HTML pages.

Each feed source configures a CSS selector for its article body container;
the default (#articleBody) matches Yonhap News TV pages:

	body, err := extract.New(source.Selector).BodyText(resp.Body)

BodyText returns the whitespace-collapsed text of the first matching element.
An empty string means the page has no extractable body; the crawler skips the
candidate and counts it, rather than storing an empty article.
*/
package extract
