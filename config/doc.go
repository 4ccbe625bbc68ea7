// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package config loads the crawler's feed-source list from YAML.

# Sources File

	sources:
	  - name: yonhapnewstv
	    url: "http://www.yonhapnewstv.co.kr/browse/feed/"
	    selector: "#articleBody"
	    enabled: true

Each source pairs an RSS URL with the CSS selector for that publisher's
article body container. Disabled sources stay in the file but are skipped.

# Loading

	sources, err := config.LoadSources(cfg.SourcesPath)

An empty path falls back to the embedded default (the Yonhap News TV feed).
Name and url are required for every listed source.
*/
package config
