// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_sources.yaml
var defaultSourcesYAML []byte

// Source is one RSS feed to crawl. Selector is the CSS selector for the
// article body container on that publisher's pages.
type Source struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Selector string `yaml:"selector"`
	Enabled  bool   `yaml:"enabled"`
}

// Sources is the crawler's feed configuration.
type Sources struct {
	Sources []Source `yaml:"sources"`
}

// Enabled returns the sources that should be crawled.
func (s *Sources) Enabled() []Source {
	var out []Source
	for _, src := range s.Sources {
		if src.Enabled {
			out = append(out, src)
		}
	}
	return out
}

// LoadSources reads the feed-source list from path. An empty path loads the
// embedded default (the Yonhap News TV feed).
func LoadSources(path string) (*Sources, error) {
	data := defaultSourcesYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read sources file: %w", err)
		}
	}

	var s Sources
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	for i, src := range s.Sources {
		if src.Name == "" || src.URL == "" {
			return nil, fmt.Errorf("source %d: name and url are required", i)
		}
	}
	return &s, nil
}
