// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>테스트 뉴스</title>
    <item>
      <title>첫 번째 기사</title>
      <link>https://news.example.com/articles/1</link>
    </item>
    <item>
      <title>두 번째 기사</title>
      <link>https://news.example.com/articles/2</link>
    </item>
    <item>
      <title></title>
      <link>https://news.example.com/articles/no-title</link>
    </item>
    <item>
      <title>링크 없는 기사</title>
      <link></link>
    </item>
  </channel>
</rss>`

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeedXML))
	}))
	defer srv.Close()

	candidates, err := NewFetcher().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	// Entries missing title or link are discarded silently.
	if len(candidates) != 2 {
		t.Fatalf("Fetch() returned %d candidates, want 2", len(candidates))
	}
	if candidates[0].Title != "첫 번째 기사" || candidates[0].URL != "https://news.example.com/articles/1" {
		t.Errorf("unexpected first candidate: %+v", candidates[0])
	}
	if candidates[1].Title != "두 번째 기사" {
		t.Errorf("unexpected second candidate: %+v", candidates[1])
	}
}

func TestFetchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewFetcher().Fetch(context.Background(), srv.URL); err == nil {
		t.Error("Fetch() expected error for non-success status, got nil")
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewFetcher().Fetch(context.Background(), url); err == nil {
		t.Error("Fetch() expected error for unreachable server, got nil")
	}
}
