// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/newsbalance/models"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()

	st := New(filepath.Join(t.TempDir(), "news.db"))
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return st
}

func strPtr(s string) *string { return &s }

func insertArticle(t *testing.T, st *SQLStore, title, url, leaning string) models.Article {
	t.Helper()

	a := models.Article{Title: title, URL: url}
	if leaning != "" {
		label := models.NormalizeLeaning(leaning)
		a.PoliticalLeaning = &leaning
		a.LeaningLabel = &label
	}
	inserted, err := st.InsertArticleIfAbsent(context.Background(), &a)
	if err != nil {
		t.Fatalf("InsertArticleIfAbsent(%s) error = %v", url, err)
	}
	if !inserted {
		t.Fatalf("InsertArticleIfAbsent(%s) reported duplicate on first insert", url)
	}
	return a
}

func TestMigrateIdempotent(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "news.db"))

	// Safe to run on every process start, indefinitely.
	for i := 0; i < 3; i++ {
		if err := st.Migrate(context.Background()); err != nil {
			t.Fatalf("Migrate() run %d error = %v", i+1, err)
		}
	}

	insertArticle(t, st, "기사", "https://news.example.com/1", "진보")
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() after insert error = %v", err)
	}

	articles, err := st.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 1 {
		t.Errorf("re-migration lost rows: got %d articles, want 1", len(articles))
	}
}

func TestMigrateAddsMissingColumns(t *testing.T) {
	// Simulate a deployment that predates enrichment: a news table with only
	// the original columns and one existing row.
	path := filepath.Join(t.TempDir(), "news.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE news (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			url TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO news (title, url) VALUES ('옛날 기사', 'https://news.example.com/old');
	`)
	db.Close()
	if err != nil {
		t.Fatalf("create legacy table: %v", err)
	}

	st := New(path)
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	// Old row preserved, new columns present and NULL.
	articles, err := st.ListArticlesByLeaning(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("ListArticlesByLeaning() error = %v", err)
	}
	// NULL leanings never LIKE-match; the row is reachable via ListArticles.
	if len(articles) != 0 {
		t.Errorf("expected no classified articles, got %d", len(articles))
	}

	summaries, err := st.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(summaries) != 1 || summaries[0].URL != "https://news.example.com/old" {
		t.Fatalf("legacy row lost: %+v", summaries)
	}
	if summaries[0].PoliticalLeaning != nil {
		t.Errorf("migrated column should be NULL, got %q", *summaries[0].PoliticalLeaning)
	}

	// New columns must be writable.
	a := models.Article{
		Title:            "새 기사",
		URL:              "https://news.example.com/new",
		Content:          strPtr("본문"),
		Summary:          strPtr("요약"),
		PoliticalLeaning: strPtr("중도"),
		LeaningLabel:     strPtr(models.LeaningModerate),
	}
	if _, err := st.InsertArticleIfAbsent(context.Background(), &a); err != nil {
		t.Fatalf("insert after migration error = %v", err)
	}
}

func TestInsertArticleIfAbsent(t *testing.T) {
	st := newTestStore(t)

	a := insertArticle(t, st, "기사", "https://news.example.com/1", "진보적 성향")
	if a.ID == 0 {
		t.Error("expected populated article ID")
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected populated CreatedAt")
	}

	// Re-inserting the same URL is a skip, not an error, and must not
	// overwrite prior enrichment.
	dup := models.Article{
		Title:            "다른 제목",
		URL:              "https://news.example.com/1",
		PoliticalLeaning: strPtr("보수"),
		LeaningLabel:     strPtr(models.LeaningConservative),
	}
	inserted, err := st.InsertArticleIfAbsent(context.Background(), &dup)
	if err != nil {
		t.Fatalf("duplicate insert error = %v", err)
	}
	if inserted {
		t.Error("duplicate URL reported as inserted")
	}

	articles, err := st.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("row count grew on duplicate insert: %d", len(articles))
	}
	if articles[0].Title != "기사" {
		t.Errorf("duplicate insert overwrote title: %q", articles[0].Title)
	}
	if articles[0].PoliticalLeaning == nil || *articles[0].PoliticalLeaning != "진보적 성향" {
		t.Errorf("duplicate insert overwrote enrichment: %v", articles[0].PoliticalLeaning)
	}
}

func TestListArticlesOrder(t *testing.T) {
	st := newTestStore(t)

	insertArticle(t, st, "first", "https://news.example.com/1", "")
	insertArticle(t, st, "second", "https://news.example.com/2", "")
	insertArticle(t, st, "third", "https://news.example.com/3", "")

	articles, err := st.ListArticles(context.Background())
	if err != nil {
		t.Fatalf("ListArticles() error = %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("got %d articles, want 3", len(articles))
	}

	// Newest first.
	wantTitles := []string{"third", "second", "first"}
	for i, want := range wantTitles {
		if articles[i].Title != want {
			t.Errorf("articles[%d].Title = %q, want %q", i, articles[i].Title, want)
		}
	}
}

func TestListArticlesByLeaning(t *testing.T) {
	st := newTestStore(t)

	insertArticle(t, st, "진보 기사", "https://news.example.com/1", "이 기사는 진보적 성향입니다 (progressive)")
	insertArticle(t, st, "보수 기사", "https://news.example.com/2", "보수적인 논조입니다")
	insertArticle(t, st, "미분류", "https://news.example.com/3", "")

	tests := []struct {
		name     string
		pattern  string
		wantURLs []string
	}{
		{"korean substring", "진보", []string{"https://news.example.com/1"}},
		{"english substring of mixed text", "progress", []string{"https://news.example.com/1"}},
		{"empty pattern matches classified rows", "", []string{"https://news.example.com/2", "https://news.example.com/1"}},
		{"no match", "중도", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			articles, err := st.ListArticlesByLeaning(context.Background(), tt.pattern, 10)
			if err != nil {
				t.Fatalf("ListArticlesByLeaning(%q) error = %v", tt.pattern, err)
			}
			if len(articles) != len(tt.wantURLs) {
				t.Fatalf("got %d articles, want %d", len(articles), len(tt.wantURLs))
			}
			for i, url := range tt.wantURLs {
				if articles[i].URL != url {
					t.Errorf("articles[%d].URL = %q, want %q", i, articles[i].URL, url)
				}
			}
		})
	}
}

func TestListArticlesByLeaningLimit(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 15; i++ {
		insertArticle(t, st,
			"기사", // titles may repeat; urls are the key
			fmt.Sprintf("https://news.example.com/%d", i),
			"진보")
	}

	articles, err := st.ListArticlesByLeaning(context.Background(), "진보", 0)
	if err != nil {
		t.Fatalf("ListArticlesByLeaning() error = %v", err)
	}
	if len(articles) != DefaultRecommendLimit {
		t.Errorf("got %d articles, want default limit %d", len(articles), DefaultRecommendLimit)
	}
}

func TestLeaningHistogram(t *testing.T) {
	st := newTestStore(t)

	insertArticle(t, st, "a", "https://news.example.com/1", "progressive")
	insertArticle(t, st, "b", "https://news.example.com/2", "progressive")
	insertArticle(t, st, "c", "https://news.example.com/3", "conservative")
	insertArticle(t, st, "d", "https://news.example.com/4", "")

	histogram, err := st.LeaningHistogram(context.Background())
	if err != nil {
		t.Fatalf("LeaningHistogram() error = %v", err)
	}

	want := map[string]int{"progressive": 2, "conservative": 1, "unknown": 1}
	if len(histogram) != len(want) {
		t.Fatalf("histogram = %v, want %v", histogram, want)
	}
	for k, v := range want {
		if histogram[k] != v {
			t.Errorf("histogram[%q] = %d, want %d", k, histogram[k], v)
		}
	}
}

func TestUsers(t *testing.T) {
	st := newTestStore(t)

	user, err := st.CreateUser(context.Background(), "alice", "$2a$10$fakehash", "moderate")
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if user.ID == 0 || user.Username != "alice" {
		t.Errorf("unexpected created user: %+v", user)
	}

	// Duplicate username.
	if _, err := st.CreateUser(context.Background(), "alice", "$2a$10$otherhash", ""); !errors.Is(err, ErrAlreadyExists) {
		t.Errorf("duplicate CreateUser() error = %v, want ErrAlreadyExists", err)
	}

	got, err := st.GetUserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if got.PasswordHash != "$2a$10$fakehash" {
		t.Errorf("stored hash = %q, want original (no overwrite on duplicate)", got.PasswordHash)
	}
	if got.PoliticalLeaning == nil || *got.PoliticalLeaning != "moderate" {
		t.Errorf("stored leaning = %v, want moderate", got.PoliticalLeaning)
	}

	if _, err := st.GetUserByUsername(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUserByUsername(nobody) error = %v, want ErrNotFound", err)
	}
}

func TestMissingStoreFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")
	st := New(path)

	ctx := context.Background()
	checks := []struct {
		name string
		call func() error
	}{
		{"ListArticles", func() error { _, err := st.ListArticles(ctx); return err }},
		{"ListArticlesByLeaning", func() error { _, err := st.ListArticlesByLeaning(ctx, "x", 10); return err }},
		{"LeaningHistogram", func() error { _, err := st.LeaningHistogram(ctx); return err }},
		{"InsertArticleIfAbsent", func() error {
			_, err := st.InsertArticleIfAbsent(ctx, &models.Article{Title: "t", URL: "u"})
			return err
		}},
		{"CreateUser", func() error { _, err := st.CreateUser(ctx, "alice", "hash", ""); return err }},
		{"GetUserByUsername", func() error { _, err := st.GetUserByUsername(ctx, "alice"); return err }},
	}

	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			err := c.call()
			if !errors.Is(err, ErrStoreMissing) {
				t.Fatalf("error = %v, want ErrStoreMissing", err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name the missing path", err)
			}
		})
	}

	// Only Migrate may create the file.
	if err := st.Migrate(ctx); err != nil {
		t.Fatalf("Migrate() on fresh path error = %v", err)
	}
	if _, err := st.ListArticles(ctx); err != nil {
		t.Errorf("ListArticles() after Migrate error = %v", err)
	}
}
