// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/newsbalance/auth"
	"github.com/danielhkuo/newsbalance/models"
	"github.com/danielhkuo/newsbalance/store"
)

// SetupTestStore creates a migrated SQLite store on a fresh temp file.
// The file is removed with the test's temp directory.
func SetupTestStore(t *testing.T) *store.SQLStore {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), "news.db"))
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test store: %v", err)
	}
	return st
}

// SeedArticle inserts an article with the given raw leaning text. Pass an
// empty leaning to store a NULL (unclassified) row.
func SeedArticle(t *testing.T, st store.Store, title, url, leaning string) models.Article {
	t.Helper()

	a := models.Article{Title: title, URL: url}
	if leaning != "" {
		label := models.NormalizeLeaning(leaning)
		a.PoliticalLeaning = &leaning
		a.LeaningLabel = &label
	}

	inserted, err := st.InsertArticleIfAbsent(context.Background(), &a)
	if err != nil {
		t.Fatalf("Failed to seed article %s: %v", url, err)
	}
	if !inserted {
		t.Fatalf("Seed article %s was a duplicate", url)
	}
	return a
}

// SeedUser registers a user with a real bcrypt hash so login tests exercise
// the full verification path.
func SeedUser(t *testing.T, st store.Store, username, password, leaning string) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash seed password: %v", err)
	}
	user, err := st.CreateUser(context.Background(), username, hash, leaning)
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
	return user
}

// DoJSON performs a request against the handler with a JSON body and returns
// the recorder.
func DoJSON(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

// DecodeJSON unmarshals a recorded response body.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}
