// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/newsbalance/models"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when an insert violates a uniqueness
	// constraint that the caller treats as a client error (usernames).
	ErrAlreadyExists = errors.New("already exists")

	// ErrStoreMissing is returned when the backing database file does not
	// exist. Errors wrapping it include the missing path.
	ErrStoreMissing = errors.New("store file missing")
)

// Store is the storage handle shared by the crawler and the API handlers.
// Every method performs exactly one connection open/close cycle against the
// SQLite file, so concurrent crawls and logins only contend inside SQLite
// itself. Migrate is the only method allowed to create the file; all other
// methods fail with ErrStoreMissing when it is absent.
type Store interface {
	// Migrate creates the news and users tables if absent, then applies the
	// additive column migrations. Idempotent; never drops existing data.
	Migrate(ctx context.Context) error

	// InsertArticleIfAbsent inserts the article unless its URL already
	// exists. Returns (false, nil) on a duplicate URL; prior enrichment is
	// never overwritten. On success the article's ID and CreatedAt are
	// populated.
	InsertArticleIfAbsent(ctx context.Context, a *models.Article) (bool, error)

	// ListArticles returns all article summaries, newest first.
	ListArticles(ctx context.Context) ([]models.ArticleSummary, error)

	// ListArticlesByLeaning returns full articles whose raw political_leaning
	// text contains pattern as a substring, newest first. An empty pattern
	// matches every classified article. limit <= 0 uses DefaultRecommendLimit.
	ListArticlesByLeaning(ctx context.Context, pattern string, limit int) ([]models.Article, error)

	// LeaningHistogram counts articles per stored raw leaning value.
	// Unclassified (NULL) articles bucket under "unknown".
	LeaningHistogram(ctx context.Context) (map[string]int, error)

	// CreateUser persists a new user with an already-hashed password.
	// Returns ErrAlreadyExists if the username is taken; no partial write.
	CreateUser(ctx context.Context, username, passwordHash, leaning string) (*models.User, error)

	// GetUserByUsername returns the stored user record including the
	// password hash, or ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// DefaultRecommendLimit caps recommendation queries when the caller does not
// supply a limit.
const DefaultRecommendLimit = 10
