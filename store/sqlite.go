// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/newsbalance/models"
)

// SQLStore is the SQLite implementation of Store. It holds only the database
// path; every operation opens its own short-lived connection so the crawler
// and concurrent API requests never share a handle.
type SQLStore struct {
	path string
}

// New returns a store for the given SQLite file path. The file is not
// touched until Migrate or the first operation.
func New(path string) *SQLStore {
	return &SQLStore{path: path}
}

// Path returns the backing database file path.
func (s *SQLStore) Path() string {
	return s.path
}

// open performs the single connection-open of an operation. When mustExist is
// set and the file is absent it fails with ErrStoreMissing instead of letting
// the driver silently create an empty database.
func (s *SQLStore) open(mustExist bool) (*sql.DB, error) {
	if mustExist {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (run migrations or the crawler first)", ErrStoreMissing, s.path)
		}
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", s.path, err)
	}
	return db, nil
}

func (s *SQLStore) Migrate(ctx context.Context) error {
	db, err := s.open(false)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database %s: %w", s.path, err)
	}
	return createSchema(db)
}

func (s *SQLStore) InsertArticleIfAbsent(ctx context.Context, a *models.Article) (bool, error) {
	db, err := s.open(true)
	if err != nil {
		return false, err
	}
	defer db.Close()

	now := time.Now().UTC()
	res, err := db.ExecContext(ctx, `
		INSERT INTO news (title, url, content, summary, political_leaning, leaning_label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, a.Title, a.URL, a.Content, a.Summary, a.PoliticalLeaning, a.LeaningLabel, now.Format(time.RFC3339))
	if err != nil {
		if isUniqueConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert article: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("failed to read inserted article id: %w", err)
	}
	a.ID = id
	a.CreatedAt = now
	return true, nil
}

func (s *SQLStore) ListArticles(ctx context.Context) ([]models.ArticleSummary, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, title, url, political_leaning, leaning_label, created_at
		FROM news ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []models.ArticleSummary
	for rows.Next() {
		var (
			a         models.ArticleSummary
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.URL, &a.PoliticalLeaning, &a.LeaningLabel, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan article summary: %w", err)
		}
		a.CreatedAt = parseTimestamp(createdAt)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *SQLStore) ListArticlesByLeaning(ctx context.Context, pattern string, limit int) ([]models.Article, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	// Substring match against the raw classifier text, not the normalized
	// label. The classifier output is free text, so "progress" matches a row
	// stored as "이 기사는 진보적 성향입니다 (progressive)".
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, url, content, summary, political_leaning, leaning_label, created_at
		FROM news WHERE political_leaning LIKE ?
		ORDER BY created_at DESC, id DESC LIMIT ?
	`, "%"+pattern+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles by leaning: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var (
			a         models.Article
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.URL, &a.Content, &a.Summary, &a.PoliticalLeaning, &a.LeaningLabel, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.CreatedAt = parseTimestamp(createdAt)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *SQLStore) LeaningHistogram(ctx context.Context) (map[string]int, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT political_leaning, COUNT(*) FROM news GROUP BY political_leaning
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaning histogram: %w", err)
	}
	defer rows.Close()

	histogram := make(map[string]int)
	for rows.Next() {
		var (
			leaning sql.NullString
			count   int
		)
		if err := rows.Scan(&leaning, &count); err != nil {
			return nil, fmt.Errorf("failed to scan histogram row: %w", err)
		}
		key := models.LeaningUnknown
		if leaning.Valid {
			key = leaning.String
		}
		histogram[key] += count
	}
	return histogram, rows.Err()
}

func (s *SQLStore) CreateUser(ctx context.Context, username, passwordHash, leaning string) (*models.User, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	now := time.Now().UTC()
	var leaningVal *string
	if leaning != "" {
		leaningVal = &leaning
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO users (username, password, political_leaning, created_at)
		VALUES (?, ?, ?, ?)
	`, username, passwordHash, leaningVal, now.Format(time.RFC3339))
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted user id: %w", err)
	}
	return &models.User{
		ID:               id,
		Username:         username,
		PasswordHash:     passwordHash,
		PoliticalLeaning: leaningVal,
		CreatedAt:        now,
	}, nil
}

func (s *SQLStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	db, err := s.open(true)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var (
		u         models.User
		createdAt string
	)
	err = db.QueryRowContext(ctx, `
		SELECT id, username, password, political_leaning, created_at
		FROM users WHERE username = ?
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PoliticalLeaning, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	u.CreatedAt = parseTimestamp(createdAt)
	return &u, nil
}

// parseTimestamp handles both our RFC3339 writes and SQLite's
// CURRENT_TIMESTAMP format from rows created by older deployments.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}

// isUniqueConstraintError reports whether the error is a SQLite uniqueness
// violation (duplicate url or username).
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
