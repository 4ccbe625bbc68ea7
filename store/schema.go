// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS news (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    url TEXT NOT NULL UNIQUE,
    content TEXT,
    summary TEXT,
    political_leaning TEXT,
    leaning_label TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_news_created_at ON news(created_at);
CREATE INDEX IF NOT EXISTS idx_news_leaning_label ON news(leaning_label);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE,
    password TEXT NOT NULL,
    political_leaning TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// newsColumnMigrations is the ordered list of additive migrations applied
// after table creation. Deployments that predate enrichment have a news table
// with only (id, title, url, created_at); each entry adds one nullable column
// when missing, preserving existing rows. Append-only: never reorder or edit
// a shipped entry.
var newsColumnMigrations = []struct {
	column string
	ddl    string
}{
	{"content", "ALTER TABLE news ADD COLUMN content TEXT"},
	{"summary", "ALTER TABLE news ADD COLUMN summary TEXT"},
	{"political_leaning", "ALTER TABLE news ADD COLUMN political_leaning TEXT"},
	{"leaning_label", "ALTER TABLE news ADD COLUMN leaning_label TEXT"},
}

// createSchema creates tables and applies additive column migrations.
// Safe to call on every process start.
func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	existing, err := tableColumns(db, "news")
	if err != nil {
		return err
	}
	for _, m := range newsColumnMigrations {
		if existing[m.column] {
			continue
		}
		if _, err := db.Exec(m.ddl); err != nil {
			return fmt.Errorf("failed to add news.%s: %w", m.column, err)
		}
	}
	return nil
}

// tableColumns returns the set of column names currently on the table.
func tableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect %s columns: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		cols[name] = true
	}
	return cols, rows.Err()
}
