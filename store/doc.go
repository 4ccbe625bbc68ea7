// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the SQLite article and user tables.

# Storage Handle

Store is an injected handle rather than a shared connection:

	st := store.New("/var/lib/newsbalance/news.db")
	if err := st.Migrate(ctx); err != nil { ... }

Every operation opens and closes its own connection, so the crawler can run
while the API serves logins; the only contention point is SQLite's own
locking. Migrate is the one method allowed to create the database file. Every
other method returns an error wrapping ErrStoreMissing (naming the path) when
the file is absent, which handlers surface as a server error.

# Schema and Migrations

Migrate creates the news and users tables with IF NOT EXISTS, then walks an
explicit, ordered list of additive column migrations (content, summary,
political_leaning, leaning_label), adding each column only when PRAGMA
table_info shows it missing. Existing rows are preserved and the whole
sequence is safe to re-run indefinitely. The list is append-only.

# Article Dedup

The article URL is the natural key:

	inserted, err := st.InsertArticleIfAbsent(ctx, &article)

A UNIQUE violation on url reports inserted == false with a nil error; the
existing row (including prior enrichment) is left untouched. Re-running the
crawler against an unchanged feed is therefore a no-op.

# Queries

  - ListArticles: summaries only, created_at DESC
  - ListArticlesByLeaning: full rows, substring LIKE against the raw
    classifier text, default limit 10; empty pattern matches everything
  - LeaningHistogram: counts per raw leaning value, NULL bucketed as "unknown"

# Errors

Sentinels for callers to branch on:

	store.ErrNotFound      - lookup matched no row
	store.ErrAlreadyExists - duplicate username
	store.ErrStoreMissing  - database file absent
*/
package store
