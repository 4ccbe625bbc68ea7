// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the news API server.

The server exposes a small news-reading backend: article listings fed by the
crawler, leaning-based recommendations, a leaning-distribution histogram, and
user registration and login.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	NEWS_DB_PATH=news.db go run ./cmd/server

Or with flags:

	go run ./cmd/server -p 8000 -d news.db

# Configuration

Required settings:

  - NEWS_DB_PATH (-d): SQLite database file path

Optional settings:

  - PORT (-p): Server port (default: 8000)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (news, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Password hashing
  - store: SQLite storage, migrations
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
