// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the news API.

# Handler Types

Each handler is a struct with an injected storage handle:

  - NewsHandler: article listing, recommendation, leaning balance
  - UserHandler: registration and login

Handlers are created via constructor functions that accept a store.Store:

	newsHandler := handlers.NewNewsHandler(st)

The store opens a fresh connection per call, so handlers share no mutable
state across requests; an error in one request never affects another.

# News Endpoints

	GET /news                      → List (summaries, newest first)
	GET /news/recommended?leaning=X → Recommended (substring match, limit 10)
	GET /news/balance?user_id=N     → Balance (global leaning histogram)

Recommended also accepts political_leaning= for older clients. An empty
pattern matches everything. Balance accepts user_id but ignores it — there is
no per-user read history yet, so the result is the global distribution;
callers must not assume personalization.

# User Endpoints

	POST /users/register → Register (400 on duplicate username)
	POST /users/login    → Login

Login failures return the same generic 401 message whether the username is
unknown or the password wrong, so responses cannot be used to enumerate
usernames.

# Failure Policy

A missing database file is a configuration error: every endpoint surfaces it
as a 500 whose message names the missing path. Other store errors become
generic 500s after the per-call connection has been released.
*/
package handlers
