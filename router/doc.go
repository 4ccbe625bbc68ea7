// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the news API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st)

# Endpoints

Health and root:

	GET /health
	GET /

User accounts:

	POST /users/register - Create account
	POST /users/login    - Verify credentials

News retrieval:

	GET /news                       - Article summaries, newest first
	GET /news/recommended?leaning=X - Articles matching a leaning substring
	GET /news/balance?user_id=N     - Leaning distribution histogram

# Handler Initialization

The router creates handler instances with dependency injection:

	newsHandler := handlers.NewNewsHandler(st)
	userHandler := handlers.NewUserHandler(st)

All handlers receive the storage handle; each request opens its own
database connection, so the router holds no connection state.
*/
package router
