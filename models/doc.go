// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: username, password, political_leaning
  - LoginRequest: username, password

# Response Types

Types for JSON responses:

  - RegisterResponse: id, username, political_leaning
  - LoginResponse: message, username
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Article: full article row including content and enrichment fields
  - ArticleSummary: list projection (no content/summary, smaller payloads)
  - User: credential record; the password hash is never serialized

# Leaning Normalization

Articles carry two leaning fields. PoliticalLeaning holds the raw classifier
output (free text, often Korean). LeaningLabel holds the normalized label
derived at insert time:

	label := models.NormalizeLeaning(rawText)

Labels:

	LeaningProgressive  = "progressive"
	LeaningModerate     = "moderate"
	LeaningConservative = "conservative"
	LeaningUnknown      = "unknown"

Normalization is a keyword rule over the raw text (진보 → progressive, 보수 →
conservative, 중도/중립 → moderate). Anything unmatched is "unknown".
*/
package models
