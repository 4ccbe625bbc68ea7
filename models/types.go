package models

import "time"

// Normalized leaning labels
const (
	LeaningProgressive  = "progressive"
	LeaningModerate     = "moderate"
	LeaningConservative = "conservative"
	LeaningUnknown      = "unknown"
)

// Request types

type RegisterRequest struct {
	Username         string `json:"username"`
	Password         string `json:"password"`
	PoliticalLeaning string `json:"political_leaning"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response types

type RegisterResponse struct {
	ID               int64  `json:"id"`
	Username         string `json:"username"`
	PoliticalLeaning string `json:"political_leaning,omitempty"`
}

type LoginResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Domain types

type Article struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	Content          *string   `json:"content,omitempty"`
	Summary          *string   `json:"summary,omitempty"`
	PoliticalLeaning *string   `json:"political_leaning,omitempty"`
	LeaningLabel     *string   `json:"leaning_label,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ArticleSummary is the list-endpoint projection of an article.
// Content and summary are excluded to keep list payloads small.
type ArticleSummary struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	URL              string    `json:"url"`
	PoliticalLeaning *string   `json:"political_leaning,omitempty"`
	LeaningLabel     *string   `json:"leaning_label,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type User struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"-"` // Never expose in JSON
	PoliticalLeaning *string   `json:"political_leaning,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
