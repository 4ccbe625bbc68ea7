// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/newsbalance/middleware"
	"github.com/danielhkuo/newsbalance/models"
	"github.com/danielhkuo/newsbalance/store"
)

type NewsHandler struct {
	store store.Store
}

func NewNewsHandler(st store.Store) *NewsHandler {
	return &NewsHandler{store: st}
}

// List handles GET /news
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.store.ListArticles(r.Context())
	if err != nil {
		slog.Error("failed to list articles", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load news: "+storeErrorDetail(err))
		return
	}
	if articles == nil {
		articles = []models.ArticleSummary{}
	}
	middleware.JSONResponse(w, http.StatusOK, articles)
}

// Recommended handles GET /news/recommended?leaning=X
func (h *NewsHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	// The original frontend sends political_leaning; accept both.
	pattern := r.URL.Query().Get("leaning")
	if pattern == "" {
		pattern = r.URL.Query().Get("political_leaning")
	}

	// An empty pattern matches every classified article. Documented edge
	// case, not validated away.
	articles, err := h.store.ListArticlesByLeaning(r.Context(), pattern, store.DefaultRecommendLimit)
	if err != nil {
		slog.Error("failed to query recommended articles", "error", err, "pattern", pattern)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load recommendations: "+storeErrorDetail(err))
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}
	middleware.JSONResponse(w, http.StatusOK, articles)
}

// Balance handles GET /news/balance?user_id=N
//
// user_id is accepted but ignored: no per-user read history exists yet, so
// the response is the global leaning distribution, not a personalized one.
func (h *NewsHandler) Balance(w http.ResponseWriter, r *http.Request) {
	_ = r.URL.Query().Get("user_id")

	histogram, err := h.store.LeaningHistogram(r.Context())
	if err != nil {
		slog.Error("failed to compute leaning histogram", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load balance: "+storeErrorDetail(err))
		return
	}
	middleware.JSONResponse(w, http.StatusOK, histogram)
}

// storeErrorDetail keeps ErrStoreMissing detail (the missing path) visible to
// the caller while hiding other internals. A missing database file is a
// configuration error on every request path, and the explanatory message is
// the fix ("run migrations or the crawler first").
func storeErrorDetail(err error) string {
	if errors.Is(err, store.ErrStoreMissing) {
		return err.Error()
	}
	return "database error"
}
