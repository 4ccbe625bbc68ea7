// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/newsbalance/handlers"
	"github.com/danielhkuo/newsbalance/middleware"
	"github.com/danielhkuo/newsbalance/store"
)

func NewRouter(st store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	newsHandler := handlers.NewNewsHandler(st)
	userHandler := handlers.NewUserHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// User accounts
	mux.HandleFunc("POST /users/register", middleware.WithLogging(userHandler.Register))
	mux.HandleFunc("POST /users/login", middleware.WithLogging(userHandler.Login))

	// News retrieval
	mux.HandleFunc("GET /news", middleware.WithLogging(newsHandler.List))
	mux.HandleFunc("GET /news/recommended", middleware.WithLogging(newsHandler.Recommended))
	mux.HandleFunc("GET /news/balance", middleware.WithLogging(newsHandler.Balance))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{
			"message": "News API에 오신 것을 환영합니다. /news 로 접속하여 최신 뉴스를 확인하세요.",
		})
	})

	return mux
}
