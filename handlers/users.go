// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/newsbalance/auth"
	"github.com/danielhkuo/newsbalance/middleware"
	"github.com/danielhkuo/newsbalance/models"
	"github.com/danielhkuo/newsbalance/store"
)

type UserHandler struct {
	store store.Store
}

func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{store: st}
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, hash, req.PoliticalLeaning)
	if errors.Is(err, store.ErrAlreadyExists) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username already exists")
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register user: "+storeErrorDetail(err))
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	resp := models.RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	}
	if user.PoliticalLeaning != nil {
		resp.PoliticalLeaning = *user.PoliticalLeaning
	}
	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// Login handles POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.store.GetUserByUsername(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		// Same response as a bad password: error text must not reveal which
		// usernames exist.
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if err != nil {
		slog.Error("failed to look up user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Login failed: "+storeErrorDetail(err))
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Message:  "Welcome " + user.Username,
		Username: user.Username,
	})
}
