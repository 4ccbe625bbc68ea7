package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/newsbalance/cliparse"
	"github.com/danielhkuo/newsbalance/middleware"
	"github.com/danielhkuo/newsbalance/router"
	"github.com/danielhkuo/newsbalance/store"
)

func main() {
	var err error

	// Load .env if present; real env variables win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Prepare storage. Migrate creates the database file and applies any
	// pending column additions; it is the only operation allowed to do so.
	st := store.New(cfg.DatabasePath)
	if err := st.Migrate(context.Background()); err != nil {
		slog.Error("database migration failed", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "path", cfg.DatabasePath)

	// Create router; CORS wraps the whole mux so preflights are answered
	// for every route
	mux := router.NewRouter(st)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
