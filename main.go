// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

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
	"github.com/mattn/go-isatty"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/db"
	"github.com/ewanross/seatswap/importer"
	"github.com/ewanross/seatswap/middleware"
	"github.com/ewanross/seatswap/router"
)

func main() {
	setupLogging()

	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// One-shot import mode
	if cfg.ImportFile != "" {
		if err := importer.Run(cfg, cfg.ImportFile); err != nil {
			slog.Error("import failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Open the results database
	store, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Verify the import has been run
	elections, err := store.Elections(context.Background())
	if err != nil || len(elections) == 0 {
		slog.Error("no election data found; run with -import first", "error", err)
		os.Exit(1)
	}
	slog.Info("Election database ready", "elections", len(elections))

	// Create router
	mux := router.NewRouter(store, cfg)

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

// setupLogging picks a text handler on a terminal, JSON otherwise.
func setupLogging() {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))
}
