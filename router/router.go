// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/election"
	"github.com/ewanross/seatswap/handlers"
	"github.com/ewanross/seatswap/middleware"
)

func NewRouter(store election.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionsHandler := handlers.NewElectionsHandler(store, cfg)
	resultsHandler := handlers.NewResultsHandler(store, cfg)
	pageHandler := handlers.NewPageHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election data
	mux.HandleFunc("GET /elections", middleware.WithLogging(electionsHandler.List))
	mux.HandleFunc("GET /elections/{name}/regions", middleware.WithLogging(electionsHandler.Regions))
	mux.HandleFunc("GET /elections/{name}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Single-page UI
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))

	return mux
}
