// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/election"
	"github.com/ewanross/seatswap/middleware"
	"github.com/ewanross/seatswap/models"
	"github.com/ewanross/seatswap/web"
)

type PageHandler struct {
	store election.Store
	cfg   cliparse.Config
}

func NewPageHandler(store election.Store, cfg cliparse.Config) *PageHandler {
	return &PageHandler{store: store, cfg: cfg}
}

// Home handles GET /
// Serves the single-page UI with the election selector pre-populated; the
// page fetches everything else from the JSON API.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.Elections(r.Context())
	if err != nil {
		slog.Error("failed to list elections for page", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	elections := make([]models.ElectionInfo, len(names))
	for i, name := range names {
		elections[i] = models.ElectionInfo{
			Name:        name,
			DisplayName: models.DisplayName(name),
		}
	}

	// most recent election is the default selection
	defaultElection := ""
	if len(names) > 0 {
		defaultElection = names[len(names)-1]
	}

	data := web.PageData{
		Elections:       elections,
		DefaultElection: defaultElection,
		MaxCoalition:    h.cfg.MaxCoalitionSize,
		Colours:         web.ColoursJSON(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.Page.Execute(w, data); err != nil {
		slog.Error("failed to render page", "error", err)
	}
}
