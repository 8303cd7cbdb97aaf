// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/election"
	"github.com/ewanross/seatswap/middleware"
	"github.com/ewanross/seatswap/models"
)

type ElectionsHandler struct {
	store election.Store
	cfg   cliparse.Config
}

func NewElectionsHandler(store election.Store, cfg cliparse.Config) *ElectionsHandler {
	return &ElectionsHandler{store: store, cfg: cfg}
}

// List handles GET /elections
func (h *ElectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.Elections(r.Context())
	if err != nil {
		slog.Error("failed to list elections", "error", err)
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

	middleware.JSONResponse(w, http.StatusOK, models.ElectionsResponse{
		Elections: elections,
	})
}

// Regions handles GET /elections/{name}/regions
func (h *ElectionsHandler) Regions(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election name is required")
		return
	}

	regions, err := h.store.Regions(r.Context(), name)
	if errors.Is(err, election.ErrElectionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if err != nil {
		slog.Error("failed to list regions", "election", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RegionsResponse{
		Election: name,
		Regions:  regions,
	})
}
