// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/ewanross/seatswap/cliparse"
	"github.com/ewanross/seatswap/election"
	"github.com/ewanross/seatswap/middleware"
	"github.com/ewanross/seatswap/models"
)

type ResultsHandler struct {
	store election.Store
	cfg   cliparse.Config
}

func NewResultsHandler(store election.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: store, cfg: cfg}
}

// GetResults handles GET /elections/{name}/results
//
// Query parameters, all optional:
//
//	method       dhondt | largest-remainder (default dhondt)
//	scope        region | national (default region)
//	ignore_other true | false (default true)
//	max_coalition  maximum parties per coalition (default from config)
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election name is required")
		return
	}

	opts, err := h.parseOptions(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := election.Compare(r.Context(), h.store, name, opts)
	if errors.Is(err, election.ErrElectionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Election not found")
		return
	}
	if errors.Is(err, election.ErrUnknownMethod) ||
		errors.Is(err, election.ErrUnknownScope) ||
		errors.Is(err, election.ErrInvalidSeatCount) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to compute results", "election", name, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	slog.Info("results computed",
		"election", name,
		"method", opts.Method,
		"scope", opts.Scope,
		"seats", results.TotalSeats,
		"votes", humanize.Comma(results.TotalVotes))

	middleware.JSONResponse(w, http.StatusOK, results)
}

// parseOptions reads the comparison options from the query string and
// fills in the defaults.
func (h *ResultsHandler) parseOptions(r *http.Request) (election.CompareOptions, error) {
	opts := election.CompareOptions{
		Method:       models.MethodDHondt,
		Scope:        models.ScopeRegion,
		IgnoreOther:  true,
		MaxCoalition: h.cfg.MaxCoalitionSize,
	}

	q := r.URL.Query()
	if method := q.Get("method"); method != "" {
		opts.Method = method
	}
	if scope := q.Get("scope"); scope != "" {
		opts.Scope = scope
	}
	if raw := q.Get("ignore_other"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, errors.New("ignore_other must be true or false")
		}
		opts.IgnoreOther = v
	}
	if raw := q.Get("max_coalition"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return opts, errors.New("max_coalition must be a positive integer")
		}
		opts.MaxCoalition = v
	}

	return opts, nil
}
