// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP handlers for the seatswap API.

# Handlers

Each handler group takes its dependencies through a constructor:

  - ElectionsHandler: election list and region list
  - ResultsHandler: the FPTP/PR comparison endpoint
  - PageHandler: the embedded single-page UI

All handlers depend on election.Store, not the concrete db type, so tests
can substitute an in-memory store.

# Endpoints

	GET /elections                     election names and display names
	GET /elections/{name}/regions      distinct Country/Region values
	GET /elections/{name}/results      full FPTP vs PR comparison
	GET /                              the UI page

# Error Mapping

Sentinel errors from the election package map onto HTTP status codes:
ErrElectionNotFound → 404; ErrUnknownMethod, ErrUnknownScope and
ErrInvalidSeatCount → 400. Everything else is a 500 with the detail kept
in the server log.
*/
package handlers
