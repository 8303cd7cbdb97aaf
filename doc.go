// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the seatswap server.

seatswap compares UK general election outcomes under First-Past-The-Post
with proportional alternatives (D'Hondt and Hare largest-remainder),
computed from the House of Commons Library's historical constituency
results. It serves a JSON API and a single self-contained results page.

# Starting the Server

Build the database once from the source workbook, then run:

	go run . -import 1918-2019election_results_by_pcon.xlsx
	go run .

# Configuration

Optional settings, via flags or environment (see package cliparse):

  - PORT (-p): Server port (default: 3414)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: elections.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - MAX_COALITION_SIZE (-max-coalition): default coalition size limit

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: seat allocation (FPTP, D'Hondt, largest remainder),
    seat differences, coalition search
  - db: read-only access to the imported results tables
  - importer: one-shot xlsx → database conversion
  - handlers: HTTP request handlers (elections, results, page)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - models: domain and response types
  - web: the embedded single-page UI
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
