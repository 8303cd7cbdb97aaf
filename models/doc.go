// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and API types shared across the server.

# Domain Types

  - Allocation: ordered party → seat mapping produced by the election package
  - PartySeats: one allocation row
  - SeatDelta: per-party seat difference between two allocations

# Constants

Allocation methods (MethodDHondt, MethodLargestRemainder) and scopes
(ScopeNational, ScopeRegion) name the supported PR configurations. The
strings double as the values of the method/scope query parameters.

# Response Types

Each GET endpoint has a corresponding response struct:

  - ElectionsResponse: GET /elections
  - RegionsResponse: GET /elections/{name}/regions
  - ResultsResponse: GET /elections/{name}/results
  - ErrorResponse: all error payloads

# Display Names

DisplayName converts the source data's election identifiers into readable
titles. This only affects the two 1974 elections ("1974F", "1974O").
*/
package models
