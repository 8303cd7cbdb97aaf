// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps a handler and logs request start and completion with a
shared request ID and the elapsed time:

	mux.HandleFunc("GET /elections", middleware.WithLogging(handler.List))

# JSON Helpers

JSONResponse and ErrorResponse write JSON payloads with the right
Content-Type; ErrorResponse wraps the message in models.ErrorResponse.

# CORS

CORS wraps the whole mux and reflects the request origin, so the JSON API
stays usable from pages hosted elsewhere. All endpoints are read-only GETs.
*/
package middleware
