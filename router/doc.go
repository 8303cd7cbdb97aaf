// Copyright (c) 2025 Ewan Ross.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

NewRouter wires the handlers to their paths and wraps each data endpoint
with request logging:

	mux := router.NewRouter(store, cfg)
	http.ListenAndServe(addr, middleware.CORS(mux))

The route table is the one place paths are declared; handlers read their
path parameters with r.PathValue.
*/
package router
