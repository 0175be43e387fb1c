// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package middleware provides HTTP middleware and JSON helpers.

# Logging

WithLogging wraps a handler and logs start/completion with method, path, and
duration via log/slog:

	mux.HandleFunc("GET /players", middleware.WithLogging(handler.ListPlayers))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse produces the standard error body:

	{"error": "Not Found", "message": "Player not found"}

# CORS

CORS wraps the whole mux so the separately served frontend can call the API
with credentials (the session cookie). Preflight OPTIONS requests are answered
directly.
*/
package middleware
