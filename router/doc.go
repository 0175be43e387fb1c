// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package router defines HTTP routes for the chip counter API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Player operations (all scoped to the session cookie's game):

	GET    /players                - List players in insertion order
	POST   /players                - Add a player with score 0
	POST   /players/{id}/increment - Raise a score
	POST   /players/{id}/decrement - Lower a score
	DELETE /players/{id}           - Remove a player
	POST   /reset                  - Zero every score in the game

All player routes are wrapped in middleware.WithLogging. There is no
per-route auth: identity is the signed session cookie, handled inside the
handlers.
*/
package router
