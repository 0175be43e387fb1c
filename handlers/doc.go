// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package handlers contains HTTP request handlers for the chip counter API.

# Handler Type

PlayerHandler holds the store and config dependencies and is created via a
constructor:

	playerHandler := handlers.NewPlayerHandler(st, cfg)

# Request Lifecycle

Every handler starts with beginRequest, which mirrors what the service does
on each page load:

 1. Verify the session cookie, minting a fresh signed identity if needed.
 2. Prune games inactive longer than the configured TTL.
 3. Touch this game's last-seen timestamp.

Only then does the player operation run, always scoped to the request's
owner ID.

# Operations

	GET    /players                 → ListPlayers (insertion order)
	POST   /players                 → AddPlayer (score starts at 0)
	POST   /players/{id}/increment  → Increment ({"amount": n}, default 1)
	POST   /players/{id}/decrement  → Decrement (same body)
	DELETE /players/{id}            → RemovePlayer (hard delete, 204)
	POST   /reset                   → ResetScores (every score back to 0)

# Error Mapping

	store.ErrEmptyName     → 400
	store.ErrNotFound      → 404
	store.ErrDuplicateName → 409
	bad JSON / bad id      → 400
	anything else          → 500 (logged first)
*/
package handlers
