// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package store implements the SQLite-backed score store.

# Operations

	st := store.New(conn)

	player, err := st.AddPlayer(ctx, owner, "Alice")   // score starts at 0
	player, err = st.Increment(ctx, owner, player.ID, 5)
	player, err = st.Decrement(ctx, owner, player.ID, 2)
	err = st.ResetAll(ctx, owner)                      // every score back to 0
	err = st.RemovePlayer(ctx, owner, player.ID)       // hard delete
	players, err := st.ListPlayers(ctx, owner)         // insertion order

Session bookkeeping:

	err = st.TouchSession(ctx, owner)            // mark game active
	err = st.PruneExpired(ctx, cfg.GameTTL())    // drop stale games

# Errors

	ErrEmptyName     - AddPlayer with a blank name
	ErrDuplicateName - AddPlayer with a name already used in this game
	ErrNotFound      - Increment/Decrement/RemovePlayer on a missing id

These are user-input errors surfaced directly to the caller; nothing here
retries.

# Durability

Every mutating operation runs inside its own transaction and commits before
returning, so a process restart observes the latest state. PruneExpired
deletes player rows and session rows atomically for the same cutoff.
*/
package store
