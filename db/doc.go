// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package db handles SQLite connection setup and schema creation.

# Opening

Open returns a verified *sql.DB for the given file path:

	conn, err := db.Open(cfg.DatabasePath)

The DSN enables WAL journaling, foreign keys, a 5s busy timeout, and normal
synchronous mode.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - players: one row per tracked participant (id, owner_id, name, score)
  - owner_sessions: last activity timestamp per game, drives TTL pruning

players carries UNIQUE(owner_id, name): a game cannot hold two players with
the same name, but different games can. Scores are unbounded signed integers.
*/
package db
