// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package cliparse handles configuration from CLI flags and environment variables.

# Precedence

CLI flags win over environment variables, which win over defaults:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Settings

	-p              PORT            server port (default 5000)
	-d              DATABASE_PATH   SQLite file path (default scores.db)
	-ttl            GAME_TTL_DAYS   days before inactive games are pruned (default 30)
	-session-secret SESSION_SECRET  cookie signing key (required, no default)

SESSION_SECRET has no default on purpose: the owner cookie is only as
trustworthy as this key, so the server refuses to start without one.

# Derived Values

Config.GameTTL converts GAME_TTL_DAYS into a time.Duration for the store's
pruning query.
*/
package cliparse
