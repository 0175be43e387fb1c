// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package main provides the entry point for the Blackjack Chip Counter API server.

Blackjack Chip Counter is a small score-tracking service: each browser session
owns a private game of players, and every player carries a running chip score
that can be raised, lowered, or reset. State lives in a single local SQLite
file so a restart picks up exactly where the last process left off.

# Starting the Server

The server reads configuration from environment variables or CLI flags:

	SESSION_SECRET=... go run main.go

Or with flags:

	go run main.go -p 5000 -d scores.db

A .env file in the working directory is loaded first, if present.

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): key for signing owner session cookies

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_PATH (-d): SQLite file path (default: scores.db)
  - GAME_TTL_DAYS (-ttl): days before an inactive game is pruned (default: 30)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers for player operations
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, CORS
  - models: request/response types
  - store: SQLite-backed score store
  - session: owner identity cookies
  - db: connection and schema setup
  - cliparse: configuration parsing
  - counter: standalone click-counter widget (not wired to the server)

See package documentation for each component.
*/
package main
