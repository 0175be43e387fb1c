// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AddPlayerRequest: name
  - AdjustScoreRequest: amount (optional, defaults to 1)

# Response Types

Types for JSON responses:

  - Player: id, name, score
  - ListPlayersResponse: players
  - ResetResponse: message
  - ErrorResponse: error, message

# Domain Types

Player is the one domain entity: an immutable id assigned on creation, a
display name, and a signed chip score. The owning game's id never appears in
JSON; ownership is resolved from the session cookie server-side.
*/
package models
