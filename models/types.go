// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package models

// Request types

type AddPlayerRequest struct {
	Name string `json:"name"`
}

// Amount is optional; nil means 1.
type AdjustScoreRequest struct {
	Amount *int64 `json:"amount"`
}

// Response types

type ListPlayersResponse struct {
	Players []Player `json:"players"`
}

type ResetResponse struct {
	Message string `json:"message"`
}

// Domain types

type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
