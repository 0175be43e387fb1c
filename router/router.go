// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package router

import (
	"net/http"

	"github.com/evanmckeown/blackjack-chip-counter/cliparse"
	"github.com/evanmckeown/blackjack-chip-counter/handlers"
	"github.com/evanmckeown/blackjack-chip-counter/middleware"
	"github.com/evanmckeown/blackjack-chip-counter/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Player operations (scoped to the session's game)
	mux.HandleFunc("GET /players", middleware.WithLogging(playerHandler.ListPlayers))
	mux.HandleFunc("POST /players", middleware.WithLogging(playerHandler.AddPlayer))
	mux.HandleFunc("POST /players/{id}/increment", middleware.WithLogging(playerHandler.Increment))
	mux.HandleFunc("POST /players/{id}/decrement", middleware.WithLogging(playerHandler.Decrement))
	mux.HandleFunc("DELETE /players/{id}", middleware.WithLogging(playerHandler.RemovePlayer))
	mux.HandleFunc("POST /reset", middleware.WithLogging(playerHandler.ResetScores))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("blackjack-chip-counter API v1"))
	})

	return mux
}
