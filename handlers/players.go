// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/evanmckeown/blackjack-chip-counter/cliparse"
	"github.com/evanmckeown/blackjack-chip-counter/middleware"
	"github.com/evanmckeown/blackjack-chip-counter/models"
	"github.com/evanmckeown/blackjack-chip-counter/session"
	"github.com/evanmckeown/blackjack-chip-counter/store"
)

type PlayerHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPlayerHandler(st *store.Store, cfg cliparse.Config) *PlayerHandler {
	return &PlayerHandler{store: st, cfg: cfg}
}

// beginRequest resolves the request's game: verify or mint the session
// cookie, drop expired games, and mark this one active. Returns false after
// writing an error response.
func (h *PlayerHandler) beginRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	ownerID, ok := session.FromRequest(r, h.cfg.SessionSecret)
	if !ok {
		ownerID = session.Issue(w, h.cfg.SessionSecret)
	}

	if err := h.store.PruneExpired(r.Context(), h.cfg.GameTTL()); err != nil {
		slog.Error("failed to prune expired games", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}
	if err := h.store.TouchSession(r.Context(), ownerID); err != nil {
		slog.Error("failed to touch session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}

	return ownerID, true
}

// playerID parses the {id} path value. Returns false after writing an error
// response.
func playerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid player id")
		return 0, false
	}
	return id, true
}

// amount parses the optional {"amount": n} body; an empty body means 1.
func amount(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var req models.AdjustScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		if !errors.Is(err, io.EOF) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return 0, false
		}
		return 1, true
	}
	if req.Amount == nil {
		return 1, true
	}
	return *req.Amount, true
}

// ListPlayers handles GET /players
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.beginRequest(w, r)
	if !ok {
		return
	}

	players, err := h.store.ListPlayers(r.Context(), ownerID)
	if err != nil {
		slog.Error("failed to list players", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPlayersResponse{Players: players})
}

// AddPlayer handles POST /players
func (h *PlayerHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.beginRequest(w, r)
	if !ok {
		return
	}

	var req models.AddPlayerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	player, err := h.store.AddPlayer(r.Context(), ownerID, req.Name)
	switch {
	case errors.Is(err, store.ErrEmptyName):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Player name cannot be empty")
		return
	case errors.Is(err, store.ErrDuplicateName):
		middleware.ErrorResponse(w, http.StatusConflict, "That player already exists")
		return
	case err != nil:
		slog.Error("failed to add player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add player")
		return
	}

	slog.Info("player added", "player_id", player.ID, "name", player.Name)

	middleware.JSONResponse(w, http.StatusCreated, player)
}

// Increment handles POST /players/{id}/increment
func (h *PlayerHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, 1)
}

// Decrement handles POST /players/{id}/decrement
func (h *PlayerHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, -1)
}

func (h *PlayerHandler) adjust(w http.ResponseWriter, r *http.Request, sign int64) {
	ownerID, ok := h.beginRequest(w, r)
	if !ok {
		return
	}

	id, ok := playerID(w, r)
	if !ok {
		return
	}

	n, ok := amount(w, r)
	if !ok {
		return
	}

	player, err := h.store.Increment(r.Context(), ownerID, id, sign*n)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	case err != nil:
		slog.Error("failed to update score", "error", err, "player_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update score")
		return
	}

	slog.Info("score updated", "player_id", player.ID, "delta", sign*n, "score", player.Score)

	middleware.JSONResponse(w, http.StatusOK, player)
}

// RemovePlayer handles DELETE /players/{id}
func (h *PlayerHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.beginRequest(w, r)
	if !ok {
		return
	}

	id, ok := playerID(w, r)
	if !ok {
		return
	}

	err := h.store.RemovePlayer(r.Context(), ownerID, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	case err != nil:
		slog.Error("failed to remove player", "error", err, "player_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to remove player")
		return
	}

	slog.Info("player removed", "player_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// ResetScores handles POST /reset
func (h *PlayerHandler) ResetScores(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.beginRequest(w, r)
	if !ok {
		return
	}

	if err := h.store.ResetAll(r.Context(), ownerID); err != nil {
		slog.Error("failed to reset scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset scores")
		return
	}

	slog.Info("scores reset")

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{Message: "All scores reset to 0"})
}
