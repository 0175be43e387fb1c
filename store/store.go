// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/evanmckeown/blackjack-chip-counter/models"
)

var (
	ErrEmptyName     = errors.New("player name is empty")
	ErrDuplicateName = errors.New("player name already taken in this game")
	ErrNotFound      = errors.New("player not found")
)

// Store persists player scores in SQLite. All operations are scoped to an
// owner (one game); a request never sees another game's rows.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AddPlayer creates a player with score 0 and returns the stored row.
func (s *Store) AddPlayer(ctx context.Context, ownerID, name string) (models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Player{}, ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Player{}, fmt.Errorf("begin add player: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO players (owner_id, name, score)
		VALUES (?, ?, 0)
	`, ownerID, name)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Player{}, ErrDuplicateName
		}
		return models.Player{}, fmt.Errorf("insert player: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Player{}, fmt.Errorf("player id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Player{}, fmt.Errorf("commit add player: %w", err)
	}

	return models.Player{ID: id, Name: name, Score: 0}, nil
}

// Increment adds amount to the player's score and returns the updated row.
func (s *Store) Increment(ctx context.Context, ownerID string, id, amount int64) (models.Player, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Player{}, fmt.Errorf("begin score update: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE players
		SET score = score + ?
		WHERE id = ? AND owner_id = ?
	`, amount, id, ownerID)
	if err != nil {
		return models.Player{}, fmt.Errorf("update score: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return models.Player{}, fmt.Errorf("update score: %w", err)
	}
	if rows == 0 {
		return models.Player{}, ErrNotFound
	}

	var player models.Player
	err = tx.QueryRowContext(ctx, `
		SELECT id, name, score
		FROM players
		WHERE id = ? AND owner_id = ?
	`, id, ownerID).Scan(&player.ID, &player.Name, &player.Score)
	if err != nil {
		return models.Player{}, fmt.Errorf("reload player: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Player{}, fmt.Errorf("commit score update: %w", err)
	}

	return player, nil
}

// Decrement subtracts amount from the player's score.
func (s *Store) Decrement(ctx context.Context, ownerID string, id, amount int64) (models.Player, error) {
	return s.Increment(ctx, ownerID, id, -amount)
}

// RemovePlayer deletes the player's row permanently. Removing an absent
// player always reports ErrNotFound, never a silent success.
func (s *Store) RemovePlayer(ctx context.Context, ownerID string, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin remove player: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM players
		WHERE id = ? AND owner_id = ?
	`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit remove player: %w", err)
	}

	return nil
}

// ResetAll sets every score in the game to 0. No-op on an empty game.
func (s *Store) ResetAll(ctx context.Context, ownerID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE players
		SET score = 0
		WHERE owner_id = ?
	`, ownerID)
	if err != nil {
		return fmt.Errorf("reset scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}

	return nil
}

// ListPlayers returns the game's players in insertion order.
func (s *Store) ListPlayers(ctx context.Context, ownerID string) ([]models.Player, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, score
		FROM players
		WHERE owner_id = ?
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Score); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

// TouchSession upserts the game's last-seen timestamp.
func (s *Store) TouchSession(ctx context.Context, ownerID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO owner_sessions (owner_id, last_seen_at)
		VALUES (?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET last_seen_at = excluded.last_seen_at
	`, ownerID, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	return nil
}

// PruneExpired deletes players and session rows for games inactive longer
// than ttl.
func (s *Store) PruneExpired(ctx context.Context, ttl time.Duration) error {
	cutoff := time.Now().Add(-ttl).Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin prune: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM players
		WHERE owner_id IN (SELECT owner_id FROM owner_sessions WHERE last_seen_at < ?)
	`, cutoff)
	if err != nil {
		return fmt.Errorf("prune players: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM owner_sessions WHERE last_seen_at < ?
	`, cutoff)
	if err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit prune: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
