// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          int
	DatabasePath  string
	SessionSecret string
	GameTTLDays   int
}

// GameTTL returns how long an inactive game is kept before pruning.
func (c Config) GameTTL() time.Duration {
	return time.Duration(c.GameTTLDays) * 24 * time.Hour
}

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("blackjack-chip-counter", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")
	fs.IntVar(&cfg.GameTTLDays, "ttl", 0, "Days before an inactive game is pruned")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie signing key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "scores.db"
	}

	if cfg.GameTTLDays == 0 {
		if ttlStr := os.Getenv("GAME_TTL_DAYS"); ttlStr != "" {
			days, err := strconv.Atoi(ttlStr)
			if err != nil || days <= 0 {
				return Config{}, errors.New("invalid GAME_TTL_DAYS env variable")
			}
			cfg.GameTTLDays = days
		} else {
			cfg.GameTTLDays = 30
		}
	}

	// Secret - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	return cfg, nil
}
