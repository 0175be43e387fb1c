// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/evanmckeown/blackjack-chip-counter/cliparse"
	"github.com/evanmckeown/blackjack-chip-counter/db"
	"github.com/evanmckeown/blackjack-chip-counter/session"
)

// TestSecret is the session signing key used across tests
const TestSecret = "test-session-secret"

// SetupTestDB creates a fresh SQLite file in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scores_test.db")
	conn, err := db.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabasePath:  "scores_test.db",
		SessionSecret: TestSecret,
		GameTTLDays:   30,
	}
}

// NewTestOwner mints an owner ID and records its session as active now
func NewTestOwner(t *testing.T, conn *sql.DB) string {
	t.Helper()

	ownerID := session.NewOwnerID()
	_, err := conn.Exec(`
		INSERT INTO owner_sessions (owner_id, last_seen_at)
		VALUES (?, ?)
	`, ownerID, time.Now().Unix())
	if err != nil {
		t.Fatalf("Failed to create test owner: %v", err)
	}

	return ownerID
}

// AddTestPlayer inserts a player row directly and returns its id
func AddTestPlayer(t *testing.T, conn *sql.DB, ownerID, name string, score int64) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO players (owner_id, name, score)
		VALUES (?, ?, ?)
	`, ownerID, name, score)
	if err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test player id: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithOwnerCookie attaches a signed session cookie for ownerID
func WithOwnerCookie(req *http.Request, ownerID string) *http.Request {
	req.AddCookie(&http.Cookie{
		Name:  session.CookieName,
		Value: session.Encode(ownerID, TestSecret),
	})
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
