// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/evanmckeown/blackjack-chip-counter/models"
	"github.com/evanmckeown/blackjack-chip-counter/session"
	"github.com/evanmckeown/blackjack-chip-counter/store"
	"github.com/evanmckeown/blackjack-chip-counter/testutil"
)

func TestAddPlayer(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)
	owner := testutil.NewTestOwner(t, conn)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name:           "valid player",
			requestBody:    models.AddPlayerRequest{Name: "Alice"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "empty name",
			requestBody:    models.AddPlayerRequest{Name: ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace name",
			requestBody:    models.AddPlayerRequest{Name: "   "},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate name",
			requestBody:    models.AddPlayerRequest{Name: "Alice"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "invalid JSON",
			requestBody:    nil,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.requestBody == nil {
				req = testutil.MakeRequest("POST", "/players", nil, nil)
			} else {
				req = testutil.MakeRequest("POST", "/players", tt.requestBody, nil)
			}
			testutil.WithOwnerCookie(req, owner)
			w := httptest.NewRecorder()

			handler.AddPlayer(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var player models.Player
				testutil.AssertJSON(t, w, &player)
				if player.Score != 0 {
					t.Errorf("new players start at 0, got %d", player.Score)
				}
				if player.ID == 0 {
					t.Error("expected a non-zero id")
				}

				// Verify the row was persisted
				var score int64
				err := conn.QueryRow(`SELECT score FROM players WHERE id = ?`, player.ID).Scan(&score)
				if err != nil {
					t.Fatalf("Failed to query player: %v", err)
				}
				if score != 0 {
					t.Errorf("expected persisted score 0, got %d", score)
				}
			}
		})
	}
}

func TestAddPlayer_MintsSessionWhenMissing(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)

	// No cookie on the request: the handler must issue one and still succeed
	req := testutil.MakeRequest("POST", "/players", models.AddPlayerRequest{Name: "Alice"}, nil)
	w := httptest.NewRecorder()

	handler.AddPlayer(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != session.CookieName {
		t.Fatalf("expected a %s cookie to be issued, got %v", session.CookieName, cookies)
	}
	if _, err := session.Verify(cookies[0].Value, cfg.SessionSecret); err != nil {
		t.Errorf("issued cookie does not verify: %v", err)
	}
}

func TestIncrementDecrement(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)
	owner := testutil.NewTestOwner(t, conn)
	id := testutil.AddTestPlayer(t, conn, owner, "Alice", 10)

	amount := func(n int64) *models.AdjustScoreRequest {
		return &models.AdjustScoreRequest{Amount: &n}
	}

	tests := []struct {
		name           string
		op             func(http.ResponseWriter, *http.Request)
		pathID         string
		requestBody    interface{}
		expectedStatus int
		expectedScore  int64
	}{
		{
			name:           "increment by amount",
			op:             handler.Increment,
			pathID:         strconv.FormatInt(id, 10),
			requestBody:    amount(5),
			expectedStatus: http.StatusOK,
			expectedScore:  15,
		},
		{
			name:           "decrement by amount",
			op:             handler.Decrement,
			pathID:         strconv.FormatInt(id, 10),
			requestBody:    amount(5),
			expectedStatus: http.StatusOK,
			expectedScore:  10,
		},
		{
			name:           "increment defaults to 1",
			op:             handler.Increment,
			pathID:         strconv.FormatInt(id, 10),
			requestBody:    nil,
			expectedStatus: http.StatusOK,
			expectedScore:  11,
		},
		{
			name:           "decrement below zero",
			op:             handler.Decrement,
			pathID:         strconv.FormatInt(id, 10),
			requestBody:    amount(20),
			expectedStatus: http.StatusOK,
			expectedScore:  -9,
		},
		{
			name:           "unknown player",
			op:             handler.Increment,
			pathID:         "9999",
			requestBody:    amount(1),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			op:             handler.Increment,
			pathID:         "abc",
			requestBody:    amount(1),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/players/"+tt.pathID+"/increment", tt.requestBody, nil)
			req.SetPathValue("id", tt.pathID)
			testutil.WithOwnerCookie(req, owner)
			w := httptest.NewRecorder()

			tt.op(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var player models.Player
				testutil.AssertJSON(t, w, &player)
				if player.Score != tt.expectedScore {
					t.Errorf("expected score %d, got %d", tt.expectedScore, player.Score)
				}
			}
		})
	}
}

func TestIncrement_OwnerIsolation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)
	owner := testutil.NewTestOwner(t, conn)
	intruder := testutil.NewTestOwner(t, conn)
	id := testutil.AddTestPlayer(t, conn, owner, "Alice", 10)

	pathID := strconv.FormatInt(id, 10)
	req := testutil.MakeRequest("POST", "/players/"+pathID+"/increment", nil, nil)
	req.SetPathValue("id", pathID)
	testutil.WithOwnerCookie(req, intruder)
	w := httptest.NewRecorder()

	handler.Increment(w, req)

	// Another game's player id must look like a missing player
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var score int64
	if err := conn.QueryRow(`SELECT score FROM players WHERE id = ?`, id).Scan(&score); err != nil {
		t.Fatalf("Failed to query player: %v", err)
	}
	if score != 10 {
		t.Errorf("cross-owner request must not mutate: expected 10, got %d", score)
	}
}

func TestRemovePlayer(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)
	owner := testutil.NewTestOwner(t, conn)
	id := testutil.AddTestPlayer(t, conn, owner, "Alice", 5)

	remove := func(pathID string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("DELETE", "/players/"+pathID, nil, nil)
		req.SetPathValue("id", pathID)
		testutil.WithOwnerCookie(req, owner)
		w := httptest.NewRecorder()
		handler.RemovePlayer(w, req)
		return w
	}

	pathID := strconv.FormatInt(id, 10)

	w := remove(pathID)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	// Removal is permanent and repeat removals keep reporting not-found
	w = remove(pathID)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	w = remove(pathID)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestResetScores(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)
	owner := testutil.NewTestOwner(t, conn)
	testutil.AddTestPlayer(t, conn, owner, "Alice", 42)
	testutil.AddTestPlayer(t, conn, owner, "Bob", -7)

	req := testutil.MakeRequest("POST", "/reset", nil, nil)
	testutil.WithOwnerCookie(req, owner)
	w := httptest.NewRecorder()

	handler.ResetScores(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	listReq := testutil.MakeRequest("GET", "/players", nil, nil)
	testutil.WithOwnerCookie(listReq, owner)
	listW := httptest.NewRecorder()

	handler.ListPlayers(listW, listReq)

	var resp models.ListPlayersResponse
	testutil.AssertJSON(t, listW, &resp)
	if len(resp.Players) != 2 {
		t.Fatalf("reset must keep players: expected 2, got %d", len(resp.Players))
	}
	for _, p := range resp.Players {
		if p.Score != 0 {
			t.Errorf("player %s: expected score 0 after reset, got %d", p.Name, p.Score)
		}
	}
}

func TestListPlayers_EmptyGame(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPlayerHandler(store.New(conn), cfg)
	owner := testutil.NewTestOwner(t, conn)

	req := testutil.MakeRequest("GET", "/players", nil, nil)
	testutil.WithOwnerCookie(req, owner)
	w := httptest.NewRecorder()

	handler.ListPlayers(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListPlayersResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Players == nil {
		t.Error("expected an empty array, not null")
	}
	if len(resp.Players) != 0 {
		t.Errorf("expected no players, got %d", len(resp.Players))
	}
}
