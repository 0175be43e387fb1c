// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the signed owner ID.
const CookieName = "chip_session"

var ErrInvalidSession = errors.New("invalid session cookie")

// NewOwnerID mints a random owner ID (32 hex chars).
func NewOwnerID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Sign returns the HMAC-SHA256 signature of ownerID under secret,
// URL-safe base64 without padding.
func Sign(ownerID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(ownerID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// Encode builds the cookie value: "<ownerID>.<signature>".
func Encode(ownerID, secret string) string {
	return ownerID + "." + Sign(ownerID, secret)
}

// Verify checks a cookie value and returns the owner ID it carries.
func Verify(value, secret string) (string, error) {
	ownerID, sig, ok := strings.Cut(value, ".")
	if !ok || ownerID == "" {
		return "", ErrInvalidSession
	}
	expected := Sign(ownerID, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrInvalidSession
	}
	return ownerID, nil
}

// FromRequest extracts a verified owner ID from the request cookie.
// Returns false when the cookie is absent, malformed, or tampered with.
func FromRequest(r *http.Request, secret string) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	ownerID, err := Verify(cookie.Value, secret)
	if err != nil {
		return "", false
	}
	return ownerID, true
}

// Issue mints a fresh owner ID and sets the signed cookie on the response.
func Issue(w http.ResponseWriter, secret string) string {
	ownerID := NewOwnerID()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    Encode(ownerID, secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return ownerID
}
