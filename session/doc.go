// SPDX-FileCopyrightText: 2026 Evan McKeown
// SPDX-License-Identifier: Apache-2.0

/*
Package session identifies which game a request belongs to.

Each browser gets a random owner ID on first contact, carried in an
HMAC-SHA256-signed cookie. The cookie stores no scores; it only ties the
browser to its server-side rows. Tampered or unsigned cookies are discarded
and a fresh identity is minted.

	ownerID, ok := session.FromRequest(r, cfg.SessionSecret)
	if !ok {
		ownerID = session.Issue(w, cfg.SessionSecret)
	}

The cookie value is "<ownerID>.<signature>"; Verify recomputes the signature
with constant-time comparison.
*/
package session
