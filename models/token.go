// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token is the successful response of POST /login.
//
// AccessToken is an opaque bearer string. The client never interprets it
// for authorization decisions; see [TokenInfo] for the display-only view.
type Token struct {
	AccessToken string `json:"access_token"`
}

// String returns the raw bearer string.
func (t Token) String() string {
	return t.AccessToken
}

// TokenInfo is a best-effort, unverified view of a bearer token's claims.
// It is only populated when the backend happens to issue JWTs and is used
// for status output, never to decide whether a session is valid.
type TokenInfo struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token advertises an expiry that is already in
// the past relative to now. Tokens without an expiry are never expired.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
