// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the email/password pair used to open a session.
// It lives only for the duration of the request that uses it and is never
// persisted on the client.
type Credentials struct {
	// Email is the account identifier.
	Email string `json:"email"`

	// Password is sent to the backend as-is over the configured transport.
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	// Name is the display name shown in the app.
	Name string `json:"name"`

	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials returns the login pair contained in the registration request.
func (r RegisterRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}
