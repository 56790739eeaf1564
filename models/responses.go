// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic `{message}` body returned by the backend
// on register and profile update.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body the backend sends with non-2xx statuses.
// Some endpoints use "message", others "error"; both are accepted.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Text returns the first non-empty human-readable message of the response.
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
