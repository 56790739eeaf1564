// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/health-panda/internal/adapter"
)

var (
	// ErrUserQuit is returned by the flows when the user closes the UI.
	ErrUserQuit = errors.New("user quit")

	errBirthDateFormat = errors.New("enter the birth date as YYYY-MM-DD")
	errNotANumber      = errors.New("enter a number")
)

const msgServerUnavailable = "No network or server unavailable"

// humanizeError turns a service error into the line shown on screen.
// Session and food services already return user-facing messages; only
// transport failures are reworded.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, adapter.ErrTransport) {
		return msgServerUnavailable
	}
	if errors.Is(err, adapter.ErrTimeout) {
		return err.Error() + ": request timed out"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") {
		return msgServerUnavailable
	}

	return err.Error()
}
