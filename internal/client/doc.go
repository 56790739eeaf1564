// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// Without arguments it restores the session and walks the user through the
// interactive flows (sign-in, onboarding, home) while the profile refresh
// job runs in the background. With arguments it executes a single command
// such as "status" or "foods" and exits.
package client
