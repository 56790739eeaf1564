// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end driven by [App]. [tui.TUI] implements it.
type UI interface {
	// LoginFlow returns once the user is signed in. notice is shown on the
	// first screen when not empty.
	LoginFlow(ctx context.Context, notice string) error

	// OnboardingFlow returns once the profile is saved.
	OnboardingFlow(ctx context.Context) error

	// MainLoop runs the home screen until the user quits (logout false) or
	// the session ends (logout true). expired is set when the backend
	// rejected the token.
	MainLoop(ctx context.Context) (logout, expired bool, err error)
}
