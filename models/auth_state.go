// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthState is the derived authentication state the UI uses to pick a flow
// (sign-in, onboarding or main app). It is never stored directly.
type AuthState int

const (
	// LoggedOut means no bearer token is held.
	LoggedOut AuthState = iota
	// LoggedInNoProfile means a token is held but no profile is cached yet
	// (mid-onboarding, or the profile fetch failed).
	LoggedInNoProfile
	// LoggedInWithProfile means a token is held together with a profile
	// fetched during the same session.
	LoggedInWithProfile
)

// String implements [fmt.Stringer].
func (s AuthState) String() string {
	switch s {
	case LoggedOut:
		return "logged-out"
	case LoggedInNoProfile:
		return "logged-in-no-profile"
	case LoggedInWithProfile:
		return "logged-in-with-profile"
	default:
		return "unknown"
	}
}

// LoggedIn reports whether a token is held.
func (s AuthState) LoggedIn() bool {
	return s == LoggedInNoProfile || s == LoggedInWithProfile
}
