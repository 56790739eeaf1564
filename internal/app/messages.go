// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// health-panda client services, the terminal UI and the fake backend used in
// tests.
//
// Msg* constants are shown to the user verbatim, or written into response
// bodies by the fake backend. Keeping them in one place keeps the wording
// consistent between what the backend says and what the client falls back to.
package app

// Client-side fallbacks, used when the backend gives no message of its own.
const (
	// MsgFillAllFields is returned before any request when a required
	// credential is blank.
	MsgFillAllFields = "Please fill in all fields"

	// MsgLoginFailed is the login error shown when the backend sent no
	// message (transport error, timeout, bare status).
	MsgLoginFailed = "Login failed"

	// MsgRegistrationFailed is the registration counterpart of MsgLoginFailed.
	MsgRegistrationFailed = "Registration failed"

	// MsgPasswordsDoNotMatch is shown by the sign-up form.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	MsgProfileUpdateFailed = "Could not save profile"
	MsgScanFailed          = "Could not analyse the photo"
	MsgEntriesFailed       = "Could not load food entries"
	MsgLookupFailed        = "Nutrition lookup failed"
	MsgNotLoggedIn         = "Please log in first"
	MsgNutritionDisabled   = "Nutrition lookup is not configured"
)

// Backend messages. The real backend is an external service; these are the
// texts it sends and the fake backend reproduces.
const (
	MsgRegistered          = "User registered successfully"
	MsgProfileUpdated      = "Profile updated successfully"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgUserAlreadyExists   = "User already exists"
	MsgMissingToken        = "Missing or invalid token"
	MsgProfileNotFound     = "Profile not found"
	MsgNoImageProvided     = "No image provided"
	MsgInvalidDataProvided = "Invalid data provided"
)
