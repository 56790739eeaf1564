// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/health-panda/internal/adapter"
)

var (
	ErrEmptyCredentials       = errors.New("empty credentials")
	ErrNotLoggedIn            = errors.New("not logged in")
	ErrNutritionNotConfigured = errors.New("nutrition lookup is not configured")
	ErrStaleSession           = errors.New("session changed during request")
	ErrEmptyImagePath         = errors.New("empty image path")
)

// UserError is an error meant to be shown to the user. Error returns exactly
// the displayable message; the cause stays reachable through errors.Is/As.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// userError wraps err into a *UserError carrying the backend message, or
// fallback when the backend sent none.
func userError(err error, fallback string) error {
	if msg, ok := adapter.ServerMessage(err); ok {
		return &UserError{Message: msg, Err: err}
	}
	return &UserError{Message: fallback, Err: err}
}
