// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status errors. A non-2xx response is returned as a [*ResponseError] that
// unwraps to one of these.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// Transport errors: the request never produced an HTTP response.
var (
	ErrTransport = errors.New("server unavailable")
	ErrTimeout   = errors.New("request timed out")
)

var (
	// ErrInvalidResponse is returned when a 2xx body cannot be decoded or
	// lacks a required field.
	ErrInvalidResponse = errors.New("invalid server response")
	// ErrEmptyQuery is returned by the nutrition lookup for a blank query.
	ErrEmptyQuery = errors.New("empty nutrition query")
)

// ResponseError describes a non-2xx response.
type ResponseError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Message is the backend's human-readable "message" (or "error") field,
	// empty when the body carried none.
	Message string
	// Err is the status sentinel, e.g. ErrUnauthorized.
	Err error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("http %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// ServerMessage returns the backend message carried by err, if any.
func ServerMessage(err error) (string, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) && respErr.Message != "" {
		return respErr.Message, true
	}
	return "", false
}
