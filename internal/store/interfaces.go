// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueRepository is the low-level durable key-value slot. Values are
// opaque bytes; sealing happens one layer up in [CredentialStore].
type KeyValueRepository interface {
	// Get returns the value stored under key or ErrCredentialNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}
