// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend client settings
	// (for example, an unparsable address or a negative timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an in-memory DSN that cannot persist the token).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing storage key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidNutritionConfigs indicates a half-configured nutrition
	// lookup: app id and app key must be set together.
	ErrInvalidNutritionConfigs = errors.New("invalid nutrition configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a negative refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
