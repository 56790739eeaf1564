// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// DefaultFakeBackendAddress matches the host and port of DefaultAPIAddress.
const DefaultFakeBackendAddress = "127.0.0.1:5000"

// FakeBackendConfig configures cmd/fakebackend.
type FakeBackendConfig struct {
	// Address is the listen address.
	// Env: FAKE_BACKEND_ADDRESS, flag: -a
	Address string `env:"FAKE_BACKEND_ADDRESS"`

	// SignKey signs the issued tokens. Empty uses a fixed development key.
	// Env: FAKE_BACKEND_SIGN_KEY, flag: -k
	SignKey string `env:"FAKE_BACKEND_SIGN_KEY"`
}

// ErrInvalidFakeBackendConfigs is returned for unusable fake backend
// settings.
var ErrInvalidFakeBackendConfigs = errors.New("invalid fake backend configuration")

// GetFakeBackendConfig reads environment variables, then lets flags from
// args override them.
func GetFakeBackendConfig(args []string) (*FakeBackendConfig, error) {
	cfg := &FakeBackendConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("fakebackend", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	address := fs.String("a", "", "listen address")
	signKey := fs.String("k", "", "token signing key")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if *address != "" {
		cfg.Address = *address
	}
	if *signKey != "" {
		cfg.SignKey = *signKey
	}
	if cfg.Address == "" {
		cfg.Address = DefaultFakeBackendAddress
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFakeBackendConfigs, fs.Args())
	}

	return cfg, nil
}
