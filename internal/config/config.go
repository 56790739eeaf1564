// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds application-level settings: the at-rest storage secret,
	// demo mode and the log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and the request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Nutrition holds credentials for the third-party nutrition lookup.
	Nutrition Nutrition `envPrefix:"NUTRITION_"`

	// Storage holds the local credential database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StorageKey is the secret the at-rest sealing key is derived from.
	// Changing it makes previously stored credentials unreadable, which
	// results in a logged-out start.
	// Env: APP_STORAGE_KEY
	StorageKey string `env:"STORAGE_KEY,unset"`

	// DemoMode replaces failed food scans and nutrition lookups with canned
	// placeholder data instead of reporting the failure.
	// Env: APP_DEMO_MODE
	DemoMode bool `env:"DEMO_MODE"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the settings of the backend HTTP client.
type Adapter struct {
	// HTTPAddress is the backend API base URL including the /api prefix
	// (e.g. "http://127.0.0.1:5000/api").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the fixed client-wide timeout applied to every
	// backend request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Nutrition holds Nutritionix API credentials.
type Nutrition struct {
	// Address is the base URL of the nutrition API.
	// Env: NUTRITION_ADDRESS
	Address string `env:"ADDRESS"`

	// AppID is sent as the x-app-id header.
	// Env: NUTRITION_APP_ID
	AppID string `env:"APP_ID"`

	// AppKey is sent as the x-app-key header.
	// Env: NUTRITION_APP_KEY
	AppKey string `env:"APP_KEY,unset"`
}

// Storage groups the local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite database settings.
type DB struct {
	// DSN is the path (or sqlite3 DSN) of the local credential database.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ProfileRefreshInterval is how often the cached profile is refreshed
	// while the home screen is open.
	// Env: WORKERS_PROFILE_REFRESH_INTERVAL
	ProfileRefreshInterval time.Duration `env:"PROFILE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name;
// positional arguments left after flag parsing are returned separately.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.rest, err
}
