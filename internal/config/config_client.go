// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset fields.
const (
	DefaultAPIAddress             = "http://127.0.0.1:5000/api"
	DefaultRequestTimeout         = 10 * time.Second
	DefaultDSN                    = "health-panda.db"
	DefaultNutritionAddress       = "https://trackapi.nutritionix.com"
	DefaultProfileRefreshInterval = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// StorageKey is the secret the at-rest sealing key is derived from.
	StorageKey string
	// DemoMode enables placeholder results for failed scans and lookups.
	DemoMode bool
	// LogFile is the log destination; empty means "logs" beside the binary.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend API base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for every backend request.
	RequestTimeout time.Duration
}

// ClientNutrition holds the nutrition lookup settings.
type ClientNutrition struct {
	Address string
	AppID   string
	AppKey  string
}

// Enabled reports whether both nutrition credentials are configured.
func (n ClientNutrition) Enabled() bool {
	return n.AppID != "" && n.AppKey != ""
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the credential store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ProfileRefreshInterval defines how often the profile refresh job runs.
	ProfileRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Nutrition contains nutrition lookup settings.
	Nutrition ClientNutrition
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Command holds the positional arguments left after flag parsing
	// (a CLI subcommand and its operands). Empty means interactive mode.
	Command []string
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration. args are the process arguments without the
// program name.
//
// Unset fields receive the package defaults before validation.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			StorageKey: cfg.App.StorageKey,
			DemoMode:   cfg.App.DemoMode,
			LogFile:    cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Nutrition: ClientNutrition{
			Address: cfg.Nutrition.Address,
			AppID:   cfg.Nutrition.AppID,
			AppKey:  cfg.Nutrition.AppKey,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{ProfileRefreshInterval: cfg.Workers.ProfileRefreshInterval},
		Command: rest,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAPIAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Nutrition.Address == "" {
		cfg.Nutrition.Address = DefaultNutritionAddress
	}
	if cfg.Workers.ProfileRefreshInterval == 0 {
		cfg.Workers.ProfileRefreshInterval = DefaultProfileRefreshInterval
	}
}
