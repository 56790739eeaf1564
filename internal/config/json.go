// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files, with
// durations written as strings ("10s", "5m").
type StructuredJSONConfig struct {
	App struct {
		StorageKey string `json:"storage_key"`
		DemoMode   bool   `json:"demo_mode"`
		LogFile    string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Nutrition struct {
		Address string `json:"address"`
		AppID   string `json:"app_id"`
		AppKey  string `json:"app_key"`
	} `json:"nutrition,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ProfileRefreshInterval Duration `json:"profile_refresh_interval"`
	} `json:"workers,omitempty"`
}

// Duration wraps time.Duration with string JSON encoding.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		var err error
		d.Duration, err = time.ParseDuration(value)
		return err
	default:
		return fmt.Errorf("invalid duration: %v", v)
	}
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config file %q: %w", path, err)
	}

	var jsonCfg StructuredJSONConfig
	if err = json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config file %q: %w", path, err)
	}

	return &StructuredConfig{
		App: App{
			StorageKey: jsonCfg.App.StorageKey,
			DemoMode:   jsonCfg.App.DemoMode,
			LogFile:    jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: jsonCfg.Adapter.RequestTimeout.Duration,
		},
		Nutrition: Nutrition{
			Address: jsonCfg.Nutrition.Address,
			AppID:   jsonCfg.Nutrition.AppID,
			AppKey:  jsonCfg.Nutrition.AppKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			ProfileRefreshInterval: jsonCfg.Workers.ProfileRefreshInterval.Duration,
		},
		JSONFilePath: path,
	}, nil
}
