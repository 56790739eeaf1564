// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"time"
)

// URLAddress holds a backend base URL passed on the command line.
// It implements the flag.Value interface.
type URLAddress struct {
	raw string
}

// parseFlags parses all configuration flags from args and returns the
// positional arguments left after the flags.
//
// Flags:
//
//	-a backend API base URL (e.g. http://127.0.0.1:5000/api)
//	-d local credential database DSN
//	-c/-config json file path with configs
//	-storage-key at-rest storage secret
//	-demo enable demo fallbacks for scan and nutrition lookup
//	-log-file log file path
//	-request-timeout request timeout (e.g., "10s")
//	-refresh-interval profile refresh interval (e.g., "5m")
//	-nutrition-address nutrition API base URL
//	-nutrition-app-id nutrition API application id
//	-nutrition-app-key nutrition API application key
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("health-panda", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address URLAddress
	var databaseDSN string
	var jsonConfigPath string
	var storageKey string
	var demoMode bool
	var logFile string
	var requestTimeout, refreshInterval time.Duration
	var nutritionAddress, nutritionAppID, nutritionAppKey string

	fs.Var(&address, "a", "Backend API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&storageKey, "storage-key", "", "At-rest storage secret")
	fs.BoolVar(&demoMode, "demo", false, "Use placeholder data when scan or lookup fails")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Profile refresh interval (e.g., 5m)")
	fs.StringVar(&nutritionAddress, "nutrition-address", "", "Nutrition API base URL")
	fs.StringVar(&nutritionAppID, "nutrition-app-id", "", "Nutrition API application id")
	fs.StringVar(&nutritionAppKey, "nutrition-app-key", "", "Nutrition API application key")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			StorageKey: storageKey,
			DemoMode:   demoMode,
			LogFile:    logFile,
		},
		Adapter: Adapter{
			HTTPAddress:    address.String(),
			RequestTimeout: requestTimeout,
		},
		Nutrition: Nutrition{
			Address: nutritionAddress,
			AppID:   nutritionAppID,
			AppKey:  nutritionAppKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			ProfileRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns the URL as given on the command line.
func (a *URLAddress) String() string {
	return a.raw
}

// Set validates that s is an absolute http(s) URL and stores it.
func (a *URLAddress) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need address in a form `http(s)://host[:port][/path]`")
	}

	if u.Host == "" {
		return errors.New("address has no host")
	}

	a.raw = s
	return nil
}
