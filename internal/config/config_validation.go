// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.App.StorageKey == "" {
		return ErrInvalidAppConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	// the token must outlive the process
	if strings.Contains(cfg.Storage.DB.DSN, ":memory:") || strings.Contains(cfg.Storage.DB.DSN, "mode=memory") {
		return ErrInvalidStorageConfigs
	}

	if (cfg.Nutrition.AppID == "") != (cfg.Nutrition.AppKey == "") {
		return ErrInvalidNutritionConfigs
	}

	if cfg.Workers.ProfileRefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
