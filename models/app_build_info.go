// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppName is the product name shown in version output.
const AppName = "Health Panda"

// NotAvailable stands in for build metadata that was not injected.
const NotAvailable = "N/A"

// AppBuildInfo carries the version metadata injected by linker flags
// (-X main.buildVersion=... and friends). It is shown by the "version"
// command and on the about screen of the TUI.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String renders the one-line version banner, e.g.
// "Health Panda 1.2.0 (commit abc123, built 2026-10-19)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)",
		AppName, orNotAvailable(a.buildVersion), orNotAvailable(a.buildCommit), orNotAvailable(a.buildDate))
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
