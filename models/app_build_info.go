// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo is the version metadata stamped into a binary with -ldflags.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// String renders "version (commit, date)", leaving out unknown parts.
func (a AppBuildInfo) String() string {
	switch {
	case a.version == "":
		return "dev"
	case a.commit == "" && a.date == "":
		return a.version
	case a.date == "":
		return fmt.Sprintf("%s (%s)", a.version, a.commit)
	case a.commit == "":
		return fmt.Sprintf("%s (%s)", a.version, a.date)
	default:
		return fmt.Sprintf("%s (%s, %s)", a.version, a.commit, a.date)
	}
}
