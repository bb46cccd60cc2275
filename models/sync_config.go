// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Bounds and defaults for [SyncConfig].
const (
	MinAutoSaveInterval     int64 = 1000
	MaxAutoSaveInterval     int64 = 60000
	DefaultAutoSaveInterval int64 = 3000

	MinCacheDays     = 1
	MaxCacheDays     = 30
	DefaultCacheDays = 3
)

// SyncConfig holds the user-tunable sync settings persisted on the device.
type SyncConfig struct {
	// AutoSaveInterval is the debounce and retry delay in milliseconds.
	AutoSaveInterval int64 `json:"autoSaveInterval"`
	// CacheDays is the retention window for clean entries.
	CacheDays int `json:"cacheDays"`
}

// DefaultSyncConfig returns the settings used when nothing valid is stored.
func DefaultSyncConfig() SyncConfig {
	return SyncConfig{
		AutoSaveInterval: DefaultAutoSaveInterval,
		CacheDays:        DefaultCacheDays,
	}
}

// Interval returns AutoSaveInterval as a duration.
func (c SyncConfig) Interval() time.Duration {
	return time.Duration(c.AutoSaveInterval) * time.Millisecond
}

// Clamped returns a copy with every field forced into its documented range.
func (c SyncConfig) Clamped() SyncConfig {
	c.AutoSaveInterval = ClampAutoSaveInterval(c.AutoSaveInterval)
	c.CacheDays = ClampCacheDays(c.CacheDays)
	return c
}

// ClampAutoSaveInterval forces ms into [MinAutoSaveInterval, MaxAutoSaveInterval].
func ClampAutoSaveInterval(ms int64) int64 {
	return min(max(ms, MinAutoSaveInterval), MaxAutoSaveInterval)
}

// ClampCacheDays forces days into [MinCacheDays, MaxCacheDays].
func ClampCacheDays(days int) int {
	return min(max(days, MinCacheDays), MaxCacheDays)
}
