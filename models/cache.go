// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CacheEntry is the locally cached state of one diary date.
//
// An entry with IsDirty set holds a local edit that the remote store has not
// confirmed yet; server-sourced data never overwrites it.
type CacheEntry struct {
	// Content is the diary text payload.
	Content string `json:"content"`
	// LocalUpdatedAt is the Unix millisecond timestamp of the last local write.
	LocalUpdatedAt int64 `json:"localUpdatedAt"`
	// ServerUpdatedAt is the last known remote version, empty when unknown.
	ServerUpdatedAt string `json:"serverUpdatedAt,omitempty"`
	// IsDirty is true while the content awaits remote confirmation.
	IsDirty bool `json:"isDirty"`
}

// PersistedEntry is a CacheEntry together with its date key.
type PersistedEntry struct {
	Date string `json:"date"`
	CacheEntry
}

// DirtyEntry is the minimal snapshot pushed to the remote store.
type DirtyEntry struct {
	Date    string
	Content string
	// LocalUpdatedAt identifies the local revision that was snapshotted.
	LocalUpdatedAt int64
}

// CacheStatsEntry describes one cached date in [CacheStats].
type CacheStatsEntry struct {
	Date           string `json:"date"`
	IsDirty        bool   `json:"isDirty"`
	LocalUpdatedAt int64  `json:"localUpdatedAt"`
}

// CacheStats summarises the in-memory cache. Entries are sorted by date,
// newest first.
type CacheStats struct {
	TotalCached int               `json:"totalCached"`
	PendingSync int               `json:"pendingSync"`
	Entries     []CacheStatsEntry `json:"entries"`
}
