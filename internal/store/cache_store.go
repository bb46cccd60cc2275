// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// CacheStore persists diary cache entries in a [KeyValueRepository] under
// "<namespace>_<date>" keys.
//
// Reads never fail: an unavailable medium or a corrupt value is logged and
// treated as absent. Writes report errors so the caller can log them, but
// the in-memory cache stays authoritative either way.
type CacheStore struct {
	kv         KeyValueRepository
	namespace  string
	maxEntries int
	clock      utils.Clock
	logger     *logger.Logger
}

// NewCacheStore returns a CacheStore. maxEntries bounds the number of clean
// entries kept by [CacheStore.PruneOlderThan]; zero disables the bound.
func NewCacheStore(kv KeyValueRepository, namespace string, maxEntries int, clock utils.Clock, logger *logger.Logger) *CacheStore {
	return &CacheStore{
		kv:         kv,
		namespace:  namespace,
		maxEntries: maxEntries,
		clock:      clock,
		logger:     logger,
	}
}

func (s *CacheStore) prefix() string {
	return s.namespace + "_"
}

func (s *CacheStore) key(date string) string {
	return s.prefix() + date
}

// Load returns every persisted entry. Values that cannot be decoded, and
// keys that do not carry a valid date, are deleted from the medium.
func (s *CacheStore) Load(ctx context.Context) map[string]models.CacheEntry {
	entries, corrupt := s.read(ctx)
	if len(corrupt) > 0 {
		if err := s.kv.Delete(ctx, corrupt...); err != nil {
			s.logger.Warn().Err(err).Str("func", "CacheStore.Load").Msg("failed to drop corrupt cache entries")
		} else {
			s.logger.Warn().Str("func", "CacheStore.Load").Int("dropped", len(corrupt)).Msg("dropped corrupt cache entries")
		}
	}
	return entries
}

// LoadAll returns every decodable persisted entry without repairing the medium.
func (s *CacheStore) LoadAll(ctx context.Context) map[string]models.CacheEntry {
	entries, _ := s.read(ctx)
	return entries
}

func (s *CacheStore) read(ctx context.Context) (map[string]models.CacheEntry, []string) {
	entries := make(map[string]models.CacheEntry)

	raw, err := s.kv.ListByPrefix(ctx, s.prefix())
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "CacheStore.read").Msg("cache storage unavailable, starting empty")
		return entries, nil
	}

	var corrupt []string
	for key, value := range raw {
		date := strings.TrimPrefix(key, s.prefix())
		if _, err := models.ParseDate(date, time.Local); err != nil {
			corrupt = append(corrupt, key)
			continue
		}

		var entry models.CacheEntry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			corrupt = append(corrupt, key)
			continue
		}
		entries[date] = entry
	}

	return entries, corrupt
}

// Save persists entry for date.
func (s *CacheStore) Save(ctx context.Context, date string, entry models.CacheEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key(date), string(payload))
}

// Remove deletes the persisted entry for date.
func (s *CacheStore) Remove(ctx context.Context, dates ...string) error {
	keys := make([]string, 0, len(dates))
	for _, date := range dates {
		keys = append(keys, s.key(date))
	}
	return s.kv.Delete(ctx, keys...)
}

// PruneOlderThan deletes clean persisted entries outside the retention
// window of days, then the oldest clean entries beyond the count bound.
// Dirty entries are never removed. It returns the number of entries deleted.
func (s *CacheStore) PruneOlderThan(ctx context.Context, days int) int {
	entries := s.LoadAll(ctx)

	var stale []string
	clean := make([]string, 0, len(entries))
	for date, entry := range entries {
		if entry.IsDirty {
			continue
		}
		if !s.IsWithinRetention(date, days) {
			stale = append(stale, date)
			continue
		}
		clean = append(clean, date)
	}

	if s.maxEntries > 0 {
		dirty := len(entries) - len(stale) - len(clean)
		if over := dirty + len(clean) - s.maxEntries; over > 0 {
			slices.SortFunc(clean, func(a, b string) int { return cmp.Compare(a, b) })
			stale = append(stale, clean[:min(over, len(clean))]...)
		}
	}

	if len(stale) == 0 {
		return 0
	}

	if err := s.Remove(ctx, stale...); err != nil {
		s.logger.Warn().Err(err).Str("func", "CacheStore.PruneOlderThan").Msg("failed to prune cache entries")
		return 0
	}

	s.logger.Debug().Str("func", "CacheStore.PruneOlderThan").Int("removed", len(stale)).Msg("pruned cache entries")
	return len(stale)
}

// IsWithinRetention reports whether date falls within the most recent days
// calendar days, today included. Future dates are within; unparseable dates
// are not.
func (s *CacheStore) IsWithinRetention(date string, days int) bool {
	return IsWithinRetention(date, days, s.clock.Now())
}

// IsWithinRetention reports whether date lies after now's calendar day minus
// days, evaluated in now's location.
func IsWithinRetention(date string, days int, now time.Time) bool {
	d, err := models.ParseDate(date, now.Location())
	if err != nil {
		return false
	}

	y, m, day := now.Date()
	today := time.Date(y, m, day, 0, 0, 0, 0, now.Location())
	cutoff := today.AddDate(0, 0, -days)

	return d.After(cutoff)
}
