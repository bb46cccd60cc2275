// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// diaryCacheService holds the in-memory diary cache and its push scheduler
// (see client_service_sync_job.go).
//
// mu guards entries and the session fields. It is held while the durable
// mirror is written so both stay in the same order, but never across the
// liveness probe, a remote save or a timer wait.
type diaryCacheService struct {
	cache   DurableCache
	adapter adapter.DiaryAdapter
	probe   ConnectivityProbe
	config  SyncConfigService
	clock   utils.Clock

	syncState *syncStatePublisher
	stats     *utils.Observable[models.CacheStats]
	statsMu   sync.Mutex

	mu          sync.Mutex
	entries     map[string]models.CacheEntry
	initialized bool
	session     context.Context
	sessionID   uint64
	timer       utils.Timer
	timerSeq    uint64

	// pushMu serialises push cycles.
	pushMu sync.Mutex

	logger *logger.Logger
}

// NewDiaryCacheService wires the cache engine. Nothing is loaded and no
// timer is armed until Init.
func NewDiaryCacheService(
	cache DurableCache,
	diaryAdapter adapter.DiaryAdapter,
	probe ConnectivityProbe,
	config SyncConfigService,
	clock utils.Clock,
	logger *logger.Logger,
) DiaryCacheService {
	return &diaryCacheService{
		cache:     cache,
		adapter:   diaryAdapter,
		probe:     probe,
		config:    config,
		clock:     clock,
		syncState: newSyncStatePublisher(clock),
		stats:     utils.NewObservable(models.CacheStats{Entries: []models.CacheStatsEntry{}}),
		entries:   make(map[string]models.CacheEntry),
		logger:    logger,
	}
}

func (s *diaryCacheService) Init(ctx context.Context) {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = true
	s.sessionID++
	s.session = context.WithoutCancel(ctx)
	s.entries = s.cache.Load(ctx)
	s.mu.Unlock()

	removed := s.RunCacheCleanup(ctx)

	s.mu.Lock()
	pending := s.countDirtyLocked()
	if pending > 0 {
		s.scheduleLocked()
	}
	total := len(s.entries)
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "diaryCacheService.Init").
		Int("cached", total).
		Int("pending", pending).
		Int("pruned", removed).
		Msg("diary cache initialised")
}

func (s *diaryCacheService) Cleanup() {
	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = false
	s.sessionID++
	s.cancelTimerLocked()
	s.mu.Unlock()

	s.syncState.stop()
}

func (s *diaryCacheService) Stats() *utils.Observable[models.CacheStats] {
	return s.stats
}

func (s *diaryCacheService) SyncState() *utils.Observable[models.SyncState] {
	return s.syncState.state
}

func (s *diaryCacheService) UpdateLocalCache(ctx context.Context, date, content string) {
	s.mu.Lock()
	entry := models.CacheEntry{
		Content:         content,
		LocalUpdatedAt:  s.clock.Now().UnixMilli(),
		ServerUpdatedAt: s.entries[date].ServerUpdatedAt,
		IsDirty:         true,
	}
	s.entries[date] = entry
	s.saveLocked(ctx, date, entry)
	s.scheduleLocked()
	s.mu.Unlock()

	s.publishStats()
}

func (s *diaryCacheService) UpdateFromServer(ctx context.Context, date string, diary *models.Diary) {
	s.mu.Lock()
	if existing, ok := s.entries[date]; ok && existing.IsDirty {
		s.mu.Unlock()
		return
	}

	var entry models.CacheEntry
	if diary != nil {
		entry.Content = diary.Content
		entry.ServerUpdatedAt = diary.Updated
	}
	entry.LocalUpdatedAt = s.clock.Now().UnixMilli()

	s.entries[date] = entry
	if s.cache.IsWithinRetention(date, s.config.Config().CacheDays) {
		s.saveLocked(ctx, date, entry)
	}
	s.mu.Unlock()

	s.publishStats()
}

func (s *diaryCacheService) LoadDiary(ctx context.Context, date string) string {
	if s.probe.CheckOnlineStatus(ctx) {
		diary, err := s.adapter.GetDiary(ctx, date)
		if err != nil {
			s.logger.Debug().Err(err).Str("func", "diaryCacheService.LoadDiary").Str("date", date).Msg("remote read failed, using cache")
		} else {
			s.UpdateFromServer(ctx, date, diary)
		}
	}
	return s.GetDisplayContent(date)
}

func (s *diaryCacheService) GetDisplayContent(date string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[date].Content
}

func (s *diaryCacheService) GetCachedContent(date string) (models.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[date]
	return entry, ok
}

func (s *diaryCacheService) HasDirtyCache(date string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[date].IsDirty
}

// GetDirtyEntries returns the dirty entries sorted by date, oldest first.
func (s *diaryCacheService) GetDirtyEntries() []models.DirtyEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := make([]models.DirtyEntry, 0)
	for _, date := range slices.Sorted(maps.Keys(s.entries)) {
		entry := s.entries[date]
		if !entry.IsDirty {
			continue
		}
		dirty = append(dirty, models.DirtyEntry{
			Date:           date,
			Content:        entry.Content,
			LocalUpdatedAt: entry.LocalUpdatedAt,
		})
	}
	return dirty
}

func (s *diaryCacheService) GetUnsyncedEntries() []models.PersistedEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	unsynced := make([]models.PersistedEntry, 0)
	for _, date := range slices.Sorted(maps.Keys(s.entries)) {
		if entry := s.entries[date]; entry.IsDirty {
			unsynced = append(unsynced, models.PersistedEntry{Date: date, CacheEntry: entry})
		}
	}
	return unsynced
}

func (s *diaryCacheService) MarkAsSynced(ctx context.Context, date, serverUpdatedAt string) {
	s.mu.Lock()
	entry, ok := s.entries[date]
	if !ok {
		s.mu.Unlock()
		return
	}
	entry.ServerUpdatedAt = serverUpdatedAt
	entry.IsDirty = false
	s.entries[date] = entry
	s.persistCleanLocked(ctx, date, entry)
	s.mu.Unlock()

	s.publishStats()
}

// markPushed applies a successful save of pushed. The entry only becomes
// clean if it still holds the pushed revision; a newer local edit stays
// dirty for the next cycle.
func (s *diaryCacheService) markPushed(ctx context.Context, pushed models.DirtyEntry, serverUpdatedAt string) {
	s.mu.Lock()
	entry, ok := s.entries[pushed.Date]
	if !ok {
		s.mu.Unlock()
		return
	}

	entry.ServerUpdatedAt = serverUpdatedAt
	if entry.LocalUpdatedAt == pushed.LocalUpdatedAt && entry.Content == pushed.Content {
		entry.IsDirty = false
	}
	s.entries[pushed.Date] = entry

	if entry.IsDirty {
		s.saveLocked(ctx, pushed.Date, entry)
	} else {
		s.persistCleanLocked(ctx, pushed.Date, entry)
	}
	s.mu.Unlock()

	s.publishStats()
}

func (s *diaryCacheService) ClearCache(ctx context.Context, date string) {
	s.mu.Lock()
	delete(s.entries, date)
	s.removeLocked(ctx, date)
	s.mu.Unlock()

	s.publishStats()
}

func (s *diaryCacheService) ClearAllCache(ctx context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]models.CacheEntry)
	if persisted := s.cache.LoadAll(ctx); len(persisted) > 0 {
		s.removeLocked(ctx, slices.Collect(maps.Keys(persisted))...)
	}
	s.mu.Unlock()

	s.publishStats()
}

func (s *diaryCacheService) ClearSyncedCache(ctx context.Context) {
	s.mu.Lock()
	var clean []string
	for date, entry := range s.entries {
		if !entry.IsDirty {
			clean = append(clean, date)
		}
	}
	for _, date := range clean {
		delete(s.entries, date)
	}
	if len(clean) > 0 {
		s.removeLocked(ctx, clean...)
	}
	s.mu.Unlock()

	s.publishStats()
}

func (s *diaryCacheService) RunCacheCleanup(ctx context.Context) int {
	days := s.config.Config().CacheDays

	s.mu.Lock()
	// The prune decides from a read of the medium, so edits must not land
	// between that read and its deletes.
	removed := s.cache.PruneOlderThan(ctx, days)
	for date, entry := range s.entries {
		if !entry.IsDirty && !s.cache.IsWithinRetention(date, days) {
			delete(s.entries, date)
		}
	}
	s.mu.Unlock()

	s.publishStats()
	return removed
}

// persistCleanLocked mirrors a clean entry: kept on disk inside the
// retention window, dropped outside it.
func (s *diaryCacheService) persistCleanLocked(ctx context.Context, date string, entry models.CacheEntry) {
	if s.cache.IsWithinRetention(date, s.config.Config().CacheDays) {
		s.saveLocked(ctx, date, entry)
		return
	}
	s.removeLocked(ctx, date)
}

func (s *diaryCacheService) saveLocked(ctx context.Context, date string, entry models.CacheEntry) {
	if err := s.cache.Save(ctx, date, entry); err != nil {
		s.logger.Warn().Err(err).Str("func", "diaryCacheService.save").Str("date", date).Msg("failed to persist cache entry")
	}
}

func (s *diaryCacheService) removeLocked(ctx context.Context, dates ...string) {
	if err := s.cache.Remove(ctx, dates...); err != nil {
		s.logger.Warn().Err(err).Str("func", "diaryCacheService.remove").Strs("dates", dates).Msg("failed to remove cache entries")
	}
}

func (s *diaryCacheService) countDirtyLocked() int {
	n := 0
	for _, entry := range s.entries {
		if entry.IsDirty {
			n++
		}
	}
	return n
}

// publishStats recomputes the statistics from the current entries. statsMu
// keeps concurrent publications from storing an older snapshot last.
func (s *diaryCacheService) publishStats() {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	s.mu.Lock()
	stats := models.CacheStats{
		TotalCached: len(s.entries),
		Entries:     make([]models.CacheStatsEntry, 0, len(s.entries)),
	}
	for date, entry := range s.entries {
		if entry.IsDirty {
			stats.PendingSync++
		}
		stats.Entries = append(stats.Entries, models.CacheStatsEntry{
			Date:           date,
			IsDirty:        entry.IsDirty,
			LocalUpdatedAt: entry.LocalUpdatedAt,
		})
	}
	s.mu.Unlock()

	slices.SortFunc(stats.Entries, func(a, b models.CacheStatsEntry) int {
		return cmp.Compare(b.Date, a.Date)
	})
	s.stats.Set(stats)
}
