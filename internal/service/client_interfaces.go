package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// DurableCache is the persistent mirror of the in-memory diary cache.
// Reads never fail; they return what could be decoded. Implemented by
// *store.CacheStore.
type DurableCache interface {
	// Load returns every persisted entry, dropping corrupt ones from the medium.
	Load(ctx context.Context) map[string]models.CacheEntry
	// LoadAll returns every decodable persisted entry.
	LoadAll(ctx context.Context) map[string]models.CacheEntry
	Save(ctx context.Context, date string, entry models.CacheEntry) error
	Remove(ctx context.Context, dates ...string) error
	// PruneOlderThan deletes clean entries outside the retention window and
	// returns how many were removed.
	PruneOlderThan(ctx context.Context, days int) int
	IsWithinRetention(date string, days int) bool
}

// SettingsStorage persists user preferences. Implemented by *store.SettingsStore.
type SettingsStorage interface {
	LoadSyncConfig(ctx context.Context) models.SyncConfig
	SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error
	LoadTheme(ctx context.Context) models.Theme
	SaveTheme(ctx context.Context, theme models.Theme) error
}

// ConnectivityProbe maintains the cached "is the remote reachable" signal.
type ConnectivityProbe interface {
	// CheckOnlineStatus returns the cached result if a probe completed within
	// the last three seconds and none is in flight. Otherwise it checks the
	// local link and, when the link is up and no probe is running, issues a
	// bounded liveness request.
	CheckOnlineStatus(ctx context.Context) bool

	// IsOnline returns the last known status without probing.
	IsOnline() bool

	// State exposes the probe state for subscribers.
	State() *utils.Observable[models.OnlineState]

	// Init subscribes to link transitions and runs the first probe.
	// Calling Init twice without Cleanup is a no-op.
	Init(ctx context.Context)

	// Cleanup detaches the link subscription.
	Cleanup()
}

// LinkEvents publishes local network link transitions.
type LinkEvents interface {
	// Subscribe registers fn for every transition (true means the link came
	// up) and returns a function that removes it.
	Subscribe(fn func(up bool)) (unsubscribe func())
}

// LinkWatcher turns periodic link polls into [LinkEvents].
type LinkWatcher interface {
	LinkEvents

	// Poll samples the link once and notifies subscribers if it changed.
	Poll()
}

// SyncConfigService owns the user-tunable sync settings.
type SyncConfigService interface {
	// Init loads the persisted settings, falling back to defaults.
	Init(ctx context.Context)

	// Config returns the live settings.
	Config() models.SyncConfig

	// State exposes the settings for subscribers.
	State() *utils.Observable[models.SyncConfig]

	// SetAutoSaveInterval clamps ms to [1000, 60000], stores and persists it.
	SetAutoSaveInterval(ctx context.Context, ms int64) models.SyncConfig

	// SetCacheDays clamps days to [1, 30], stores and persists it.
	SetCacheDays(ctx context.Context, days int) models.SyncConfig

	// ResetConfig restores and persists the defaults.
	ResetConfig(ctx context.Context) models.SyncConfig
}

// ThemeService owns the colour scheme preference.
type ThemeService interface {
	Init(ctx context.Context)
	Theme() models.Theme
	SetTheme(ctx context.Context, theme models.Theme)
	// Toggle advances to the next theme and returns it.
	Toggle(ctx context.Context) models.Theme
	State() *utils.Observable[models.Theme]
}

// DiaryCacheService is the offline-first diary cache engine.
//
// Local edits always win: a dirty entry is never overwritten by server data
// until a push confirms it. Pushes are debounced by the configured auto-save
// interval and retried at that interval for as long as the remote is
// unreachable.
type DiaryCacheService interface {
	// Init loads the durable cache, prunes it and schedules a push if dirty
	// entries survived the previous session. Calling Init twice without
	// Cleanup is a no-op.
	Init(ctx context.Context)

	// Cleanup cancels the pending push timer. Results of a push still in
	// flight are discarded.
	Cleanup()

	// UpdateLocalCache records a local edit for date, marks it dirty,
	// persists it and re-arms the debounce timer.
	UpdateLocalCache(ctx context.Context, date, content string)

	// UpdateFromServer replaces a clean or missing entry with the remote
	// diary (nil means empty content). Dirty entries are left untouched.
	UpdateFromServer(ctx context.Context, date string, diary *models.Diary)

	// LoadDiary refreshes date from the remote when it is reachable and
	// returns the content to display.
	LoadDiary(ctx context.Context, date string) string

	// GetDisplayContent returns the cached content for date, or "".
	GetDisplayContent(date string) string

	// GetCachedContent returns the entry for date and whether it exists.
	GetCachedContent(date string) (models.CacheEntry, bool)

	// HasDirtyCache reports whether date has an unconfirmed local edit.
	HasDirtyCache(date string) bool

	// GetDirtyEntries returns date and content of every dirty entry.
	GetDirtyEntries() []models.DirtyEntry

	// GetUnsyncedEntries returns every dirty entry with its full state.
	GetUnsyncedEntries() []models.PersistedEntry

	// MarkAsSynced clears the dirty flag for date and records the server
	// timestamp. Outside the retention window the entry is dropped from
	// durable storage but kept in memory. Unknown dates are ignored.
	MarkAsSynced(ctx context.Context, date, serverUpdatedAt string)

	// ForceSyncNow cancels the pending timer and pushes every dirty entry
	// immediately. It returns true only if nothing is left dirty, and never
	// reschedules itself.
	ForceSyncNow(ctx context.Context) bool

	// ScheduleSync arms a debounced push when dirty entries are waiting and
	// none is scheduled. Callers use it to resume retries after a failed
	// ForceSyncNow.
	ScheduleSync()

	// ClearCache forgets date in memory and on disk.
	ClearCache(ctx context.Context, date string)

	// ClearAllCache forgets every entry, dirty ones included.
	ClearAllCache(ctx context.Context)

	// ClearSyncedCache forgets every clean entry.
	ClearSyncedCache(ctx context.Context)

	// RunCacheCleanup prunes clean entries outside the retention window and
	// returns how many were removed from durable storage.
	RunCacheCleanup(ctx context.Context) int

	// Stats exposes the cache statistics.
	Stats() *utils.Observable[models.CacheStats]

	// SyncState exposes the push status.
	SyncState() *utils.Observable[models.SyncState]
}
