package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
)

// ClientServices bundles the client engine and owns its session lifecycle.
type ClientServices struct {
	LinkWatcher       LinkWatcher
	OnlineService     ConnectivityProbe
	SyncConfigService SyncConfigService
	ThemeService      ThemeService
	DiaryCache        DiaryCacheService

	mu          sync.Mutex
	initialized bool
}

func NewClientServices(
	cache DurableCache,
	settings SettingsStorage,
	diaryAdapter adapter.DiaryAdapter,
	link utils.LinkChecker,
	clock utils.Clock,
	logger *logger.Logger,
) *ClientServices {
	watcher := NewLinkWatcher(link, logger)
	online := NewOnlineService(diaryAdapter, link, watcher, clock, logger)
	syncConfig := NewSyncConfigService(settings, logger)

	return &ClientServices{
		LinkWatcher:       watcher,
		OnlineService:     online,
		SyncConfigService: syncConfig,
		ThemeService:      NewThemeService(settings, logger),
		DiaryCache:        NewDiaryCacheService(cache, diaryAdapter, online, syncConfig, clock, logger),
	}
}

// Init starts a session: settings are loaded, link transitions are
// attached and the cache is restored. A second Init before Cleanup is a
// no-op.
func (s *ClientServices) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	s.initialized = true

	s.SyncConfigService.Init(ctx)
	s.ThemeService.Init(ctx)
	s.LinkWatcher.Poll()
	s.OnlineService.Init(ctx)
	s.DiaryCache.Init(ctx)
}

// Cleanup ends the session: the pending push timer is cancelled and the link
// subscription is detached. Init may be called again afterwards.
func (s *ClientServices) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	s.initialized = false

	s.DiaryCache.Cleanup()
	s.OnlineService.Cleanup()
}
