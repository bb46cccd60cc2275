package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/workers"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// calls records the lifecycle events of every fake in order.
type calls []string

func (c *calls) add(s string) { *c = append(*c, s) }

type fakeLinkWatcher struct {
	service.LinkWatcher
	log *calls
}

func (f *fakeLinkWatcher) Poll() { f.log.add("link.poll") }

type fakeOnline struct {
	service.ConnectivityProbe
	log *calls
}

func (f *fakeOnline) Init(context.Context) { f.log.add("online.init") }
func (f *fakeOnline) Cleanup() { f.log.add("online.cleanup") }

type fakeConfig struct {
	service.SyncConfigService
	log *calls
}

func (f *fakeConfig) Init(context.Context) { f.log.add("config.init") }

type fakeTheme struct {
	service.ThemeService
	log *calls
}

func (f *fakeTheme) Init(context.Context) { f.log.add("theme.init") }

type fakeCache struct {
	service.DiaryCacheService
	log      *calls
	flushOK  bool
	flushCtx context.Context
	flushErr error
}

func (f *fakeCache) Init(context.Context) { f.log.add("cache.init") }
func (f *fakeCache) Cleanup() { f.log.add("cache.cleanup") }
func (f *fakeCache) ForceSyncNow(ctx context.Context) bool {
	f.log.add("cache.flush")
	f.flushCtx = ctx
	f.flushErr = ctx.Err()
	return f.flushOK
}
func (f *fakeCache) GetDirtyEntries() []models.DirtyEntry {
	return []models.DirtyEntry{{Date: "2024-01-15"}}
}

type fakeUI struct {
	log *calls
	err error
}

func (f *fakeUI) Run(context.Context) error {
	f.log.add("ui.run")
	return f.err
}

func newTestApp(log *calls, ui UI, flushOK bool) (*App, *fakeCache) {
	cache := &fakeCache{log: log, flushOK: flushOK}
	services := &service.ClientServices{
		LinkWatcher:       &fakeLinkWatcher{log: log},
		OnlineService:     &fakeOnline{log: log},
		SyncConfigService: &fakeConfig{log: log},
		ThemeService:      &fakeTheme{log: log},
		DiaryCache:        cache,
	}
	return NewApp(services, ui, workers.NewWorkers(), logger.Nop()), cache
}

func TestApp_Run_Lifecycle(t *testing.T) {
	var log calls
	app, cache := newTestApp(&log, &fakeUI{log: &log}, true)

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, calls{
		"config.init", "theme.init", "link.poll", "online.init", "cache.init",
		"ui.run",
		"cache.flush",
		"cache.cleanup", "online.cleanup",
	}, log)

	_, hasDeadline := cache.flushCtx.Deadline()
	assert.True(t, hasDeadline, "exit flush is bounded")
}

func TestApp_Run_FlushesEvenWhenContextCancelled(t *testing.T) {
	var log calls
	app, cache := newTestApp(&log, &fakeUI{log: &log}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.Run(ctx))
	assert.Contains(t, log, "cache.flush")
	assert.NoError(t, cache.flushErr)
}

func TestApp_Run_UIError(t *testing.T) {
	var log calls
	uiErr := errors.New("terminal gone")
	app, _ := newTestApp(&log, &fakeUI{log: &log, err: uiErr}, true)

	err := app.Run(context.Background())

	require.ErrorIs(t, err, uiErr)
	assert.Contains(t, log, "cache.flush", "unsaved entries are flushed on failure too")
	assert.Contains(t, log, "cache.cleanup")
}
