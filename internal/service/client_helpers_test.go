package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/mock"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

var (
	testToday   = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	errMemKV    = errors.New("kv medium unavailable")
	testCacheNS = "diarum_cache"
)

// memKV is an in-memory store.KeyValueRepository.
type memKV struct {
	mu   sync.Mutex
	data map[string]string
	fail bool

	// afterList runs once ListByPrefix has taken its snapshot.
	afterList func()
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", false, errMemKV
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errMemKV
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errMemKV
	}
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memKV) ListByPrefix(_ context.Context, prefix string) (map[string]string, error) {
	m.mu.Lock()
	if m.fail {
		m.mu.Unlock()
		return nil, errMemKV
	}
	out := make(map[string]string)
	for k, v := range m.data {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	hook := m.afterList
	m.mu.Unlock()

	if hook != nil {
		hook()
	}
	return out, nil
}

func (m *memKV) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memKV) setFail(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = fail
}

// linkFunc is a utils.LinkChecker backed by a function.
type linkFunc func() bool

func (f linkFunc) HasLink() bool { return f() }

// fakeProbe is a ConnectivityProbe whose answer is set by the test.
type fakeProbe struct {
	online atomic.Bool
	checks atomic.Int64
	state  *utils.Observable[models.OnlineState]
}

func newFakeProbe(online bool) *fakeProbe {
	p := &fakeProbe{state: utils.NewObservable(models.OnlineState{IsOnline: online})}
	p.online.Store(online)
	return p
}

func (p *fakeProbe) CheckOnlineStatus(context.Context) bool {
	p.checks.Add(1)
	return p.online.Load()
}

func (p *fakeProbe) IsOnline() bool { return p.online.Load() }
func (p *fakeProbe) State() *utils.Observable[models.OnlineState] { return p.state }
func (p *fakeProbe) Init(context.Context) {}
func (p *fakeProbe) Cleanup() {}

// engineHarness wires a diary cache engine over in-memory collaborators.
type engineHarness struct {
	ctx     context.Context
	clock   *mock.ManualClock
	kv      *memKV
	cache   *store.CacheStore
	adapter *mock.MockDiaryAdapter
	probe   *fakeProbe
	config  SyncConfigService
	engine  *diaryCacheService
}

func newEngineHarness(t *testing.T) *engineHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &engineHarness{
		ctx:     context.Background(),
		clock:   mock.NewManualClock(testToday),
		kv:      newMemKV(),
		adapter: mock.NewMockDiaryAdapter(ctrl),
		probe:   newFakeProbe(true),
	}
	h.cache = store.NewCacheStore(h.kv, testCacheNS, 0, h.clock, logger.Nop())
	h.config = NewSyncConfigService(store.NewSettingsStore(h.kv, logger.Nop()), logger.Nop())

	engine, isEngine := NewDiaryCacheService(h.cache, h.adapter, h.probe, h.config, h.clock, logger.Nop()).(*diaryCacheService)
	require.True(t, isEngine)
	h.engine = engine
	return h
}

func (h *engineHarness) key(date string) string {
	return testCacheNS + "_" + date
}

func (h *engineHarness) persisted(t *testing.T, date string) (models.CacheEntry, bool) {
	t.Helper()
	entry, ok := h.cache.LoadAll(h.ctx)[date]
	return entry, ok
}

func (h *engineHarness) seed(t *testing.T, date string, entry models.CacheEntry) {
	t.Helper()
	require.NoError(t, h.cache.Save(h.ctx, date, entry))
}

func (h *engineHarness) syncState() models.SyncState {
	return h.engine.SyncState().Get()
}

func okResp(updated string) models.SaveDiaryResponse {
	return models.SaveDiaryResponse{Success: true, Updated: updated}
}

func saveReq(date, content string) models.SaveDiaryRequest {
	return models.SaveDiaryRequest{Date: date, Content: content}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
