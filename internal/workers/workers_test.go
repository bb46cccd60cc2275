// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
)

// blockingWorker counts runs and blocks until its context ends.
type blockingWorker struct {
	started atomic.Int64
	stopped atomic.Int64
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Add(1)
	<-ctx.Done()
	w.stopped.Add(1)
}

type spyLinkWatcher struct {
	polls atomic.Int64
}

func (s *spyLinkWatcher) Poll() { s.polls.Add(1) }
func (s *spyLinkWatcher) Subscribe(func(bool)) func() { return func() {} }

type spyDiaryCache struct {
	service.DiaryCacheService
	cleanups atomic.Int64
}

func (s *spyDiaryCache) RunCacheCleanup(context.Context) int {
	s.cleanups.Add(1)
	return 1
}

// ── Workers ──────────────────────────────────────────────────────────────────

func TestWorkers_StartStop(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(w1, w2)

	ws.Start(context.Background())
	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, time.Millisecond)

	ws.Stop()
	assert.EqualValues(t, 1, w1.stopped.Load())
	assert.EqualValues(t, 1, w2.stopped.Load())
}

func TestWorkers_RestartStopsPreviousRun(t *testing.T) {
	w := &blockingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return w.started.Load() == 2 }, time.Second, time.Millisecond)
	assert.EqualValues(t, 1, w.stopped.Load())

	ws.Stop()
	assert.EqualValues(t, 2, w.stopped.Load())
}

func TestWorkers_ParentCancelStopsWorkers(t *testing.T) {
	w := &blockingWorker{}
	ws := NewWorkers(w)
	ctx, cancel := context.WithCancel(context.Background())

	ws.Start(ctx)
	cancel()

	require.Eventually(t, func() bool { return w.stopped.Load() == 1 }, time.Second, time.Millisecond)
	ws.Stop()
}

func TestWorkers_StopWithoutStart_NoPanic(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Stop() })
	assert.NotPanics(t, func() { (&Workers{}).Stop() })
}

// ── periodic workers ─────────────────────────────────────────────────────────

func TestPeriodicWorker_TicksUntilCancelled(t *testing.T) {
	var ticks atomic.Int64
	w := NewPeriodicWorker("test", 5*time.Millisecond, func(context.Context) { ticks.Add(1) }, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load(), "no ticks after cancel")
}

func TestNewClientWorkers_PollsAndCleans(t *testing.T) {
	watcher := &spyLinkWatcher{}
	cache := &spyDiaryCache{}
	services := &service.ClientServices{LinkWatcher: watcher, DiaryCache: cache}

	ws := NewClientWorkers(config.ClientWorkers{
		LinkPollInterval: 2 * time.Millisecond,
		CleanupInterval:  3 * time.Millisecond,
	}, services, logger.Nop())

	ws.Start(context.Background())
	require.Eventually(t, func() bool {
		return watcher.polls.Load() >= 2 && cache.cleanups.Load() >= 2
	}, time.Second, time.Millisecond)
	ws.Stop()
}
