// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
)

type periodicWorker struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)

	logger *logger.Logger
}

// NewPeriodicWorker calls tick every interval until the context ends.
func NewPeriodicWorker(name string, interval time.Duration, tick func(ctx context.Context), logger *logger.Logger) Worker {
	return &periodicWorker{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

func (w *periodicWorker) Run(ctx context.Context) {
	w.logger.Debug().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")
	defer w.logger.Debug().Str("worker", w.name).Msg("worker stopped")

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.tick(ctx)
		}
	}
}

// NewLinkWatcherWorker samples the local network link so that transitions
// reach the connectivity probe.
func NewLinkWatcherWorker(watcher service.LinkWatcher, interval time.Duration, logger *logger.Logger) Worker {
	return NewPeriodicWorker("link-watcher", interval, func(context.Context) {
		watcher.Poll()
	}, logger)
}

// NewCacheCleanupWorker prunes clean entries that fell out of the retention
// window while the client kept running.
func NewCacheCleanupWorker(cache service.DiaryCacheService, interval time.Duration, logger *logger.Logger) Worker {
	return NewPeriodicWorker("cache-cleanup", interval, func(ctx context.Context) {
		if removed := cache.RunCacheCleanup(ctx); removed > 0 {
			logger.Info().Str("worker", "cache-cleanup").Int("removed", removed).Msg("pruned cache entries")
		}
	}, logger)
}

// NewClientWorkers builds the client's background worker group.
func NewClientWorkers(cfg config.ClientWorkers, services *service.ClientServices, logger *logger.Logger) *Workers {
	return NewWorkers(
		NewLinkWatcherWorker(services.LinkWatcher, cfg.LinkPollInterval, logger),
		NewCacheCleanupWorker(services.DiaryCache, cfg.CleanupInterval, logger),
	)
}
