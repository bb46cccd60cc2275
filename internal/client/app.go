package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/workers"
)

// exitFlushTimeout bounds the final push attempt on exit.
const exitFlushTimeout = 10 * time.Second

type App struct {
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers *workers.Workers, logger *logger.Logger) *App {
	return &App{
		services: services,
		workers:  workers,
		ui:       ui,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.services.Init(ctx)
	a.workers.Start(ctx)
	a.logger.Info().Msg("client session started")

	uiErr := a.ui.Run(ctx)

	a.shutdown(ctx)

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	return nil
}

func (a *App) shutdown(ctx context.Context) {
	a.workers.Stop()

	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), exitFlushTimeout)
	defer cancel()

	if a.services.DiaryCache.ForceSyncNow(flushCtx) {
		a.logger.Info().Msg("all entries saved before exit")
	} else {
		a.logger.Warn().
			Int("pending", len(a.services.DiaryCache.GetDirtyEntries())).
			Msg("unsaved entries kept locally for the next session")
	}

	a.services.Cleanup()
	a.logger.Info().Msg("client session finished")
}
