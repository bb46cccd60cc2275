package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/client"
	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/internal/tui"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/internal/workers"
	"github.com/MKhiriev/go-diary-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("go-diary-client", cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	clock := utils.SystemClock()

	diaryAdapter, err := adapter.NewHTTPDiaryAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Err(err).Msg("create diary adapter")
		return fmt.Errorf("create diary adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, clock, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages.Cache, storages.Settings, diaryAdapter, utils.NewInterfaceLinkChecker(), clock, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", buildInfo.String()).Msg("starting diary client")
	ui := tui.New(services, buildInfo, clock, log)

	app := client.NewApp(services, ui, workers.NewClientWorkers(cfg.Workers, services, log), log)
	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}
