package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type syncConfigService struct {
	settings SettingsStorage
	state    *utils.Observable[models.SyncConfig]

	logger *logger.Logger
}

// NewSyncConfigService starts with the defaults; Init replaces them with the
// persisted settings.
func NewSyncConfigService(settings SettingsStorage, logger *logger.Logger) SyncConfigService {
	return &syncConfigService{
		settings: settings,
		state:    utils.NewObservable(models.DefaultSyncConfig()),
		logger:   logger,
	}
}

func (s *syncConfigService) Init(ctx context.Context) {
	s.state.Set(s.settings.LoadSyncConfig(ctx))
}

func (s *syncConfigService) Config() models.SyncConfig {
	return s.state.Get()
}

func (s *syncConfigService) State() *utils.Observable[models.SyncConfig] {
	return s.state
}

func (s *syncConfigService) SetAutoSaveInterval(ctx context.Context, ms int64) models.SyncConfig {
	return s.update(ctx, func(c models.SyncConfig) models.SyncConfig {
		c.AutoSaveInterval = models.ClampAutoSaveInterval(ms)
		return c
	})
}

func (s *syncConfigService) SetCacheDays(ctx context.Context, days int) models.SyncConfig {
	return s.update(ctx, func(c models.SyncConfig) models.SyncConfig {
		c.CacheDays = models.ClampCacheDays(days)
		return c
	})
}

func (s *syncConfigService) ResetConfig(ctx context.Context) models.SyncConfig {
	return s.update(ctx, func(models.SyncConfig) models.SyncConfig {
		return models.DefaultSyncConfig()
	})
}

func (s *syncConfigService) update(ctx context.Context, fn func(models.SyncConfig) models.SyncConfig) models.SyncConfig {
	cfg := s.state.Update(fn)
	if err := s.settings.SaveSyncConfig(ctx, cfg); err != nil {
		s.logger.Warn().Err(err).Str("func", "syncConfigService.update").Msg("failed to persist sync config")
	}
	return cfg
}
