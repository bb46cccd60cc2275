package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService reports cfg.Version, which must be set.
func NewAppInfoService(cfg config.ServerApp, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		logger.Error().Msg("server version is empty")
		return nil, ErrVersionIsNotSpecified
	}
	return &appInfoService{version: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
