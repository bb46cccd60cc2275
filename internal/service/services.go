package service

import (
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	DiaryService   DiaryService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		DiaryService:   NewDiaryService(storages.DiaryRepository, logger, NewDiaryValidationService()),
		AppInfoService: appInfoService,
	}, nil
}
