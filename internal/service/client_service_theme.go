package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type themeService struct {
	settings SettingsStorage
	state    *utils.Observable[models.Theme]

	logger *logger.Logger
}

func NewThemeService(settings SettingsStorage, logger *logger.Logger) ThemeService {
	return &themeService{
		settings: settings,
		state:    utils.NewObservable(models.ThemeSystem),
		logger:   logger,
	}
}

func (s *themeService) Init(ctx context.Context) {
	s.state.Set(s.settings.LoadTheme(ctx))
}

func (s *themeService) Theme() models.Theme {
	return s.state.Get()
}

func (s *themeService) State() *utils.Observable[models.Theme] {
	return s.state
}

func (s *themeService) SetTheme(ctx context.Context, theme models.Theme) {
	theme = models.ParseTheme(string(theme))
	s.state.Set(theme)
	s.persist(ctx, theme)
}

func (s *themeService) Toggle(ctx context.Context) models.Theme {
	theme := s.state.Update(func(t models.Theme) models.Theme { return t.Next() })
	s.persist(ctx, theme)
	return theme
}

func (s *themeService) persist(ctx context.Context, theme models.Theme) {
	if err := s.settings.SaveTheme(ctx, theme); err != nil {
		s.logger.Warn().Err(err).Str("func", "themeService.persist").Msg("failed to persist theme")
	}
}
