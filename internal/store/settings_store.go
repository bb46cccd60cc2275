package store

import (
	"context"
	"encoding/json"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// Keys of the user settings in the local key-value medium.
const (
	SyncConfigKey = "diarum_sync_config"
	ThemeKey      = "theme"
)

// SettingsStore persists the sync configuration and theme preference.
// Like [CacheStore], reads fall back to defaults instead of failing.
type SettingsStore struct {
	kv     KeyValueRepository
	logger *logger.Logger
}

func NewSettingsStore(kv KeyValueRepository, logger *logger.Logger) *SettingsStore {
	return &SettingsStore{kv: kv, logger: logger}
}

// LoadSyncConfig returns the stored config merged over the defaults and
// clamped into range. Missing or corrupt values yield the defaults.
func (s *SettingsStore) LoadSyncConfig(ctx context.Context) models.SyncConfig {
	defaults := models.DefaultSyncConfig()

	raw, found, err := s.kv.Get(ctx, SyncConfigKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "SettingsStore.LoadSyncConfig").Msg("settings storage unavailable, using defaults")
		return defaults
	}
	if !found {
		return defaults
	}

	var stored models.SyncConfig
	if err = json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn().Err(err).Str("func", "SettingsStore.LoadSyncConfig").Msg("corrupt sync config, using defaults")
		return defaults
	}

	if err = mergo.Merge(&stored, defaults); err != nil {
		return defaults
	}

	return stored.Clamped()
}

// SaveSyncConfig persists cfg as JSON.
func (s *SettingsStore) SaveSyncConfig(ctx context.Context, cfg models.SyncConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode sync config: %w", err)
	}
	return s.kv.Set(ctx, SyncConfigKey, string(payload))
}

// LoadTheme returns the stored theme, or [models.ThemeSystem].
func (s *SettingsStore) LoadTheme(ctx context.Context) models.Theme {
	raw, found, err := s.kv.Get(ctx, ThemeKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "SettingsStore.LoadTheme").Msg("settings storage unavailable, using system theme")
		return models.ThemeSystem
	}
	if !found {
		return models.ThemeSystem
	}
	return models.ParseTheme(raw)
}

func (s *SettingsStore) SaveTheme(ctx context.Context, theme models.Theme) error {
	return s.kv.Set(ctx, ThemeKey, string(theme))
}
