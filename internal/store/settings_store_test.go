package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/mock"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
)

func TestSettingsStore_LoadSyncConfig(t *testing.T) {
	tests := []struct {
		name  string
		value string
		found bool
		err   error
		want  models.SyncConfig
	}{
		{name: "absent", want: models.DefaultSyncConfig()},
		{name: "storage error", err: assert.AnError, want: models.DefaultSyncConfig()},
		{name: "corrupt", value: "{", found: true, want: models.DefaultSyncConfig()},
		{
			name:  "partial merges defaults",
			value: `{"cacheDays":7}`,
			found: true,
			want:  models.SyncConfig{AutoSaveInterval: models.DefaultAutoSaveInterval, CacheDays: 7},
		},
		{
			name:  "out of range is clamped",
			value: `{"autoSaveInterval":100,"cacheDays":90}`,
			found: true,
			want:  models.SyncConfig{AutoSaveInterval: models.MinAutoSaveInterval, CacheDays: models.MaxCacheDays},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mock.NewMockKeyValueRepository(ctrl)
			kv.EXPECT().Get(gomock.Any(), store.SyncConfigKey).Return(tt.value, tt.found, tt.err)

			s := store.NewSettingsStore(kv, logger.Nop())
			assert.Equal(t, tt.want, s.LoadSyncConfig(context.Background()))
		})
	}
}

func TestSettingsStore_SaveSyncConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	kv.EXPECT().Set(gomock.Any(), store.SyncConfigKey, `{"autoSaveInterval":5000,"cacheDays":2}`).Return(nil)

	s := store.NewSettingsStore(kv, logger.Nop())
	require.NoError(t, s.SaveSyncConfig(context.Background(), models.SyncConfig{AutoSaveInterval: 5000, CacheDays: 2}))
}

func TestSettingsStore_Theme(t *testing.T) {
	kv := newSQLiteKV(t)
	s := store.NewSettingsStore(kv, logger.Nop())
	ctx := context.Background()

	assert.Equal(t, models.ThemeSystem, s.LoadTheme(ctx))

	require.NoError(t, s.SaveTheme(ctx, models.ThemeDark))
	assert.Equal(t, models.ThemeDark, s.LoadTheme(ctx))

	require.NoError(t, kv.Set(ctx, store.ThemeKey, "neon"))
	assert.Equal(t, models.ThemeSystem, s.LoadTheme(ctx))
}
