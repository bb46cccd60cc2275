package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigsWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "env"}},
		&StructuredConfig{App: App{TokenIssuer: "flags"}},
		&StructuredConfig{Storage: Storage{Cache: Cache{MaxEntries: 10}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "flags", cfg.App.TokenIssuer)
	assert.Equal(t, 10, cfg.Storage.Cache.MaxEntries)
}

// ── withEnv / withFlags / withJSON ───────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_API_TOKEN":             "secret",
		"STORAGE_CACHE_NAMESPACE":   "ns",
		"WORKERS_CLEANUP_INTERVAL":  "5m",
		"ADAPTER_LIVENESS_TIMEOUT":  "3s",
		"STORAGE_CACHE_MAX_ENTRIES": "100",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)

	cfg := b.configs[0]
	assert.Equal(t, "secret", cfg.App.APIToken)
	assert.Equal(t, "ns", cfg.Storage.Cache.Namespace)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CleanupInterval)
	assert.Equal(t, 3*time.Second, cfg.Adapter.LivenessTimeout)
	assert.Equal(t, 100, cfg.Storage.Cache.MaxEntries)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

func TestWithJSON_SetsErrorWhenFileMissing(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithJSON_SkipsWhenErrorAlreadySet(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"cache": map[string]any{"namespace": "from_json"}},
	})
	setEnvVars(t, map[string]string{
		"APP_API_TOKEN":           "env-token",
		"STORAGE_CACHE_NAMESPACE": "from_env",
		"CONFIG":                  path,
	})

	cfg, err := GetStructuredConfig([]string{"-api-token", "flag-token"})
	require.NoError(t, err)
	assert.Equal(t, "flag-token", cfg.App.APIToken)
	assert.Equal(t, "from_json", cfg.Storage.Cache.Namespace)
}
