package logger

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", path)

	l.Warn().Str("date", "2024-01-05").Msg("cache read failed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "2024-01-05", entry["date"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewClientLogger_EmptyPathDiscards(t *testing.T) {
	l := NewClientLogger("client", "")
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf)}

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("component", "sync").Logger()

	parent.Info().Msg("parent")
	entry := decodeLine(t, &buf)
	assert.NotContains(t, entry, "component")

	buf.Reset()
	child.Info().Msg("child")
	entry = decodeLine(t, &buf)
	assert.Equal(t, "sync", entry["component"])
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()

	r := httptest.NewRequest("GET", "/api/version", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	FromRequest(r).Info().Msg("request")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "abc", entry["trace_id"])
}
