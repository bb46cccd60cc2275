package store_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/mock"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/migrations"
	"github.com/MKhiriev/go-diary-keeper/models"
)

var today = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func newSQLiteKV(t *testing.T) store.KeyValueRepository {
	t.Helper()
	ctx := context.Background()
	db, err := store.NewConnectSQLite(ctx, filepath.Join(t.TempDir(), "cache.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(migrations.ClientSchema))
	return store.NewKeyValueRepository(db, logger.Nop())
}

func encode(t *testing.T, e models.CacheEntry) string {
	t.Helper()
	b, err := json.Marshal(e)
	require.NoError(t, err)
	return string(b)
}

func TestCacheStore_SaveLoadRemove(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	s := store.NewCacheStore(kv, "diarum_cache", 0, mock.NewManualClock(today), logger.Nop())

	entry := models.CacheEntry{Content: "A", LocalUpdatedAt: 42, IsDirty: true}
	require.NoError(t, s.Save(ctx, "2024-01-15", entry))

	raw, found, err := kv.Get(ctx, "diarum_cache_2024-01-15")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"content":"A","localUpdatedAt":42,"isDirty":true}`, raw)

	assert.Equal(t, map[string]models.CacheEntry{"2024-01-15": entry}, s.Load(ctx))

	require.NoError(t, s.Remove(ctx, "2024-01-15"))
	assert.Empty(t, s.Load(ctx))
}

func TestCacheStore_Load_RepairsCorruptEntries(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	s := store.NewCacheStore(kv, "diarum_cache", 0, mock.NewManualClock(today), logger.Nop())

	require.NoError(t, kv.Set(ctx, "diarum_cache_2024-01-14", encode(t, models.CacheEntry{Content: "ok"})))
	require.NoError(t, kv.Set(ctx, "diarum_cache_2024-01-13", "{broken"))
	require.NoError(t, kv.Set(ctx, "diarum_cache_not-a-date", encode(t, models.CacheEntry{})))
	require.NoError(t, kv.Set(ctx, "theme", "dark"))

	all := s.LoadAll(ctx)
	assert.Len(t, all, 1)
	listed, err := kv.ListByPrefix(ctx, "diarum_cache_")
	require.NoError(t, err)
	assert.Len(t, listed, 3, "LoadAll must not modify storage")

	loaded := s.Load(ctx)
	assert.Equal(t, map[string]models.CacheEntry{"2024-01-14": {Content: "ok"}}, loaded)

	listed, err = kv.ListByPrefix(ctx, "diarum_cache_")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, found, err := kv.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCacheStore_Load_StorageUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	kv.EXPECT().ListByPrefix(gomock.Any(), "diarum_cache_").Return(nil, assert.AnError)

	s := store.NewCacheStore(kv, "diarum_cache", 0, mock.NewManualClock(today), logger.Nop())
	entries := s.Load(context.Background())

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestIsWithinRetention(t *testing.T) {
	tests := []struct {
		date string
		days int
		want bool
	}{
		{date: "2024-01-15", days: 1, want: true},
		{date: "2024-01-14", days: 1, want: false},
		{date: "2024-01-13", days: 3, want: true},
		// boundary: the window is the most recent `days` calendar days
		{date: "2024-01-12", days: 3, want: false},
		{date: "2024-01-05", days: 1, want: false},
		{date: "2024-01-20", days: 1, want: true},
		{date: "2023-12-17", days: 30, want: true},
		{date: "2023-12-16", days: 30, want: false},
		{date: "garbage", days: 30, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, store.IsWithinRetention(tt.date, tt.days, today))
		})
	}
}

func TestIsWithinRetention_UsesLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 23:30 UTC on the 14th is already the 15th in UTC+10
	now := time.Date(2024, 1, 14, 23, 30, 0, 0, time.UTC).In(loc)

	assert.True(t, store.IsWithinRetention("2024-01-15", 1, now))
	assert.False(t, store.IsWithinRetention("2024-01-14", 1, now))
}

func TestCacheStore_PruneOlderThan(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	s := store.NewCacheStore(kv, "diarum_cache", 0, mock.NewManualClock(today), logger.Nop())

	require.NoError(t, s.Save(ctx, "2024-01-05", models.CacheEntry{Content: "old clean"}))
	require.NoError(t, s.Save(ctx, "2024-01-04", models.CacheEntry{Content: "old dirty", IsDirty: true}))
	require.NoError(t, s.Save(ctx, "2024-01-15", models.CacheEntry{Content: "fresh"}))

	removed := s.PruneOlderThan(ctx, 1)
	assert.Equal(t, 1, removed)

	left := s.LoadAll(ctx)
	assert.Contains(t, left, "2024-01-04")
	assert.Contains(t, left, "2024-01-15")
	assert.NotContains(t, left, "2024-01-05")
}

func TestCacheStore_PruneOlderThan_EnforcesCountBound(t *testing.T) {
	ctx := context.Background()
	kv := newSQLiteKV(t)
	s := store.NewCacheStore(kv, "diarum_cache", 2, mock.NewManualClock(today), logger.Nop())

	require.NoError(t, s.Save(ctx, "2024-01-13", models.CacheEntry{Content: "c13"}))
	require.NoError(t, s.Save(ctx, "2024-01-14", models.CacheEntry{Content: "c14"}))
	require.NoError(t, s.Save(ctx, "2024-01-15", models.CacheEntry{Content: "c15"}))
	require.NoError(t, s.Save(ctx, "2024-01-01", models.CacheEntry{Content: "d01", IsDirty: true}))

	removed := s.PruneOlderThan(ctx, 30)
	assert.Equal(t, 2, removed)

	left := s.LoadAll(ctx)
	assert.Len(t, left, 2)
	assert.Contains(t, left, "2024-01-01")
	assert.Contains(t, left, "2024-01-15")
}

func TestCacheStore_PruneOlderThan_DeleteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	kv.EXPECT().ListByPrefix(gomock.Any(), "ns_").Return(map[string]string{
		"ns_2023-01-01": `{"content":"x","localUpdatedAt":1,"isDirty":false}`,
	}, nil)
	kv.EXPECT().Delete(gomock.Any(), "ns_2023-01-01").Return(assert.AnError)

	s := store.NewCacheStore(kv, "ns", 0, mock.NewManualClock(today), logger.Nop())
	assert.Equal(t, 0, s.PruneOlderThan(context.Background(), 3))
}
