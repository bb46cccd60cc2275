package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/migrations"
)

// ClientStorages groups the client's durable stores over one SQLite file.
type ClientStorages struct {
	db *DB

	KeyValue KeyValueRepository
	Cache    *CacheStore
	Settings *SettingsStore
}

// NewClientStorages opens the SQLite file named by cfg.DSN, migrates the
// kv_store schema and wires the cache and settings stores over it.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, clock utils.Clock, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(migrations.ClientSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValueRepository(db, logger)
	return &ClientStorages{
		db:       db,
		KeyValue: kv,
		Cache:    NewCacheStore(kv, cfg.Namespace, cfg.MaxEntries, clock, logger),
		Settings: NewSettingsStore(kv, logger),
	}, nil
}

// Close releases the underlying database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
