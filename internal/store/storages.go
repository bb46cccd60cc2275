package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/config"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/migrations"
)

// Storages groups the server repositories.
type Storages struct {
	db *DB

	DiaryRepository DiaryRepository
}

// NewStorages connects to cfg.DSN (SQLite or PostgreSQL), migrates the
// server schema and builds the repositories.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Connect(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(migrations.ServerSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		db:              db,
		DiaryRepository: NewDiaryRepository(db, logger),
	}, nil
}

func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
