// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
)

const kvTable = "kv_store"

// kvRepository is the SQLite-backed [KeyValueRepository] over the
// kv_store(key, value) table.
type kvRepository struct {
	*DB
	logger *logger.Logger
}

func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueRepository {
	return &kvRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.Builder().
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		r.logger.Err(err).Str("func", "kvRepository.Get").Str("key", key).Msg("failed to read key")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := r.Builder().
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Set").Str("key", key).Msg("failed to write key")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := r.Builder().
		Delete(kvTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "kvRepository.Delete").Int("keys", len(keys)).Msg("failed to delete keys")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) ListByPrefix(ctx context.Context, prefix string) (map[string]string, error) {
	query, args, err := r.Builder().
		Select("key", "value").
		From(kvTable).
		Where(sq.Like{"key": prefix + "%"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "kvRepository.ListByPrefix").Str("prefix", prefix).Msg("failed to list keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		// LIKE treats "_" in the prefix as a wildcard
		if strings.HasPrefix(key, prefix) {
			result[key] = value
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}
