package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/migrations"
)

// DB is a database handle together with its dialect-specific helpers.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the migrations of schema for the handle's dialect.
func (db *DB) Migrate(schema migrations.Schema) error {
	return migrations.Migrate(db.DB, db.dialect, schema)
}

// Builder returns a squirrel statement builder using the placeholder
// format of the handle's dialect.
func (db *DB) Builder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// IsRetryable reports whether err is a transient driver failure.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// Connect opens the database named by dsn. "postgres://" and
// "postgresql://" URIs use pgx; anything else is treated as an SQLite path,
// optionally prefixed with "sqlite3://".
func Connect(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case dsn == "":
		return nil, fmt.Errorf("empty database DSN")
	default:
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite3://"), log)
	}
}
