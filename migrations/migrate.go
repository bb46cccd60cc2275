// Package migrations embeds the goose schema migrations of the diary client
// (local key-value medium) and server (diaries table).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Schema selects the migration directory.
type Schema string

const (
	ClientSchema Schema = "client"
	ServerSchema Schema = "server"
)

// Goose dialect names accepted by [Migrate].
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

var ErrNilDB = errors.New("migration error: db is nil")

// Migrate applies every pending migration of schema using the goose dialect.
func Migrate(db *sql.DB, dialect string, schema Schema) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(schema)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
