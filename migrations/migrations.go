// Package migrations embeds the goose SQL migrations for every SQL ledger backend.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/codeclub-backend/internal/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the PostgreSQL migration set.
func Postgres() fs.FS {
	return sub("postgres")
}

// SQLite returns the SQLite migration set.
func SQLite() fs.FS {
	return sub("sqlite")
}

// For returns the goose dialect and migration set for a storage driver name.
func For(driver string) (goose.Dialect, fs.FS, error) {
	switch driver {
	case config.DriverPostgres:
		return goose.DialectPostgres, Postgres(), nil
	case config.DriverSQLite:
		return goose.DialectSQLite3, SQLite(), nil
	default:
		return "", nil, fmt.Errorf("no migrations for driver %q", driver)
	}
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		// The directory is embedded at compile time.
		panic(err)
	}
	return f
}
