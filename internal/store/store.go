// Package store persists TilTwelve's flat key-value data in SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrEmptyKey is returned when a key-value operation is given an empty key.
var ErrEmptyKey = errors.New("store: empty key")

// pragmas tune SQLite for a single local user.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store owns the SQLite connection and the ent driver on top of it.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open connects to the SQLite database at dsn, applies the pragmas and
// creates the kv_entries table if needed.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	m, err := schema.NewMigrate(drv)
	if err == nil {
		err = m.Create(ctx, Tables...)
	}
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// KV returns the key-value repository.
func (s *Store) KV() KV {
	return &kvRepo{drv: s.drv}
}

// Close closes the database.
func (s *Store) Close() error {
	return s.drv.Close()
}

// DefaultDBPath returns TILTWELVE_DB when set, otherwise
// $XDG_DATA_HOME/tiltwelve/tiltwelve.db (~/.local/share when unset).
// The parent directory is created.
func DefaultDBPath() (string, error) {
	p := os.Getenv("TILTWELVE_DB")
	if p == "" {
		dir, err := dataHome()
		if err != nil {
			return "", err
		}
		p = filepath.Join(dir, "tiltwelve", "tiltwelve.db")
	}
	return p, EnsureDir(p)
}

func dataHome() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
