// Package catalog stores the song and playlist collections in a local
// sqlite database. Playlist rows keep denormalized song snapshots so a
// playlist row set is self-contained.
package catalog

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jmvillar/strum/internal/errmsg"
	"github.com/jmvillar/strum/internal/library"
)

const (
	appName    = "strum"
	dbFileName = "strum.db"
)

// Store is a sqlite-backed library.Store.
type Store struct {
	db *sql.DB
}

var _ library.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errmsg.Storage(errmsg.OpCatalogOpen, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errmsg.Storage(errmsg.OpCatalogOpen, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errmsg.Storage(errmsg.OpCatalogOpen, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// DefaultPath returns the per-user database location.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
