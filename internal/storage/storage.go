// Package storage owns the process-wide SQLite handle shared by the
// hardware registry, the diagnostic store and the report engine. The
// handle is opened once at startup and must be closed exactly once at
// shutdown.
package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	"codeberg.org/mutker/dcdiag/internal/errors"
	"codeberg.org/mutker/dcdiag/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDirPerm = 0o755

type Store struct {
	db *sql.DB
}

// Open opens the database at path and creates the schema idempotently.
// On any initialization failure the handle is closed before returning,
// so no connection leaks out of a failed startup.
func Open(path string) (*Store, error) {
	errFactory := errors.New()

	if path == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerm); err != nil {
			return nil, errFactory.WithData(ErrStorageInit, struct {
				Phase string
				Path  string
				Error string
			}{
				Phase: "create_directory",
				Path:  path,
				Error: err.Error(),
			})
		}
	}

	dsn := path + "?_journal=WAL&_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	logger.Debug().Str("path", path).Msg("Storage initialized")

	return &Store{db: db}, nil
}

// DB exposes the shared handle to the owning repositories
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.New().Wrap(ErrStorageClose, err)
	}

	return nil
}
