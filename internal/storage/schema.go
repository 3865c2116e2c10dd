package storage

import (
	"database/sql"

	"codeberg.org/mutker/dcdiag/internal/errors"
)

// SQL statements derived from the persistent schema contract
const createTablesSQL = `
	CREATE TABLE IF NOT EXISTS hardware (
	    id            INTEGER PRIMARY KEY AUTOINCREMENT,
	    type          TEXT NOT NULL,
	    serial_number TEXT NOT NULL UNIQUE,
	    location      TEXT
	);
	CREATE TABLE IF NOT EXISTS diagnostics (
	    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
	    hardware_id          INTEGER NOT NULL REFERENCES hardware(id),
	    technician           TEXT,
	    timestamp            TEXT NOT NULL,
	    temperature_celsius  REAL NOT NULL,
	    cpu_usage_percent    REAL NOT NULL,
	    memory_usage_percent REAL NOT NULL,
	    issue_detected       TEXT NOT NULL
	);`

// initSchema creates the hardware and diagnostics tables. Safe to invoke
// repeatedly: existing tables and their rows are left untouched.
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(createTablesSQL); err != nil {
		return errors.New().Wrap(ErrSchemaInitFailed, err)
	}

	return nil
}

// TableExists checks if a table exists
func TableExists(db *sql.DB, tableName string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM sqlite_master
            WHERE type='table' AND name=?
        )
    `, tableName).Scan(&exists)
	if err != nil {
		return false, errors.New().WithData(ErrStorageAccess, struct {
			Phase string
			Table string
			Error string
		}{
			Phase: "check_table_exists",
			Table: tableName,
			Error: err.Error(),
		})
	}

	return exists, nil
}
