package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// snapshotPragmas configure a catalog snapshot. The rollback journal keeps
// the export a single self-contained file with no -wal or -shm sidecars.
var snapshotPragmas = []string{
	"PRAGMA journal_mode = DELETE",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// Open opens (or creates) the catalog snapshot at path. ":memory:" gives a
// throwaway database, which stays shared because only one connection is
// ever opened.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db, snapshotPragmas); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: configure %s: %w", path, err)
	}
	return db, nil
}

func applyPragmas(db *sql.DB, pragmas []string) error {
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
