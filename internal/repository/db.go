package repository

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewDB opens a SQLite database at the given path. Pass ":memory:" for an
// in-memory database (used by tests).
func NewDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// SQLite serializes writes internally; a single connection avoids
	// busy errors from concurrent writers in the same process.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
