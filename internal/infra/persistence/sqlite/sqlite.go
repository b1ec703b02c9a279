// Package sqlite implements the durable local storage collaborators over a
// single-file sqlite database: the active identity record and the
// favorites id set. Both are read once at startup and written on every
// mutation, round-tripping exactly.
package sqlite

import (
	"database/sql"

	"campus/config"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS identity (
    id         INTEGER PRIMARY KEY CHECK(id = 1),
    name       TEXT NOT NULL,
    reg_no     TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS favorites (
    entity_id  TEXT PRIMARY KEY,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
`

// Open opens or creates the local store and initializes the schema.
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Storage.Path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open local store")
	}

	if err := db.Ping(); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to ping local store")
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to initialize local store schema")
	}

	return db, nil
}
