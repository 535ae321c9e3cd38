package database

import (
	"database/sql"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// Open opens the local libsql database file at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, err
	}

	// A single embedded file dislikes many concurrent writers; keep the
	// pool small and recycle connections.
	db.SetMaxOpenConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenMemory opens a shared in-memory database, used by tests.
func OpenMemory() (*sql.DB, error) {
	return sql.Open("libsql", "file::memory:?cache=shared")
}
