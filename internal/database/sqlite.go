package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// ConnectSQLite opens the SQLite database at path and creates the schema
func ConnectSQLite(path string, seed bool) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %w", err)
	}

	// An in-memory database lives only as long as its connection.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := db.Exec(sqliteSchemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	if seed {
		if _, err := db.Exec(sqliteSeedCategoriesSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed categories: %w", err)
		}
	}

	return db, nil
}
