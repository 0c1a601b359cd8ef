package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

type Config struct {
	Path string
}

func NewConnection(config Config) (*DB, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", config.Path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool. An in-memory SQLite database vanishes
	// when its last connection closes, so it is pinned to one connection.
	if config.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// RunMigrations runs all pending migrations for the given store
func (db *DB) RunMigrations(store Store) error {
	migrator := NewMigrator(db.DB, store)
	return migrator.RunMigrations()
}

// GetMigrationStatus shows the current migration status for the given store
func (db *DB) GetMigrationStatus(store Store) error {
	migrator := NewMigrator(db.DB, store)
	return migrator.GetMigrationStatus()
}
