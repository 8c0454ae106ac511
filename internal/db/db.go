package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const busyTimeout = 5000 // milliseconds

// Local persistence is a handful of key-value slots, each holding one JSON
// blob. A single idempotent statement stands in for a migration chain.
const schema = `
CREATE TABLE IF NOT EXISTS kv_slots (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);`

// DB wraps the SQLite database connection
type DB struct {
	conn *sql.DB
}

// DefaultPath returns the default database path (~/.flowboard/flowboard.db)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".flowboard", "flowboard.db"), nil
}

// Open opens or creates the SQLite database
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(%d)", dbPath, busyTimeout)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{conn: conn}, nil
}

// OpenDefault opens the database at the default path
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// KVGet retrieves and deserializes a slot by key.
// Returns an error wrapping sql.ErrNoRows if the key does not exist.
func (d *DB) KVGet(ctx context.Context, key string, dest any) error {
	var value []byte
	row := d.conn.QueryRowContext(ctx, `SELECT value FROM kv_slots WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		return fmt.Errorf("kv get %q: %w", key, err)
	}
	if err := json.Unmarshal(value, dest); err != nil {
		return fmt.Errorf("kv get %q unmarshal: %w", key, err)
	}
	return nil
}

// KVSet serializes and stores a slot. The write is synchronous: once KVSet
// returns, the slot is durable.
func (d *DB) KVSet(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q marshal: %w", key, err)
	}

	now := time.Now().UnixNano()
	_, err = d.conn.ExecContext(ctx, `
		INSERT INTO kv_slots (key, value, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, data, now, now)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

// KVDelete removes a slot
func (d *DB) KVDelete(ctx context.Context, key string) error {
	if _, err := d.conn.ExecContext(ctx, `DELETE FROM kv_slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

// KVHas returns whether a slot exists
func (d *DB) KVHas(ctx context.Context, key string) (bool, error) {
	var count int
	row := d.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_slots WHERE key = ?`, key)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("kv has %q: %w", key, err)
	}
	return count > 0, nil
}
