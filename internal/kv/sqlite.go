package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite is the Store backed by a single-file SQLite database
// (STORE_DRIVER=sqlite) — durable local storage without an external server.
// Open the *sql.DB with the pure-Go "sqlite" driver (modernc.org/sqlite) and
// run the goose migrations before constructing the store.
type SQLite struct {
	db *sql.DB
}

// NewSQLite constructs a SQLite store over an already-open, migrated *sql.DB.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

// Get returns the value under key, or ErrNoRecord.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_records WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, q, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("kv.SQLite.Get: %w", err)
	}
	return []byte(value), nil
}

// Put upserts the value under key.
func (s *SQLite) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, q, key, string(value)); err != nil {
		return fmt.Errorf("kv.SQLite.Put: %w", err)
	}
	return nil
}

// Delete removes the record under key. Absent keys are a no-op.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_records WHERE key = ?`

	if _, err := s.db.ExecContext(ctx, q, key); err != nil {
		return fmt.Errorf("kv.SQLite.Delete: %w", err)
	}
	return nil
}
