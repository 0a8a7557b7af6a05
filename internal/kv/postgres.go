package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is the Store backed by a kv_records table in Postgres
// (STORE_DRIVER=postgres). The table is created by the goose migrations in
// the migrations package.
type Postgres struct {
	db db
}

// NewPostgres constructs a Postgres store. In production pass *pgxpool.Pool;
// in tests pass a pgx.Tx for rollback isolation.
func NewPostgres(db db) *Postgres {
	return &Postgres{db: db}
}

// Get returns the value under key, or ErrNoRecord.
func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const q = `SELECT value FROM kv_records WHERE key = @key`

	var value string
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("kv.Postgres.Get: %w", err)
	}
	return []byte(value), nil
}

// Put upserts the value under key.
func (p *Postgres) Put(ctx context.Context, key string, value []byte) error {
	const q = `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES (@key, @value, now())
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = now()`

	// The column is TEXT; pass a string so pgx does not encode bytea.
	args := pgx.NamedArgs{
		"key":   key,
		"value": string(value),
	}
	if _, err := p.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("kv.Postgres.Put: %w", err)
	}
	return nil
}

// Delete removes the record under key. Absent keys are a no-op.
func (p *Postgres) Delete(ctx context.Context, key string) error {
	const q = `DELETE FROM kv_records WHERE key = @key`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("kv.Postgres.Delete: %w", err)
	}
	return nil
}
