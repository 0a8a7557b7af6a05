package kv_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/migrations"
	"github.com/tripsync/backend/testutil"
)

// TestMain applies all pending migrations to the test database so individual
// tests never need to think about schema state. When TEST_DATABASE_URL is not
// set, tests in this file skip via testutil.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		os.Exit(m.Run())
	}

	// Use a plain *sql.DB for goose (it needs database/sql, not pgx pool).
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// newPostgresStore returns a Postgres store backed by a transaction that is
// rolled back when the test finishes, giving free per-test isolation.
func newPostgresStore(t *testing.T) *kv.Postgres {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return kv.NewPostgres(tx)
}

func TestPostgres_contract(t *testing.T) {
	runStoreContract(t, newPostgresStore(t))
}
