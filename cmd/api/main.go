// Package main is the entry point for the TripSync API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers "sqlite" driver for database/sql

	"github.com/tripsync/backend/internal/config"
	"github.com/tripsync/backend/internal/credential"
	"github.com/tripsync/backend/internal/handler"
	"github.com/tripsync/backend/internal/identity"
	"github.com/tripsync/backend/internal/kv"
	"github.com/tripsync/backend/internal/middleware"
	"github.com/tripsync/backend/internal/notify"
	"github.com/tripsync/backend/internal/remote"
	"github.com/tripsync/backend/internal/store"
	"github.com/tripsync/backend/internal/token"
	"github.com/tripsync/backend/migrations"
	"github.com/tripsync/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Persistence ------------------------------------------------------
	kvs, cleanup, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer cleanup()
	slog.Info("store ready", "driver", cfg.StoreDriver)

	// --- Dependencies -----------------------------------------------------
	ids := identity.NewUUID()
	sim := remote.NewSimulator(cfg.SimulatedLatency)
	notifier := notify.NewLog(logger)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	var creds credential.Store
	if cfg.PasswordHashing == "bcrypt" {
		creds = credential.NewBcrypt()
	} else {
		creds = credential.NewPlain()
	}

	trips := store.NewTripStore(kvs, ids, logger)
	feed := store.NewFeedStore(kvs, ids, logger)
	activities := store.NewActivityStore(kvs, ids, trips, feed, logger)
	expenses := store.NewExpenseStore(kvs, ids, trips, feed, logger)
	invitations := store.NewInvitationStore(kvs, ids, trips, notifier, sim, cfg.BaseURL, logger)
	guests := store.NewGuestStore(kvs, ids, trips, sim, logger)
	accounts := store.NewAccountStore(kvs, ids, creds, sim, logger)

	server := handler.NewServer(trips, activities, expenses, invitations, guests, accounts, feed, tokens)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body cap → actor.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	// Actor attaches session claims best-effort and never rejects a request.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewActor(tokens))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})
	r.Mount("/", server.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore builds the kv backend selected by STORE_DRIVER. The returned
// cleanup releases the backend's resources and is safe to call exactly once.
func openStore(cfg config.Config) (kv.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		return kv.NewMemory(), noop, nil

	case config.DriverFile:
		fileStore, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return fileStore, noop, nil

	case config.DriverSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, noop, err
		}
		db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, "tripsync.db"))
		if err != nil {
			return nil, noop, err
		}
		if err := migrate(db, goose.DialectSQLite3); err != nil {
			db.Close()
			return nil, noop, err
		}
		return kv.NewSQLite(db), func() { db.Close() }, nil

	case config.DriverPostgres:
		// Migrations run over database/sql; queries run over pgxpool.
		mdb, err := sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		migrateErr := migrate(mdb, goose.DialectPostgres)
		mdb.Close()
		if migrateErr != nil {
			return nil, noop, migrateErr
		}

		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return kv.NewPostgres(pool), pool.Close, nil
	}

	// config.Load already rejected unknown drivers.
	return nil, noop, errors.New("unknown store driver " + cfg.StoreDriver)
}

// migrate applies all embedded migrations to db.
func migrate(db *sql.DB, dialect goose.Dialect) error {
	provider, err := goose.NewProvider(dialect, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
